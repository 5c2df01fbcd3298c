package description

import (
	"fmt"
	"strings"

	"fortio.org/safecast"

	"reset-bridger/internal/model"
	"reset-bridger/internal/naming"
)

const maxSuggestions = 3

// Build converts a parsed File into linked ClassInterfaces, returned in file
// order. Superclasses are built before their subclasses, so every
// back-reference points at a finished value.
func Build(f *File) ([]*model.ClassInterface, error) {
	if f == nil {
		return nil, model.Malformed("", "description is nil")
	}

	conv, ok := model.ParseConvention(f.Convention)
	if !ok {
		return nil, model.Malformed("", "unknown convention %q", f.Convention)
	}

	index, err := indexClasses(f)
	if err != nil {
		return nil, err
	}

	order, err := linkOrder(f, index)
	if err != nil {
		return nil, err
	}

	out := make([]*model.ClassInterface, len(f.Classes))

	for _, i := range order {
		cd := &f.Classes[i]

		var super *model.ClassInterface
		if name := strings.TrimSpace(cd.Superclass); name != "" {
			super = out[index[name]]
		}

		c, err := BuildClass(cd, conv, super)
		if err != nil {
			return nil, err
		}

		out[i] = c
	}

	return out, nil
}

// BuildClass builds a single class description and links it to super, which
// must be the already built class its Superclass field names.
func BuildClass(cd *Class, conv model.Convention, super *model.ClassInterface) (*model.ClassInterface, error) {
	c, err := buildClass(cd, conv)
	if err != nil {
		return nil, err
	}

	want := strings.TrimSpace(cd.Superclass)

	switch {
	case want == "" && super != nil:
		return nil, model.Malformed(c.Name, "unexpected superclass %s", super.Name)
	case want != "" && (super == nil || super.Name != want):
		return nil, model.Malformed(c.Name, "superclass %s is not linked", want)
	}

	c.Superclass = super

	if err := model.Validate(c); err != nil {
		return nil, err
	}

	return c, nil
}

// Load reads, parses and builds a description file.
func Load(path string) ([]*model.ClassInterface, error) {
	f, err := LoadFile(path)
	if err != nil {
		return nil, err
	}

	classes, err := Build(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return classes, nil
}

func indexClasses(f *File) (map[string]int, error) {
	index := make(map[string]int, len(f.Classes))

	for i := range f.Classes {
		name := strings.TrimSpace(f.Classes[i].Name)
		if name == "" {
			return nil, model.Malformed("", "class %d has no name", i)
		}

		if _, dup := index[name]; dup {
			return nil, model.Malformed(name, "duplicate class")
		}

		index[name] = i
	}

	return index, nil
}

func linkOrder(f *File, index map[string]int) ([]int, error) {
	names := make([]string, len(f.Classes))
	for i := range f.Classes {
		names[i] = strings.TrimSpace(f.Classes[i].Name)
	}

	for i := range f.Classes {
		super := strings.TrimSpace(f.Classes[i].Superclass)
		if super == "" {
			continue
		}

		if _, ok := index[super]; !ok {
			reason := fmt.Sprintf("unknown superclass %q", super)
			if s := naming.Suggest(super, names, maxSuggestions); len(s) > 0 {
				reason += fmt.Sprintf(" (did you mean %s?)", strings.Join(s, ", "))
			}

			return nil, &model.MalformedInputError{Class: names[i], Reason: reason}
		}
	}

	order, stuck, err := topoSort(len(f.Classes), func(i int) []int {
		if super := strings.TrimSpace(f.Classes[i].Superclass); super != "" {
			return []int{index[super]}
		}

		return nil
	})
	if err != nil {
		cycle := make([]string, 0, len(stuck))
		for _, i := range stuck {
			cycle = append(cycle, names[i])
		}

		return nil, model.Malformed(strings.Join(cycle, ", "), "inheritance cycle")
	}

	return order, nil
}

func buildClass(cd *Class, conv model.Convention) (*model.ClassInterface, error) {
	c := &model.ClassInterface{
		Name:       strings.TrimSpace(cd.Name),
		Convention: conv,
		Properties: make([]model.PropertyDeclaration, 0, len(cd.Properties)),
		Methods:    make([]model.MethodDeclaration, 0, len(cd.Methods)),
	}

	for i := range cd.Properties {
		p, err := buildProperty(c.Name, &cd.Properties[i])
		if err != nil {
			return nil, err
		}

		c.Properties = append(c.Properties, p)
	}

	for i := range cd.Methods {
		m, err := buildMethod(c.Name, &cd.Methods[i])
		if err != nil {
			return nil, err
		}

		c.Methods = append(c.Methods, m)
	}

	return c, nil
}

func buildProperty(class string, pd *Property) (model.PropertyDeclaration, error) {
	name := strings.TrimSpace(pd.Name)
	if name == "" {
		return model.PropertyDeclaration{}, model.Malformed(class, "property with empty name")
	}

	typ, ok := model.ParseTypeRef(pd.Type)
	if !ok {
		return model.PropertyDeclaration{}, model.Malformed(class, "property %q: invalid type %q", name, pd.Type)
	}

	kind, ok := model.ParseNullability(pd.Nullability)
	if !ok {
		return model.PropertyDeclaration{}, model.Malformed(class, "property %q: unknown nullability %q", name, pd.Nullability)
	}

	observer, ok := model.ParseObserver(pd.Observer)
	if !ok {
		return model.PropertyDeclaration{}, model.Malformed(class, "property %q: unknown observer %q", name, pd.Observer)
	}

	origin, ok := model.ParseOrigin(pd.Origin)
	if !ok {
		return model.PropertyDeclaration{}, model.Malformed(class, "property %q: unknown origin %q", name, pd.Origin)
	}

	p := model.PropertyDeclaration{
		Name:        name,
		Type:        typ,
		Nullability: kind,
		Getter:      model.Selector{Name: cmpOr(pd.Getter, name)},
		Origin:      origin,
		Override:    pd.Override,
		Observer:    observer,
	}

	if pd.ReadOnly {
		if pd.Setter != "" {
			return model.PropertyDeclaration{}, model.Malformed(class, "property %q: read-only property declares setter %q", name, pd.Setter)
		}

		return p, nil
	}

	p.Setter = &model.Selector{Name: cmpOr(pd.Setter, naming.SetterName(name)), Arity: 1}

	return p, nil
}

func buildMethod(class string, md *Method) (model.MethodDeclaration, error) {
	name := strings.TrimSpace(md.Name)
	if name == "" {
		return model.MethodDeclaration{}, model.Malformed(class, "method with empty name")
	}

	arity, err := safecast.Conv[uint8](len(md.Params))
	if err != nil {
		return model.MethodDeclaration{}, &model.MalformedInputError{
			Class:  class,
			Reason: fmt.Sprintf("method %q has too many parameters", name),
			Err:    err,
		}
	}

	var params []model.TypeRef

	for _, raw := range md.Params {
		t, ok := model.ParseTypeRef(raw)
		if !ok {
			return model.MethodDeclaration{}, model.Malformed(class, "method %q: invalid parameter type %q", name, raw)
		}

		params = append(params, t)
	}

	returns := model.Void
	if md.Returns != "" {
		t, ok := model.ParseTypeRef(md.Returns)
		if !ok {
			return model.MethodDeclaration{}, model.Malformed(class, "method %q: invalid return type %q", name, md.Returns)
		}

		returns = t
	}

	origin, ok := model.ParseOrigin(md.Origin)
	if !ok {
		return model.MethodDeclaration{}, model.Malformed(class, "method %q: unknown origin %q", name, md.Origin)
	}

	m := model.MethodDeclaration{
		Selector: model.Selector{Name: name, Arity: arity},
		Params:   params,
		Returns:  returns,
		Origin:   origin,
	}

	if md.Hidden {
		m.Visibility = model.Hidden
	}

	return m, nil
}

func cmpOr(s, fallback string) string {
	if s = strings.TrimSpace(s); s != "" {
		return s
	}

	return fallback
}
