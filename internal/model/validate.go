package model

// Validate checks the structural invariants every projector relies on.
// It returns a *MalformedInputError for the first violation found.
func Validate(c *ClassInterface) error {
	if c == nil {
		return Malformed("", "class is nil")
	}

	if c.Name == "" {
		return Malformed("", "class name is empty")
	}

	if err := validateSuperclassChain(c); err != nil {
		return err
	}

	seenProps := make(map[string]struct{}, len(c.Properties))

	for i := range c.Properties {
		p := &c.Properties[i]
		if err := validateProperty(c, p); err != nil {
			return err
		}

		if _, ok := seenProps[p.Name]; ok {
			return Malformed(c.Name, "duplicate property %q", p.Name)
		}

		seenProps[p.Name] = struct{}{}
	}

	seenMethods := make(map[Selector]struct{}, len(c.Methods))

	for i := range c.Methods {
		m := &c.Methods[i]
		if m.Selector.IsZero() {
			return Malformed(c.Name, "method %d has no name", i)
		}

		if int(m.Selector.Arity) != len(m.Params) {
			return Malformed(c.Name, "method %s declares %d parameters", m.Selector, len(m.Params))
		}

		if !m.IsVisible() {
			continue
		}

		if _, ok := seenMethods[m.Selector]; ok {
			return Malformed(c.Name, "duplicate method %s", m.Selector)
		}

		seenMethods[m.Selector] = struct{}{}
	}

	return nil
}

func validateProperty(c *ClassInterface, p *PropertyDeclaration) error {
	if p.Name == "" {
		return Malformed(c.Name, "property with empty name")
	}

	if p.Type.IsZero() {
		return Malformed(c.Name, "property %q has no type", p.Name)
	}

	if p.Getter.IsZero() || p.Getter.Arity != 0 {
		return Malformed(c.Name, "property %q has invalid getter %s", p.Name, p.Getter)
	}

	if p.Setter != nil && (p.Setter.IsZero() || p.Setter.Arity != 1) {
		return Malformed(c.Name, "property %q has invalid setter %s", p.Name, *p.Setter)
	}

	if p.Nullability != Resettable {
		return nil
	}

	if c.Convention != ConventionSource {
		return Malformed(c.Name, "property %q: resettable is a source-convention kind", p.Name)
	}

	if p.ReadOnly() {
		return Malformed(c.Name, "property %q: resettable property must be read-write", p.Name)
	}

	return nil
}

func validateSuperclassChain(c *ClassInterface) error {
	seen := map[*ClassInterface]struct{}{c: {}}

	for cur := c.Superclass; cur != nil; cur = cur.Superclass {
		if _, ok := seen[cur]; ok {
			return Malformed(c.Name, "inheritance cycle through %s", cur.Name)
		}

		if cur.Convention != c.Convention {
			return Malformed(c.Name, "superclass %s is in the %s convention", cur.Name, cur.Convention)
		}

		seen[cur] = struct{}{}
	}

	return nil
}
