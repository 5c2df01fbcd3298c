package projection

import (
	"reset-bridger/internal/model"
	"reset-bridger/internal/naming"
)

var (
	stringType = model.TypeRef{Name: "String"}
	intType    = model.TypeRef{Name: "Int"}
	boolType   = model.TypeRef{Name: "Bool"}
)

func prop(name string, typ model.TypeRef, kind model.Nullability) model.PropertyDeclaration {
	setter := model.Selector{Name: naming.SetterName(name), Arity: 1}

	return model.PropertyDeclaration{
		Name:        name,
		Type:        typ,
		Nullability: kind,
		Getter:      model.Selector{Name: name},
		Setter:      &setter,
	}
}

func readonlyProp(name string, typ model.TypeRef, kind model.Nullability) model.PropertyDeclaration {
	p := prop(name, typ, kind)
	p.Setter = nil

	return p
}

func method(name string, params ...model.TypeRef) model.MethodDeclaration {
	return model.MethodDeclaration{
		Selector: model.Selector{Name: name, Arity: uint8(len(params))},
		Params:   params,
		Returns:  model.Void,
	}
}

func sourceClass(name string, props []model.PropertyDeclaration, methods ...model.MethodDeclaration) *model.ClassInterface {
	return &model.ClassInterface{
		Name:       name,
		Convention: model.ConventionSource,
		Properties: props,
		Methods:    methods,
	}
}

func targetClass(name string, props []model.PropertyDeclaration, methods ...model.MethodDeclaration) *model.ClassInterface {
	c := sourceClass(name, props, methods...)
	c.Convention = model.ConventionTarget

	return c
}
