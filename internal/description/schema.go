package description

// File is the root of a class description file.
type File struct {
	// Version of the description schema.
	Version string `yaml:"version,omitempty" json:"version,omitempty"`
	// Convention of every class in the file: "source" or "target".
	Convention string `yaml:"convention" json:"convention"`
	// Classes in declaration order.
	Classes []Class `yaml:"classes" json:"classes"`
}

// Class describes one class.
type Class struct {
	Name       string     `yaml:"name" json:"name"`
	Superclass string     `yaml:"superclass,omitempty" json:"superclass,omitempty"`
	Properties []Property `yaml:"properties,omitempty" json:"properties,omitempty"`
	Methods    []Method   `yaml:"methods,omitempty" json:"methods,omitempty"`
}

// Property describes one property.
type Property struct {
	Name        string `yaml:"name" json:"name"`
	Type        string `yaml:"type" json:"type"`
	Nullability string `yaml:"nullability,omitempty" json:"nullability,omitempty"`
	ReadOnly    bool   `yaml:"readonly,omitempty" json:"readonly,omitempty"`
	Getter      string `yaml:"getter,omitempty" json:"getter,omitempty"`
	Setter      string `yaml:"setter,omitempty" json:"setter,omitempty"`
	Override    bool   `yaml:"override,omitempty" json:"override,omitempty"`
	Observer    string `yaml:"observer,omitempty" json:"observer,omitempty"`
	Origin      string `yaml:"origin,omitempty" json:"origin,omitempty"`
}

// Method describes one method.
type Method struct {
	Name    string   `yaml:"name" json:"name"`
	Params  []string `yaml:"params,omitempty" json:"params,omitempty"`
	Returns string   `yaml:"returns,omitempty" json:"returns,omitempty"`
	Hidden  bool     `yaml:"hidden,omitempty" json:"hidden,omitempty"`
	Origin  string   `yaml:"origin,omitempty" json:"origin,omitempty"`
}
