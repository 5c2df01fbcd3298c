// Package description provides the YAML schema for class descriptions,
// parsing, structural validation, and conversion to and from the in-memory
// model.
//
// The same schema is used for input and for output: a projected batch is
// written back in the opposite convention with FromModel.
//
// # Schema Overview
//
//	version: "1"
//	convention: source            # or target
//	classes:
//	  - name: Person
//	    superclass: Base          # optional, must be declared in the same file
//	    properties:
//	      - name: firstName
//	        type: String          # "String?" optional, "String!" implicitly unwrapped
//	        nullability: resettable   # nonnull (default) | nullable | unspecified | resettable
//	        readonly: false
//	        getter: firstName     # default: the property name
//	        setter: setFirstName  # default: set<Name>
//	        override: false
//	        observer: none        # none | willSet | resettableWillSet
//	    methods:
//	      - name: greet
//	        params: [String]
//	        returns: Void         # default: Void
//	        hidden: false
//
// JSON input is accepted too, since it is valid YAML.
//
// Structural problems (unknown enum values, missing names, unknown or cyclic
// superclasses, more than 255 parameters) fail with a
// *model.MalformedInputError. Business-rule problems are left to the
// projectors, which report them as diagnostics.
package description
