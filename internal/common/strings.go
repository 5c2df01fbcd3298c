package common

// UnknownStr is the String() value of out-of-range enum values.
const UnknownStr = "unknown"

// QualifiedName joins a class name and a member name as "Class.member".
// Returns member alone if class is empty.
func QualifiedName(class, member string) string {
	if class == "" {
		return member
	}

	return class + "." + member
}
