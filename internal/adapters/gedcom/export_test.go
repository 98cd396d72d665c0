package gedcom

// SplitName exposes splitName for testing.
func SplitName(value string) (string, string) {
	return splitName(value)
}

// ExtractYear exposes extractYear for testing.
func ExtractYear(s string) string {
	return extractYear(s)
}
