package domain

import "regexp"

const DefaultChoiceColor = "#000000"

var hexColorPattern = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// IsValidHexColor reports whether s is a '#' followed by exactly six hex digits.
func IsValidHexColor(s string) bool {
	return hexColorPattern.MatchString(s)
}
