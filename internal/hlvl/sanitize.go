package hlvl

import "strings"

// Sanitize maps a raw feature label to a valid HLVL identifier. Spaces become
// underscores, `-` becomes "Minus", `+` becomes "Plus", `.` becomes "dot" and
// `/` is dropped, in that order. Every other character is kept.
func Sanitize(raw string) string {
	s := strings.ReplaceAll(raw, " ", "_")
	s = strings.ReplaceAll(s, "-", "Minus")
	s = strings.ReplaceAll(s, "+", "Plus")
	s = strings.ReplaceAll(s, ".", "dot")
	return strings.ReplaceAll(s, "/", "")
}
