package neis

import (
	"regexp"
	"strings"
)

// Allergy markers come as "(1.5.6.)" or bare "5.6." after each dish.
var dishDecoration = regexp.MustCompile(`[0-9().]`)

// CleanDishes turns DDISH_NM into newline separated dish names with the
// allergy numbering and punctuation removed.
func CleanDishes(raw string) string {
	s := strings.ReplaceAll(raw, "<br/>", "\n")
	s = dishDecoration.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}
