// Package inflect provides the naming helpers used to derive class, route and
// display names from a resource name.
package inflect

import (
	"strings"
	"unicode"
)

// Pluralize converts a singular noun to its plural form.
//
// Rules, first match wins:
//   - consonant followed by "y": "y" becomes "ies"
//   - ends with "s", "x", "z", "ch" or "sh": append "es"
//   - otherwise append "s"
//
// Suffix matching ignores case; the appended suffix is upper case when the
// word's last letter is, so "Category" becomes "Categories" and "BOX" "BOXES".
func Pluralize(word string) string {
	if word == "" {
		return ""
	}

	lower := strings.ToLower(word)
	upper := unicode.IsUpper(rune(word[len(word)-1]))
	suffix := func(s string) string {
		if upper {
			return strings.ToUpper(s)
		}
		return s
	}

	if strings.HasSuffix(lower, "y") && len(lower) > 1 && !isVowel(rune(lower[len(lower)-2])) {
		return word[:len(word)-1] + suffix("ies")
	}

	for _, end := range []string{"s", "x", "z", "ch", "sh"} {
		if strings.HasSuffix(lower, end) {
			return word + suffix("es")
		}
	}

	return word + suffix("s")
}

func isVowel(r rune) bool {
	switch r {
	case 'a', 'e', 'i', 'o', 'u':
		return true
	}
	return false
}

// Camelize converts a snake_case or kebab-case name to CamelCase.
// Existing inner capitals are kept, so "blogPost" becomes "BlogPost".
func Camelize(name string) string {
	parts := strings.FieldsFunc(name, func(r rune) bool {
		return r == '-' || r == '_'
	})

	var b strings.Builder
	for _, part := range parts {
		b.WriteString(strings.ToUpper(part[:1]))
		b.WriteString(part[1:])
	}
	return b.String()
}
