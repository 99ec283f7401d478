package textcase

import (
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DefaultLanguage is the language used when none is configured.
var DefaultLanguage = language.English

// Title upper-cases the first letter of each word in s and lower-cases the
// rest, following the casing rules of tag.
//
// A new Caser is built per call because cases.Caser keeps internal state
// and must not be shared between goroutines.
func Title(s string, tag language.Tag) string {
	return cases.Title(tag).String(s)
}

// ParseLanguage parses a BCP 47 language tag such as "en", "fr" or "tr".
// An empty string yields DefaultLanguage.
func ParseLanguage(s string) (language.Tag, error) {
	if s == "" {
		return DefaultLanguage, nil
	}
	tag, err := language.Parse(s)
	if err != nil {
		return language.Und, fmt.Errorf("invalid language tag %q: %w", s, err)
	}
	return tag, nil
}
