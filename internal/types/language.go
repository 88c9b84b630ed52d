// Package types provides type definitions for the résumé data rendered by mycv.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"fmt"

	"golang.org/x/text/language"
)

// Language is one of the closed set of display languages a résumé exists in.
// The zero value is Russian, which is also the default language.
type Language int

const (
	Russian Language = iota
	English
	Thai
)

// DefaultLanguage is served when a request carries no language segment.
const DefaultLanguage = Russian

// Languages returns every supported language in build order.
func Languages() []Language {
	return []Language{Russian, English, Thai}
}

// Code returns the short code used in file names and URL paths.
func (l Language) Code() string {
	switch l {
	case Russian:
		return "ru"
	case Thai:
		return "th"
	default:
		return "en"
	}
}

func (l Language) String() string {
	return l.Code()
}

// Tag returns the BCP 47 tag for the language.
func (l Language) Tag() language.Tag {
	switch l {
	case Russian:
		return language.Russian
	case Thai:
		return language.Thai
	default:
		return language.English
	}
}

// ParseLanguage maps a short code to a Language. It never fails: "ru" and "th"
// select their languages and every other input, "en" included, is English.
func ParseLanguage(code string) Language {
	switch code {
	case "ru":
		return Russian
	case "th":
		return Thai
	default:
		return English
	}
}

// ResolveLanguage resolves an optional URL path segment. A nil segment means
// the request had none and yields DefaultLanguage.
func ResolveLanguage(segment *string) Language {
	if segment == nil {
		return DefaultLanguage
	}
	return ParseLanguage(*segment)
}

// LookupLanguage is the strict counterpart of ParseLanguage used for
// configuration values, where a typo should be reported instead of silently
// turning into English.
func LookupLanguage(code string) (Language, error) {
	for _, l := range Languages() {
		if l.Code() == code {
			return l, nil
		}
	}
	return DefaultLanguage, fmt.Errorf("unsupported language %q", code)
}
