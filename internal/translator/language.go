package translator

import (
	"fmt"
	"strings"
)

// Language is an output language offered to the user.
type Language string

const (
	English Language = "English"
	Hindi   Language = "Hindi"
	French  Language = "French"
	German  Language = "German"
	Spanish Language = "Spanish"
)

// Default is the language summaries are generated in.
const Default = English

// Languages lists the supported languages in display order.
var Languages = []Language{English, Hindi, French, German, Spanish}

// ParseLanguage matches name case-insensitively. An empty name means Default.
func ParseLanguage(name string) (Language, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Default, nil
	}
	for _, l := range Languages {
		if strings.EqualFold(name, string(l)) {
			return l, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedLanguage, name)
}

// IsDefault reports whether no translation is needed for l.
func (l Language) IsDefault() bool {
	return l == Default
}

func (l Language) String() string {
	return string(l)
}
