package translator

import (
	"context"
	"errors"
)

// ErrUnsupportedLanguage is returned by ParseLanguage for names outside the
// supported set.
var ErrUnsupportedLanguage = errors.New("unsupported language")

// Translator renders an English summary in another language.
type Translator interface {
	Translate(ctx context.Context, summary string, lang Language) (string, error)
}
