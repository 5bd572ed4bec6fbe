package i18n

import (
	"fmt"

	"golang.org/x/text/message"
)

// Localizer translates keys for the current language. It is shared by
// every screen of one session.
type Localizer struct {
	catalog *Catalog
	lang    string
	printer *message.Printer
}

// NewLocalizer creates a localizer for the closest match of pref.
func NewLocalizer(c *Catalog, pref string) *Localizer {
	if c == nil {
		c = Default()
	}
	l := &Localizer{catalog: c}
	l.use(c.Match(pref))
	return l
}

func (l *Localizer) use(id string) {
	l.lang = id
	l.printer = message.NewPrinter(l.catalog.locales[id].tag)
}

// Catalog returns the catalog behind the localizer.
func (l *Localizer) Catalog() *Catalog { return l.catalog }

// Language returns the current locale id.
func (l *Localizer) Language() string { return l.lang }

// Set switches to locale id. Unsupported ids return ErrUnknownLanguage
// and keep the current language.
func (l *Localizer) Set(id string) error {
	if !l.catalog.Has(id) {
		return fmt.Errorf("%w: %q", ErrUnknownLanguage, id)
	}
	l.use(id)
	return nil
}

// T returns the message for key, or key itself when no catalog has it.
func (l *Localizer) T(key string) string {
	if msg, ok := l.catalog.Message(l.lang, key); ok {
		return msg
	}
	return key
}

// Tf formats the message for key with args, using the number formatting
// of the current language.
func (l *Localizer) Tf(key string, args ...any) string {
	return l.printer.Sprintf(l.T(key), args...)
}
