// Package i18n loads the UI message catalogs and resolves the player's
// language preference against them.
package i18n

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// BaseLocale is the locale every other catalog falls back to.
const BaseLocale = "en"

// ErrUnknownLanguage is returned when a language has no catalog.
var ErrUnknownLanguage = errors.New("i18n: unknown language")

//go:embed locales/*.yaml
var embeddedFS embed.FS

type catalogFile struct {
	Locale   string            `yaml:"locale"`
	Name     string            `yaml:"name"`
	Messages map[string]string `yaml:"messages"`
}

type locale struct {
	tag      language.Tag
	name     string
	messages map[string]string
}

// Catalog holds the messages of every supported locale.
type Catalog struct {
	locales map[string]*locale
	order   []string // BaseLocale first, then alphabetical
	matcher language.Matcher
}

var defaultCatalog = mustLoadEmbedded()

// Default returns the catalog embedded in the binary.
func Default() *Catalog {
	return defaultCatalog
}

func mustLoadEmbedded() *Catalog {
	c, err := LoadFS(embeddedFS)
	if err != nil {
		panic(err)
	}
	return c
}

// LoadFS reads every locales/*.yaml file of fsys.
func LoadFS(fsys fs.FS) (*Catalog, error) {
	paths, err := fs.Glob(fsys, "locales/*.yaml")
	if err != nil {
		return nil, fmt.Errorf("i18n: glob catalogs: %w", err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("i18n: no catalog files found")
	}
	sort.Strings(paths)

	c := &Catalog{locales: make(map[string]*locale, len(paths))}
	for _, p := range paths {
		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return nil, fmt.Errorf("i18n: read %s: %w", p, err)
		}
		if err := c.add(p, data); err != nil {
			return nil, err
		}
	}

	if _, ok := c.locales[BaseLocale]; !ok {
		return nil, fmt.Errorf("i18n: base locale %s is not defined", BaseLocale)
	}

	for id := range c.locales {
		if id != BaseLocale {
			c.order = append(c.order, id)
		}
	}
	sort.Strings(c.order)
	c.order = append([]string{BaseLocale}, c.order...)

	tags := make([]language.Tag, len(c.order))
	for i, id := range c.order {
		tags[i] = c.locales[id].tag
	}
	c.matcher = language.NewMatcher(tags)
	return c, nil
}

func (c *Catalog) add(p string, data []byte) error {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("i18n: parse %s: %w", p, err)
	}

	id := strings.TrimSpace(file.Locale)
	fromPath := strings.TrimSuffix(path.Base(p), path.Ext(p))
	if id == "" {
		return fmt.Errorf("i18n: %s: locale is required", p)
	}
	if id != fromPath {
		return fmt.Errorf("i18n: %s: locale %q must match file name %q", p, id, fromPath)
	}
	if len(file.Messages) == 0 {
		return fmt.Errorf("i18n: %s: messages are required", p)
	}
	tag, err := language.Parse(id)
	if err != nil {
		return fmt.Errorf("i18n: %s: parse locale: %w", p, err)
	}

	messages := make(map[string]string, len(file.Messages))
	for key, value := range file.Messages {
		key = strings.TrimSpace(key)
		if key == "" {
			return fmt.Errorf("i18n: %s: message key cannot be blank", p)
		}
		messages[key] = value
	}

	name := strings.TrimSpace(file.Name)
	if name == "" {
		name = id
	}
	c.locales[id] = &locale{tag: tag, name: name, messages: messages}
	return nil
}

// Languages returns the supported locale ids, BaseLocale first.
func (c *Catalog) Languages() []string {
	return append([]string(nil), c.order...)
}

// Has reports whether id has a catalog.
func (c *Catalog) Has(id string) bool {
	_, ok := c.locales[strings.TrimSpace(id)]
	return ok
}

// DisplayName returns the native name of the locale, or id if unknown.
func (c *Catalog) DisplayName(id string) string {
	if l, ok := c.locales[id]; ok {
		return l.name
	}
	return id
}

// Match resolves a preference such as "es-MX" or "de_AT" to the closest
// supported locale id. Unmatched preferences resolve to BaseLocale.
func (c *Catalog) Match(pref string) string {
	pref = strings.ReplaceAll(strings.TrimSpace(pref), "_", "-")
	if pref == "" {
		return BaseLocale
	}
	tag, err := language.Parse(pref)
	if err != nil {
		return BaseLocale
	}
	_, idx, conf := c.matcher.Match(tag)
	if conf == language.No {
		return BaseLocale
	}
	return c.order[idx]
}

// Next returns the locale after id in Languages order, wrapping around.
func (c *Catalog) Next(id string, step int) string {
	n := len(c.order)
	for i, l := range c.order {
		if l == id {
			return c.order[((i+step)%n+n)%n]
		}
	}
	return BaseLocale
}

// Message returns the message for key in locale id, falling back to
// BaseLocale.
func (c *Catalog) Message(id, key string) (string, bool) {
	if l, ok := c.locales[id]; ok {
		if msg, ok := l.messages[key]; ok {
			return msg, true
		}
	}
	if id != BaseLocale {
		msg, ok := c.locales[BaseLocale].messages[key]
		return msg, ok
	}
	return "", false
}

// MissingKeys lists the BaseLocale keys that locale id does not define.
func (c *Catalog) MissingKeys(id string) []string {
	l, ok := c.locales[id]
	if !ok {
		return nil
	}
	var missing []string
	for key := range c.locales[BaseLocale].messages {
		if _, ok := l.messages[key]; !ok {
			missing = append(missing, key)
		}
	}
	sort.Strings(missing)
	return missing
}
