package i18n

import (
	"context"
	"embed"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"sort"
	"strings"
)

//go:embed locales/*.yaml
var builtinLocales embed.FS

// Catalog resolves message keys to localized templates and fills their placeholders.
//
// Lookup order for a key is: override for the active language, override for the
// default language, shared override, built-in template for the active language,
// built-in template for the default language, and finally the key itself.
//
// A Catalog is immutable after construction and safe for concurrent use.
type Catalog struct {
	builtin        map[string]map[string]string
	overrides      map[string]map[string]string
	shared         map[string]string
	defaultLang    string
	missingLogMode bool
	logger         *slog.Logger

	pendingOverrides []map[string]map[string]any
	adapters         []MessageAdapter
}

// New loads the built-in templates and applies the configured overrides.
func New(ctx context.Context, options ...Option) (*Catalog, error) {
	c := &Catalog{
		overrides:   make(map[string]map[string]string),
		shared:      make(map[string]string),
		defaultLang: DefaultLanguage,
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)), // Nope-logger by default
	}

	for _, option := range options {
		option(c)
	}

	builtin, err := NewFSAdapter(builtinLocales, "locales").Load(ctx)
	if err != nil {
		return nil, err
	}
	c.builtin = flattenTables(builtin)

	for _, adapter := range c.adapters {
		tables, err := adapter.Load(ctx)
		if err != nil {
			return nil, err
		}
		c.pendingOverrides = append(c.pendingOverrides, tables)
	}

	for _, tables := range c.pendingOverrides {
		for lang, table := range flattenTables(tables) {
			if lang == "" {
				return nil, fmt.Errorf("%w: empty language code", ErrInvalidMessages)
			}
			if c.overrides[lang] == nil {
				c.overrides[lang] = make(map[string]string, len(table))
			}
			for key, tmpl := range table {
				c.overrides[lang][key] = tmpl
			}
		}
	}
	c.pendingOverrides, c.adapters = nil, nil

	c.logger.DebugContext(ctx, "message catalog loaded",
		slog.Any("languages", c.Languages()),
		slog.String("default_language", c.defaultLang))
	return c, nil
}

// DefaultLanguage returns the language used as a fallback.
func (c *Catalog) DefaultLanguage() string {
	return c.defaultLang
}

// Languages returns every language with built-in or overridden templates.
func (c *Catalog) Languages() []string {
	seen := make(map[string]struct{}, len(c.builtin)+len(c.overrides))
	for lang := range c.builtin {
		seen[lang] = struct{}{}
	}
	for lang := range c.overrides {
		seen[lang] = struct{}{}
	}

	langs := make([]string, 0, len(seen))
	for lang := range seen {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}

// Has reports whether key resolves to a template for lang without falling back to the key.
func (c *Catalog) Has(lang, key string) bool {
	_, ok := c.lookup(lang, key)
	return ok
}

// Message resolves key for lang and substitutes {name} placeholders from params.
func (c *Catalog) Message(lang, key string, params map[string]any) string {
	tmpl, ok := c.lookup(lang, key)
	if !ok {
		if c.missingLogMode {
			c.logger.Warn("message not found", slog.String("lang", lang), slog.String("key", key))
		}
		tmpl = key
	}
	return Format(tmpl, params)
}

func (c *Catalog) lookup(lang, key string) (string, bool) {
	active := languageCandidates(lang)
	fallback := languageCandidates(c.defaultLang)

	if tmpl, ok := findIn(c.overrides, active, key); ok {
		return tmpl, true
	}
	if tmpl, ok := findIn(c.overrides, fallback, key); ok {
		return tmpl, true
	}
	if tmpl, ok := c.shared[key]; ok {
		return tmpl, true
	}
	if tmpl, ok := findIn(c.builtin, active, key); ok {
		return tmpl, true
	}
	return findIn(c.builtin, fallback, key)
}

func findIn(layer map[string]map[string]string, langs []string, key string) (string, bool) {
	for _, lang := range langs {
		if table, ok := layer[lang]; ok {
			if tmpl, ok := table[key]; ok {
				return tmpl, true
			}
		}
	}
	return "", false
}

var placeholderRegex = regexp.MustCompile(`\{([A-Za-z0-9_]+)\}`)

// Format replaces every {name} in tmpl with fmt.Sprint(params[name]).
// Placeholders without a value are left untouched.
func Format(tmpl string, params map[string]any) string {
	if len(params) == 0 || !strings.Contains(tmpl, "{") {
		return tmpl
	}
	return placeholderRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		if val, ok := params[match[1:len(match)-1]]; ok {
			return fmt.Sprint(val)
		}
		return match
	})
}

// flattenTables joins nested keys with dots and stringifies leaf values.
func flattenTables(tables map[string]map[string]any) map[string]map[string]string {
	out := make(map[string]map[string]string, len(tables))
	for lang, table := range tables {
		flat := make(map[string]string, len(table))
		flattenInto(flat, "", table)
		out[lang] = flat
	}
	return out
}

func flattenInto(dst map[string]string, prefix string, src map[string]any) {
	for k, v := range src {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		switch val := v.(type) {
		case map[string]any:
			flattenInto(dst, key, val)
		case string:
			dst[key] = val
		case nil:
		default:
			dst[key] = fmt.Sprint(val)
		}
	}
}
