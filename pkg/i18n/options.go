package i18n

import (
	"io"
	"log/slog"
)

// Option is a function that configures a Catalog instance.
type Option func(*Catalog)

// WithDefaultLanguage sets the language used when the active language lacks a message.
func WithDefaultLanguage(lang string) Option {
	return func(c *Catalog) {
		if lang != "" {
			c.defaultLang = lang
		}
	}
}

// WithMessages overrides individual templates per language. Later calls win per key.
func WithMessages(messages map[string]map[string]string) Option {
	return func(c *Catalog) {
		tables := make(map[string]map[string]any, len(messages))
		for lang, table := range messages {
			converted := make(map[string]any, len(table))
			for k, v := range table {
				converted[k] = v
			}
			tables[lang] = converted
		}
		c.pendingOverrides = append(c.pendingOverrides, tables)
	}
}

// WithSharedMessages sets templates that apply to every language. They replace
// built-in templates but lose to per-language overrides.
func WithSharedMessages(messages map[string]string) Option {
	return func(c *Catalog) {
		for k, v := range messages {
			c.shared[k] = v
		}
	}
}

// WithAdapter loads overrides from an adapter, such as a FileAdapter, when the catalog is built.
// Adapter overrides are applied after WithMessages overrides.
func WithAdapter(adapter MessageAdapter) Option {
	return func(c *Catalog) {
		if adapter != nil {
			c.adapters = append(c.adapters, adapter)
		}
	}
}

// WithLogger provides a customizable logger for the catalog.
// If not specified, a discard logger is used.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Catalog) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithMissingTranslationsLogging controls whether missing messages are logged.
func WithMissingTranslationsLogging(log bool) Option {
	return func(c *Catalog) {
		c.missingLogMode = log
	}
}

// WithNoLogging is a convenience option that disables all logging.
func WithNoLogging() Option {
	return func(c *Catalog) {
		c.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
		c.missingLogMode = false
	}
}
