// Package i18n provides the localized message catalog used to render validation issues.
//
// A Catalog ships with built-in templates for English, Vietnamese, Chinese,
// Spanish and French (embedded YAML files under locales/). Callers can override
// any template per language, either in code or from a YAML, JSON or TOML file:
//
//	catalog, err := i18n.New(ctx,
//	    i18n.WithDefaultLanguage("en"),
//	    i18n.WithMessages(map[string]map[string]string{
//	        "en": {"required": "{header} is mandatory (row {row})"},
//	    }),
//	)
//	msg := catalog.Message("vi-VN", "emptyRow", map[string]any{"row": 3})
//
// Message file layout mirrors the built-in files: top-level keys are language
// codes, nested maps are flattened into dotted keys.
//
//	en:
//	  required: "Missing value in {header}"
//	fr:
//	  required: "Valeur manquante dans {header}"
//
// # Lookup
//
// Resolution tries, in order: the override for the active language, the
// override for the default language, the shared overrides set with
// WithSharedMessages, the built-in template for the active language, the built-in template for the default language, and the raw key.
// Language codes are matched through golang.org/x/text/language, so "vi-VN"
// and "vi_VN.UTF-8" both resolve to the "vi" tables when no regional table exists.
//
// # Placeholders
//
// Templates use {name} placeholders. Every occurrence is replaced with
// fmt.Sprint of the matching parameter; placeholders with no parameter are left
// as-is so that a missing value is visible in the output.
package i18n
