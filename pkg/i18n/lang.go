package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

// DefaultLanguage is used when no language is configured or a message is missing.
const DefaultLanguage = "en"

// NormalizeLanguage converts BCP 47 tags and POSIX locale names ("vi_VN.UTF-8")
// into canonical BCP 47 form ("vi-VN"). Unparseable input is returned lowercased.
func NormalizeLanguage(lang string) string {
	lang = strings.TrimSpace(lang)
	if i := strings.IndexAny(lang, ".@"); i >= 0 {
		lang = lang[:i]
	}
	lang = strings.ReplaceAll(lang, "_", "-")

	tag, err := language.Parse(lang)
	if err != nil {
		return strings.ToLower(lang)
	}
	return tag.String()
}

// languageCandidates lists lookup keys for lang from most to least specific:
// the raw code, its canonical form and its base language.
func languageCandidates(lang string) []string {
	if lang == "" {
		return nil
	}

	candidates := []string{lang}
	add := func(c string) {
		for _, existing := range candidates {
			if strings.EqualFold(existing, c) {
				return
			}
		}
		candidates = append(candidates, c)
	}

	canonical := NormalizeLanguage(lang)
	add(canonical)

	if tag, err := language.Parse(canonical); err == nil {
		if base, conf := tag.Base(); conf != language.No {
			add(base.String())
		}
	}
	return candidates
}
