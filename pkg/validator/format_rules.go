package validator

import (
	"net"
	"net/url"
	"regexp"
	"strings"

	"golang.org/x/text/cases"
)

var (
	emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

	// Optional country code, optional parenthesised area code, then digit groups
	// separated by space, dot or dash.
	phoneRegex = regexp.MustCompile(`^(\+\d{1,3}[\s.-]?)?(\(\d{1,4}\)|\d{1,4})([\s.-]?\d{1,4}){1,5}$`)

	urlSchemes = map[string]bool{"http": true, "https": true, "ftp": true, "ftps": true}
)

const (
	minPhoneDigits = 7
	maxPhoneDigits = 15
)

// IsBoolean reports whether value is "true" or "false", ignoring case and surrounding space.
func IsBoolean(value string) bool {
	folded := cases.Fold().String(strings.TrimSpace(value))
	return folded == "true" || folded == "false"
}

// IsEmail reports whether value looks like local@domain.tld.
func IsEmail(value string) bool {
	return emailRegex.MatchString(strings.TrimSpace(value))
}

// IsURL reports whether value is an absolute http, https, ftp or ftps URL with a dotted host.
func IsURL(value string) bool {
	value = strings.TrimSpace(value)
	if value == "" || strings.ContainsAny(value, " \t\r\n") {
		return false
	}

	u, err := url.Parse(value)
	if err != nil || u.Opaque != "" || !urlSchemes[u.Scheme] {
		return false
	}

	host := u.Hostname()
	if host == "" {
		return false
	}
	if net.ParseIP(host) != nil {
		return true
	}

	labels := strings.Split(host, ".")
	if len(labels) < 2 {
		return false
	}
	for _, label := range labels {
		if label == "" || strings.HasPrefix(label, "-") || strings.HasSuffix(label, "-") {
			return false
		}
	}
	return true
}

// IsPhoneNumber reports whether value is a phone number. When templates are given the
// value must match one of them exactly, where X, x and # each stand for a single digit
// and every other character is literal. Without templates a permissive international
// pattern with 7 to 15 digits is used.
func IsPhoneNumber(value string, templates ...string) bool {
	value = strings.TrimSpace(value)
	if value == "" {
		return false
	}

	if len(templates) > 0 {
		for _, tpl := range templates {
			if matchPhoneTemplate(value, tpl) {
				return true
			}
		}
		return false
	}

	if !phoneRegex.MatchString(value) {
		return false
	}
	digits := 0
	for _, r := range value {
		if r >= '0' && r <= '9' {
			digits++
		}
	}
	return digits >= minPhoneDigits && digits <= maxPhoneDigits
}

func matchPhoneTemplate(value, tpl string) bool {
	v, t := []rune(value), []rune(tpl)
	if len(v) != len(t) {
		return false
	}
	for i, tr := range t {
		switch tr {
		case 'X', 'x', '#':
			if v[i] < '0' || v[i] > '9' {
				return false
			}
		default:
			if v[i] != tr {
				return false
			}
		}
	}
	return true
}

// ValidPhoneTemplate validates that a phone template contains at least one digit placeholder.
func ValidPhoneTemplate(field, tpl string) Rule {
	return Rule{
		Check: func() bool { return strings.ContainsAny(tpl, "Xx#") },
		Error: fieldError(field, "phone_template", "phone template must contain X, x or # placeholders", nil),
	}
}
