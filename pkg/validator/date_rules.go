package validator

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrymomot/csvcheck/pkg/cache"
)

// DefaultDateFormats are tried in order when a date column declares no format.
var DefaultDateFormats = []string{
	"MM/DD/YYYY",
	"DD/MM/YYYY",
	"YYYY-MM-DD",
	"MM-DD-YYYY",
	"DD-MM-YYYY",
	"YYYY/MM/DD",
	"YYYYMMDD",
	"M/D/YYYY",
	"D/M/YYYY",
}

// DefaultDateTimeFormats are tried in order when a datetime column declares no format.
var DefaultDateTimeFormats = defaultDateTimeFormats()

func defaultDateTimeFormats() []string {
	formats := make([]string, 0, len(DefaultDateFormats)*2+3)
	for _, f := range DefaultDateFormats {
		formats = append(formats, f+" HH:mm:ss", f+" HH:mm")
	}
	return append(formats,
		"YYYY-MM-DD[T]HH:mm:ss",
		"YYYY-MM-DD[T]HH:mm:ssZ",
		"YYYY-MM-DD[T]HH:mm:ss.SSSZ",
	)
}

type dateField uint8

const (
	fieldYear dateField = iota
	fieldShortYear
	fieldMonth
	fieldMonthName
	fieldDay
	fieldHour
	fieldHour12
	fieldMinute
	fieldSecond
	fieldFraction
	fieldMeridiem
	fieldZone
)

type dateToken struct {
	token string
	expr  string
	field dateField
}

const (
	monthNames      = `january|february|march|april|may|june|july|august|september|october|november|december`
	shortMonthNames = `jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec`
	zoneExpr        = `(Z|z|[+-]\d{2}:?\d{2})`
)

// Longest tokens first so that MMMM wins over MM and M.
var dateTokens = []dateToken{
	{"YYYY", `(\d{4})`, fieldYear},
	{"MMMM", `((?i:` + monthNames + `))`, fieldMonthName},
	{"MMM", `((?i:` + shortMonthNames + `))`, fieldMonthName},
	{"SSS", `(\d{3})`, fieldFraction},
	{"YY", `(\d{2})`, fieldShortYear},
	{"MM", `(\d{2})`, fieldMonth},
	{"DD", `(\d{2})`, fieldDay},
	{"HH", `(\d{2})`, fieldHour},
	{"hh", `(\d{2})`, fieldHour12},
	{"mm", `(\d{2})`, fieldMinute},
	{"ss", `(\d{2})`, fieldSecond},
	{"SS", `(\d{2})`, fieldFraction},
	{"ZZ", zoneExpr, fieldZone},
	{"M", `(\d{1,2})`, fieldMonth},
	{"D", `(\d{1,2})`, fieldDay},
	{"H", `(\d{1,2})`, fieldHour},
	{"h", `(\d{1,2})`, fieldHour12},
	{"m", `(\d{1,2})`, fieldMinute},
	{"s", `(\d{1,2})`, fieldSecond},
	{"S", `(\d)`, fieldFraction},
	{"A", `((?i:am|pm))`, fieldMeridiem},
	{"a", `((?i:am|pm))`, fieldMeridiem},
	{"Z", zoneExpr, fieldZone},
}

// DatePattern is a compiled moment-style date pattern such as "DD/MM/YYYY HH:mm".
// Text inside square brackets is matched literally.
type DatePattern struct {
	source string
	re     *regexp.Regexp
	fields []dateField
}

var datePatterns = cache.NewLRU[string, *DatePattern](256)

// CompileDatePattern compiles pattern into a strict matcher.
func CompileDatePattern(pattern string) (*DatePattern, error) {
	return datePatterns.GetOrCreate(pattern, func() (*DatePattern, error) {
		return compileDatePattern(pattern)
	})
}

func compileDatePattern(pattern string) (*DatePattern, error) {
	if strings.TrimSpace(pattern) == "" {
		return nil, fmt.Errorf("%w: empty pattern", ErrInvalidDatePattern)
	}

	var (
		expr   strings.Builder
		fields []dateField
	)
	expr.WriteString("^")

	for rest := pattern; rest != ""; {
		if rest[0] == '[' {
			end := strings.IndexByte(rest, ']')
			if end < 0 {
				return nil, fmt.Errorf("%w: unterminated literal in %q", ErrInvalidDatePattern, pattern)
			}
			expr.WriteString(regexp.QuoteMeta(rest[1:end]))
			rest = rest[end+1:]
			continue
		}

		matched := false
		for _, tok := range dateTokens {
			if strings.HasPrefix(rest, tok.token) {
				expr.WriteString(tok.expr)
				fields = append(fields, tok.field)
				rest = rest[len(tok.token):]
				matched = true
				break
			}
		}
		if matched {
			continue
		}

		r := []rune(rest)[0]
		expr.WriteString(regexp.QuoteMeta(string(r)))
		rest = rest[len(string(r)):]
	}
	expr.WriteString("$")

	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: %q has no date or time tokens", ErrInvalidDatePattern, pattern)
	}

	re, err := regexp.Compile(expr.String())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDatePattern, err)
	}

	return &DatePattern{source: pattern, re: re, fields: fields}, nil
}

func (p *DatePattern) String() string { return p.source }

// Match reports whether value matches the pattern exactly and describes a real
// calendar date and clock time.
func (p *DatePattern) Match(value string) bool {
	groups := p.re.FindStringSubmatch(value)
	if groups == nil {
		return false
	}

	// Leap year default lets "DD/MM" accept 29/02.
	year, month, day := 2000, 1, 1
	hour, minute, second := 0, 0, 0
	hour12 := -1

	for i, field := range p.fields {
		raw := groups[i+1]
		switch field {
		case fieldYear:
			year = atoi(raw)
		case fieldShortYear:
			year = atoi(raw)
			if year > 68 {
				year += 1900
			} else {
				year += 2000
			}
		case fieldMonth:
			month = atoi(raw)
		case fieldMonthName:
			month = monthFromName(raw)
		case fieldDay:
			day = atoi(raw)
		case fieldHour:
			hour = atoi(raw)
		case fieldHour12:
			hour12 = atoi(raw)
		case fieldMinute:
			minute = atoi(raw)
		case fieldSecond:
			second = atoi(raw)
		case fieldZone:
			if !validZone(raw) {
				return false
			}
		}
	}

	if month < 1 || month > 12 {
		return false
	}
	if day < 1 || day > daysIn(year, time.Month(month)) {
		return false
	}
	if hour12 >= 0 && (hour12 < 1 || hour12 > 12) {
		return false
	}
	return hour <= 23 && minute <= 59 && second <= 59
}

func atoi(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return -1
	}
	return n
}

func monthFromName(name string) int {
	name = strings.ToLower(name)
	for i := time.January; i <= time.December; i++ {
		full := strings.ToLower(i.String())
		if name == full || name == full[:3] {
			return int(i)
		}
	}
	return 0
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func validZone(zone string) bool {
	if zone == "Z" || zone == "z" {
		return true
	}
	digits := strings.ReplaceAll(zone[1:], ":", "")
	return atoi(digits[:2]) <= 23 && atoi(digits[2:]) <= 59
}

// IsDate reports whether value matches any of patterns, tried in order.
// Without patterns DefaultDateFormats are used.
func IsDate(value string, patterns ...string) bool {
	if len(patterns) == 0 {
		patterns = DefaultDateFormats
	}
	return matchAnyPattern(strings.TrimSpace(value), patterns)
}

// IsDateTime reports whether value matches any of patterns, tried in order.
// Without patterns DefaultDateTimeFormats are used.
func IsDateTime(value string, patterns ...string) bool {
	if len(patterns) == 0 {
		patterns = DefaultDateTimeFormats
	}
	return matchAnyPattern(strings.TrimSpace(value), patterns)
}

func matchAnyPattern(value string, patterns []string) bool {
	if value == "" {
		return false
	}
	for _, pattern := range patterns {
		p, err := CompileDatePattern(pattern)
		if err != nil {
			continue
		}
		if p.Match(value) {
			return true
		}
	}
	return false
}

// ValidDatePattern validates that pattern compiles.
func ValidDatePattern(field, pattern string) Rule {
	return Rule{
		Check: func() bool {
			_, err := CompileDatePattern(pattern)
			return err == nil
		},
		Error: fieldError(field, "date_pattern",
			fmt.Sprintf("invalid date pattern %q", pattern),
			map[string]any{"pattern": pattern}),
	}
}
