package i18n_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/csvcheck/pkg/i18n"
)

func TestNormalizeLanguage(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in   string
		want string
	}{
		{"en", "en"},
		{"EN", "en"},
		{"vi-VN", "vi-VN"},
		{"vi_vn", "vi-VN"},
		{"vi_VN.UTF-8", "vi-VN"},
		{"de_DE@euro", "de-DE"},
		{" fr-ca ", "fr-CA"},
		{"not a tag!", "not a tag!"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, i18n.NormalizeLanguage(tt.in))
		})
	}
}
