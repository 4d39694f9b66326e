package i18n

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEveryKeyTranslated(t *testing.T) {
	for k := Title; k <= InitFailed; k++ {
		for _, loc := range Locales() {
			s, ok := table(loc.Locale)[k]
			require.True(t, ok, "key %d missing in %s", k, loc.Locale)
			assert.NotEmpty(t, s)
		}
		assert.Equal(t,
			strings.Count(en[k], "%s"), strings.Count(zh[k], "%s"),
			"placeholder count differs for key %d", k)
	}
}

func TestText(t *testing.T) {
	assert.Equal(t, "Yes", Text(English, Yes))
	assert.Equal(t, "是", Text(Chinese, Yes))
	assert.Equal(t, "Yes", Text(Locale("fr"), Yes))
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "🔑 Env vars prefixed with: APP", Format(English, PrefixAdded, "APP"))
	assert.Equal(t, "📄 项目入口: /p/README.md", Format(Chinese, ReadmePath, "/p", "README.md"))
}

func TestParseLocale(t *testing.T) {
	tests := []struct {
		in      string
		want    Locale
		wantErr bool
	}{
		{"", English, false},
		{"en", English, false},
		{"en_US.UTF-8", English, false},
		{"C", English, false},
		{"zh", Chinese, false},
		{"zh-CN", Chinese, false},
		{"ZH_tw", Chinese, false},
		{"fr", English, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLocale(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}
