package locale_test

import (
	"testing"

	"github.com/gpiedrahita-hub/infinite-herbs-admin/locale"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Run("supported", func(t *testing.T) {
		for _, l := range locale.Supported() {
			parsed, ok := locale.Parse(string(l))
			require.True(t, ok)
			require.Equal(t, l, parsed)
		}
	})

	t.Run("case insensitive", func(t *testing.T) {
		parsed, ok := locale.Parse("EN")
		require.True(t, ok)
		require.Equal(t, locale.English, parsed)
	})

	t.Run("unsupported falls back to default", func(t *testing.T) {
		for _, bad := range []string{"fr", "pt-BR", "", "esx", "login"} {
			parsed, ok := locale.Parse(bad)
			require.False(t, ok, "segment %q should not be supported", bad)
			require.Equal(t, locale.Default, parsed)
		}
	})
}

func TestSplitPath(t *testing.T) {
	tests := []struct {
		path      string
		locale    locale.Locale
		logical   string
		hadPrefix bool
	}{
		{"/es/dashboard", locale.Spanish, "/dashboard", true},
		{"/en/users", locale.English, "/users", true},
		{"/en/users/42/edit", locale.English, "/users/42/edit", true},
		{"/es", locale.Spanish, "/", true},
		{"/en/", locale.English, "/", true},
		{"/dashboard", locale.Default, "/dashboard", false},
		{"/", locale.Default, "/", false},
		{"/fr/dashboard", locale.Default, "/fr/dashboard", false},
	}

	for _, tc := range tests {
		t.Run(tc.path, func(t *testing.T) {
			l, logical, hadPrefix := locale.SplitPath(tc.path)
			require.Equal(t, tc.locale, l)
			require.Equal(t, tc.logical, logical)
			require.Equal(t, tc.hadPrefix, hadPrefix)
		})
	}
}

func TestMatchAcceptLanguage(t *testing.T) {
	require.Equal(t, locale.English, locale.MatchAcceptLanguage("en-US,en;q=0.9"))
	require.Equal(t, locale.Spanish, locale.MatchAcceptLanguage("es-MX,es;q=0.9,en;q=0.5"))
	require.Equal(t, locale.Default, locale.MatchAcceptLanguage(""))
	require.Equal(t, locale.Default, locale.MatchAcceptLanguage("not a header"))
}

func TestPrinter(t *testing.T) {
	require.Equal(t, "Iniciar sesión", locale.Printer(locale.Spanish).Sprintf("login.title"))
	require.Equal(t, "Log in", locale.Printer(locale.English).Sprintf("login.title"))
}
