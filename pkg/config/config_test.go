package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/matzehuels/wordtower/pkg/errors"
	"github.com/matzehuels/wordtower/pkg/punctuation"
)

func TestDefault(t *testing.T) {
	f := Default()
	require.NoError(t, f.Validate())
	require.Equal(t, 800.0, f.Viewport.Width)
	require.Equal(t, "the", f.Selection.Word)
	require.Equal(t, punctuation.DefaultKinds(), f.Punctuation)
}

func TestParsePartial(t *testing.T) {
	f, err := Parse(`
[viewport]
width = 1200

[selection]
word = "dream"
`)
	require.NoError(t, err)
	require.Equal(t, 1200.0, f.Viewport.Width)
	require.Equal(t, 600.0, f.Viewport.Height, "unset keys keep defaults")
	require.Equal(t, "dream", f.SelectionDefaults().Word)
	require.Equal(t, ".", f.SelectionDefaults().Punctuation)
	require.Equal(t, punctuation.DefaultKinds(), f.Punctuation)
}

func TestParsePunctuationReplacesDefaults(t *testing.T) {
	f, err := Parse(`
[[punctuation]]
symbol = ":"
name = "colon"

[[punctuation]]
symbol = "—"
name = "dash"
`)
	require.NoError(t, err)
	require.Equal(t, []punctuation.Kind{
		{Symbol: ":", Name: "colon"},
		{Symbol: "—", Name: "dash"},
	}, f.LayoutConfig().Punctuation)
}

func TestParseInvalid(t *testing.T) {
	tests := []struct {
		name string
		data string
		code errors.Code
	}{
		{"syntax", "[viewport", errors.ErrCodeInvalidConfig},
		{"unknown key", "[viewport]\ndepth = 3", errors.ErrCodeInvalidConfig},
		{"margin too wide", "[margins]\nhorizontal = 400", errors.ErrCodeInvalidConfig},
		{"listing inverted", "[listing]\nmin_font = 50\nmax_font = 10", errors.ErrCodeInvalidConfig},
		{"bad symbol", "[[punctuation]]\nsymbol = \"ab\"\nname = \"x\"", errors.ErrCodeInvalidPunctuation},
		{"empty punctuation", "punctuation = []", errors.ErrCodeInvalidPunctuation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.data)
			require.Error(t, err)
			require.True(t, errors.Is(err, tt.code), "code = %v, want %v", errors.GetCode(err), tt.code)
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)
	require.NoError(t, os.WriteFile(path, []byte("[margins]\nvertical = 10\n"), 0o644))

	f, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 10.0, f.Margins.Vertical)

	_, err = Load(filepath.Join(dir, "missing.toml"))
	require.True(t, errors.Is(err, errors.ErrCodeFileNotFound))

	f, err = LoadOptional(filepath.Join(dir, "missing.toml"))
	require.NoError(t, err)
	require.Equal(t, Default(), f)
}

func TestDefaultPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	p, err := DefaultPath("wordtower")
	require.NoError(t, err)
	require.Equal(t, "/tmp/xdg/wordtower/config.toml", p)
}

func TestLoadExampleConfig(t *testing.T) {
	f, err := Load(filepath.Join("..", "..", "examples", "config.toml"))
	require.NoError(t, err)
	require.Equal(t, 1400.0, f.Viewport.Width)
	require.Equal(t, "nation", f.SelectionDefaults().Word)
	require.Len(t, f.Punctuation, 7)
	require.Equal(t, punctuation.Kind{Symbol: ":", Name: "colon"}, f.Punctuation[5])
}
