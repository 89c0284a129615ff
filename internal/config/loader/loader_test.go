package loader

import (
	"embed"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atlanticdynamic/expconfig/internal/config"
)

//go:embed testdata/*
var testdataFS embed.FS

func readTestdata(t *testing.T, name string) []byte {
	t.Helper()
	data, err := testdataFS.ReadFile("testdata/" + name)
	require.NoError(t, err)
	return data
}

func writeTempFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestNewLoaderFromBytes(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		l, err := NewLoaderFromBytes(nil, NewTomlLoader)
		assert.ErrorIs(t, err, ErrNoSourceProvided)
		assert.Nil(t, l)
	})

	t.Run("data", func(t *testing.T) {
		l, err := NewLoaderFromBytes(readTestdata(t, "default.toml"), NewTomlLoader)
		require.NoError(t, err)
		assert.NotNil(t, l)
	})
}

func TestNewLoaderFromReader(t *testing.T) {
	l, err := NewLoaderFromReader(strings.NewReader(`{"experiment": {"fontSize": "18px"}}`), NewJSONLoader)
	require.NoError(t, err)

	cfg, err := Load(l)
	require.NoError(t, err)
	assert.Equal(t, "18px", cfg.FontSize)
}

func TestNewLoaderFromFilePath(t *testing.T) {
	t.Run("toml", func(t *testing.T) {
		path := writeTempFile(t, "experiment.toml", readTestdata(t, "default.toml"))
		l, err := NewLoaderFromFilePath(path)
		require.NoError(t, err)
		assert.IsType(t, &tomlLoader{}, l)
	})

	t.Run("json with upper case extension", func(t *testing.T) {
		path := writeTempFile(t, "experiment.JSON", readTestdata(t, "no_comprehension.json"))
		l, err := NewLoaderFromFilePath(path)
		require.NoError(t, err)
		assert.IsType(t, &jsonLoader{}, l)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := NewLoaderFromFilePath(filepath.Join(t.TempDir(), "nonexistent.toml"))
		assert.ErrorIs(t, err, ErrFileNotFound)
	})

	t.Run("unsupported extension", func(t *testing.T) {
		path := writeTempFile(t, "experiment.yaml", []byte("fontSize: 20px"))
		_, err := NewLoaderFromFilePath(path)
		assert.ErrorIs(t, err, ErrUnsupportedExtension)
	})

	t.Run("empty file", func(t *testing.T) {
		path := writeTempFile(t, "empty.toml", nil)
		_, err := NewLoaderFromFilePath(path)
		assert.ErrorIs(t, err, ErrNoSourceProvided)
	})
}

func TestLoad(t *testing.T) {
	t.Run("full document matches defaults", func(t *testing.T) {
		cfg, err := Load(NewTomlLoader(readTestdata(t, "default.toml")))
		require.NoError(t, err)
		assert.Equal(t, config.Default(), cfg)
	})

	t.Run("partial document keeps remaining defaults", func(t *testing.T) {
		cfg, err := Load(NewTomlLoader(readTestdata(t, "partial.toml")))
		require.NoError(t, err)

		expected := config.Default()
		expected.FontColor = "#333333"
		expected.FontSize = "1.25rem"
		assert.Equal(t, expected, cfg)
	})

	t.Run("json flags", func(t *testing.T) {
		cfg, err := Load(NewJSONLoader(readTestdata(t, "no_comprehension.json")))
		require.NoError(t, err)
		assert.False(t, cfg.Comprehension)
		assert.False(t, cfg.CorrectiveFeedback)
		assert.Equal(t, config.DefaultFontFamily, cfg.FontFamily)
	})

	t.Run("invalid values", func(t *testing.T) {
		_, err := Load(NewTomlLoader(readTestdata(t, "invalid_values.toml")))
		require.Error(t, err)
		assert.ErrorIs(t, err, config.ErrFailedToValidateConfig)
		assert.ErrorIs(t, err, config.ErrInvalidColor)
		assert.ErrorIs(t, err, config.ErrInvalidFontSize)
	})
}

func TestTomlLoader_LoadDocument(t *testing.T) {
	tests := []struct {
		name    string
		source  string
		wantErr error
	}{
		{
			name:    "unsupported version",
			source:  "version = \"v2\"\n",
			wantErr: ErrUnsupportedConfigVer,
		},
		{
			name:    "invalid TOML",
			source:  "version = \"v1\"\n[invalid TOML\n",
			wantErr: ErrDecode,
		},
		{
			name:    "unknown key",
			source:  "[experiment]\nbackgroundColor = \"white\"\n",
			wantErr: ErrDecode,
		},
		{
			name:    "wrong type",
			source:  "[experiment]\ncomprehension = \"yes\"\n",
			wantErr: ErrDecode,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTomlLoader([]byte(tt.source)).LoadDocument()
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	t.Run("missing version defaults to latest", func(t *testing.T) {
		doc, err := NewTomlLoader([]byte("[experiment]\nfontSize = \"16px\"\n")).LoadDocument()
		require.NoError(t, err)
		assert.Equal(t, config.VersionLatest, doc.Version)
		assert.Equal(t, "16px", doc.Experiment.FontSize)
	})

	t.Run("empty source", func(t *testing.T) {
		_, err := NewTomlLoader(nil).LoadDocument()
		assert.ErrorIs(t, err, ErrNoSourceProvided)
	})
}

func TestJSONLoader_LoadDocument(t *testing.T) {
	t.Run("unsupported version", func(t *testing.T) {
		_, err := NewJSONLoader([]byte(`{"version": "v0"}`)).LoadDocument()
		assert.ErrorIs(t, err, ErrUnsupportedConfigVer)
	})

	t.Run("unknown key", func(t *testing.T) {
		_, err := NewJSONLoader([]byte(`{"experiment": {"fontWeight": "bold"}}`)).LoadDocument()
		assert.ErrorIs(t, err, ErrDecode)
	})

	t.Run("malformed", func(t *testing.T) {
		_, err := NewJSONLoader([]byte(`{"experiment": `)).LoadDocument()
		assert.ErrorIs(t, err, ErrDecode)
	})

	t.Run("trailing document", func(t *testing.T) {
		src := `{"experiment":{"fontSize":"18px"}} {"version":"v9","bogus":1}`
		_, err := Load(NewJSONLoader([]byte(src)))
		assert.ErrorIs(t, err, ErrDecode)
	})

	t.Run("trailing garbage", func(t *testing.T) {
		_, err := NewJSONLoader([]byte(`{"experiment":{}} ]`)).LoadDocument()
		assert.ErrorIs(t, err, ErrDecode)
	})

	t.Run("trailing whitespace", func(t *testing.T) {
		doc, err := NewJSONLoader([]byte("{\"experiment\":{\"fontSize\":\"18px\"}}\n\n")).LoadDocument()
		require.NoError(t, err)
		assert.Equal(t, "18px", doc.Experiment.FontSize)
	})
}

func TestExportedTOMLLoadsBack(t *testing.T) {
	original := config.Default()
	original.FontColor = "darkslategray"
	original.CorrectiveFeedback = false

	data, err := original.ToTOML()
	require.NoError(t, err)

	cfg, err := NewConfigFromBytes(data)
	require.NoError(t, err)
	assert.Equal(t, original, cfg)
}
