package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentflare-ai/go-dokuwiki/internal/dokuwiki"
	derrors "github.com/agentflare-ai/go-dokuwiki/internal/errors"
	"github.com/agentflare-ai/go-dokuwiki/internal/objtree"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "go-dokuwiki.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, objtree.DefaultDepth, cfg.Depth())
	assert.Equal(t, "godoc", cfg.Syntax)
	assert.Equal(t, DefaultOutput, cfg.Output)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, dokuwiki.DefaultTemplate(), cfg.DokuTemplate())
	assert.NoError(t, cfg.Validate())
}

func TestLoadOverrides(t *testing.T) {
	path := writeConfig(t, `
syntax: markdown
output: out.txt
scan:
  depth: 1
  unexported: true
log:
  level: debug
  format: json
template:
  object_enclosure:
    open: "<div>\n"
    close: "</div>\n"
  field_translate:
    yields: Yields
  indent_unit: "  "
  initial_header_level: 2
  code_language: text
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "markdown", cfg.Syntax)
	assert.Equal(t, "out.txt", cfg.Output)
	assert.Equal(t, 1, cfg.Depth())
	assert.True(t, cfg.Scan.Unexported)
	assert.Equal(t, "json", cfg.Log.Format)

	tmpl := cfg.DokuTemplate()
	def := dokuwiki.DefaultTemplate()
	assert.Equal(t, dokuwiki.Enclosure{Open: "<div>\n", Close: "</div>\n"}, tmpl.ObjectEnclosure)
	assert.Equal(t, map[string]string{"yields": "Yields"}, tmpl.FieldTranslate)
	assert.Equal(t, "  ", tmpl.IndentUnit)
	assert.Equal(t, 2, tmpl.InitialHeaderLevel)
	assert.Equal(t, "text", tmpl.CodeLanguage)
	assert.Equal(t, def.FieldRow, tmpl.FieldRow, "unset tokens keep defaults")
	assert.Equal(t, def.ParamPrefixes, tmpl.ParamPrefixes)
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "scan:\n  unexported: true\n"))
	require.NoError(t, err)
	assert.Equal(t, objtree.DefaultDepth, cfg.Depth())
	assert.Equal(t, "godoc", cfg.Syntax)
	assert.Equal(t, DefaultOutput, cfg.Output)
}

func TestLoadZeroDepth(t *testing.T) {
	cfg, err := Load(writeConfig(t, "scan:\n  depth: 0\n"))
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.Depth())
}

func TestLoadExpandsEnv(t *testing.T) {
	t.Setenv("DOKU_LANG", "python")
	cfg, err := Load(writeConfig(t, "template:\n  code_language: ${DOKU_LANG}\n"))
	require.NoError(t, err)
	assert.Equal(t, "python", cfg.DokuTemplate().CodeLanguage)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.True(t, derrors.IsCategory(err, derrors.CategoryConfig))

	_, err = Load(writeConfig(t, "scan: [not, a, map]\n"))
	require.Error(t, err)
	assert.True(t, derrors.IsCategory(err, derrors.CategoryConfig))

	cases := map[string]string{
		"negative depth": "scan:\n  depth: -1\n",
		"header level":   "template:\n  initial_header_level: -2\n",
		"syntax":         "syntax: rst\n",
		"log level":      "log:\n  level: loud\n",
		"log format":     "log:\n  format: xml\n",
	}
	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeConfig(t, content))
			require.Error(t, err)
			assert.Equal(t, derrors.CategoryValidation, derrors.GetCategory(err))
		})
	}
}
