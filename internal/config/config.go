// Package config loads the optional YAML configuration of go-dokuwiki.
package config

import (
	"fmt"
	"os"
	"slices"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/agentflare-ai/go-dokuwiki/internal/docparse"
	"github.com/agentflare-ai/go-dokuwiki/internal/dokuwiki"
	derrors "github.com/agentflare-ai/go-dokuwiki/internal/errors"
	"github.com/agentflare-ai/go-dokuwiki/internal/objtree"
)

// DefaultOutput is written when no output path is given.
const DefaultOutput = "dokuwiki.txt"

// Config represents the application configuration.
type Config struct {
	Template TemplateConfig `yaml:"template"`
	Scan     ScanConfig     `yaml:"scan"`
	Syntax   string         `yaml:"syntax"`
	Output   string         `yaml:"output"`
	Log      LogConfig      `yaml:"log"`
}

// EnclosureConfig is an open/close token pair.
type EnclosureConfig struct {
	Open  string `yaml:"open"`
	Close string `yaml:"close"`
}

// TemplateConfig overrides the DokuWiki output tokens. Nil fields keep the
// built-in default.
type TemplateConfig struct {
	FieldTable         *EnclosureConfig  `yaml:"field_table,omitempty"`
	FieldRow           *EnclosureConfig  `yaml:"field_row,omitempty"`
	FieldName          *EnclosureConfig  `yaml:"field_name,omitempty"`
	FieldBody          *EnclosureConfig  `yaml:"field_body,omitempty"`
	ObjectEnclosure    *EnclosureConfig  `yaml:"object_enclosure,omitempty"`
	FieldTranslate     map[string]string `yaml:"field_translate,omitempty"`
	ParamPrefixes      []string          `yaml:"param_prefixes,omitempty"`
	IndentUnit         *string           `yaml:"indent_unit,omitempty"`
	InitialHeaderLevel int               `yaml:"initial_header_level,omitempty"`
	CodeLanguage       *string           `yaml:"code_language,omitempty"`
}

// ScanConfig bounds the object scan.
type ScanConfig struct {
	Depth      *int `yaml:"depth,omitempty"`
	Unexported bool `yaml:"unexported"`
}

// LogConfig selects the log level and handler format.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

var (
	logLevels  = []string{"debug", "info", "warn", "error"}
	logFormats = []string{"text", "json"}
)

// Default returns the configuration used when no file is given.
func Default() *Config {
	depth := objtree.DefaultDepth
	return &Config{
		Scan:   ScanConfig{Depth: &depth},
		Syntax: string(docparse.SyntaxGoDoc),
		Output: DefaultOutput,
		Log:    LogConfig{Level: "info", Format: "text"},
	}
}

// Load reads a configuration file. An empty path returns Default. A .env
// file in the working directory, when present, is loaded first so its
// variables can be expanded in the YAML.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	_ = godotenv.Load()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, derrors.ConfigNotFound(path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, derrors.ConfigInvalid(path, err)
	}
	cfg := Default()
	if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(data))), cfg); err != nil {
		return nil, derrors.ConfigInvalid(path, err)
	}
	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) normalize() {
	if c.Syntax == "" {
		c.Syntax = string(docparse.SyntaxGoDoc)
	}
	if c.Output == "" {
		c.Output = DefaultOutput
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
	if c.Scan.Depth == nil {
		depth := objtree.DefaultDepth
		c.Scan.Depth = &depth
	}
}

// Validate checks values that have no usable interpretation.
func (c *Config) Validate() error {
	if c.Scan.Depth != nil && *c.Scan.Depth < 0 {
		return derrors.ValidationFailed("scan.depth", fmt.Sprintf("must be >= 0, got %d", *c.Scan.Depth))
	}
	if c.Template.InitialHeaderLevel < 0 {
		return derrors.ValidationFailed("template.initial_header_level", "must be >= 0")
	}
	if !slices.Contains(docparse.Syntaxes(), docparse.Syntax(c.Syntax)) {
		return derrors.ValidationFailed("syntax", fmt.Sprintf("unknown syntax %q", c.Syntax))
	}
	if !slices.Contains(logLevels, c.Log.Level) {
		return derrors.ValidationFailed("log.level", fmt.Sprintf("unknown level %q", c.Log.Level))
	}
	if !slices.Contains(logFormats, c.Log.Format) {
		return derrors.ValidationFailed("log.format", fmt.Sprintf("unknown format %q", c.Log.Format))
	}
	return nil
}

// Depth returns the configured scan depth.
func (c *Config) Depth() int {
	if c.Scan.Depth == nil {
		return objtree.DefaultDepth
	}
	return *c.Scan.Depth
}

// DokuTemplate applies the template overrides to the built-in template.
func (c *Config) DokuTemplate() dokuwiki.Template {
	t := dokuwiki.DefaultTemplate()
	tc := c.Template
	apply := func(dst *dokuwiki.Enclosure, src *EnclosureConfig) {
		if src != nil {
			*dst = dokuwiki.Enclosure{Open: src.Open, Close: src.Close}
		}
	}
	apply(&t.FieldTable, tc.FieldTable)
	apply(&t.FieldRow, tc.FieldRow)
	apply(&t.FieldName, tc.FieldName)
	apply(&t.FieldBody, tc.FieldBody)
	apply(&t.ObjectEnclosure, tc.ObjectEnclosure)
	if tc.FieldTranslate != nil {
		t.FieldTranslate = tc.FieldTranslate
	}
	if tc.ParamPrefixes != nil {
		t.ParamPrefixes = tc.ParamPrefixes
	}
	if tc.IndentUnit != nil {
		t.IndentUnit = *tc.IndentUnit
	}
	if tc.InitialHeaderLevel > 0 {
		t.InitialHeaderLevel = tc.InitialHeaderLevel
	}
	if tc.CodeLanguage != nil {
		t.CodeLanguage = *tc.CodeLanguage
	}
	return t
}
