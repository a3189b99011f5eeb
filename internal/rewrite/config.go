// Package rewrite implements a deterministic, configuration-driven Markdown
// rewriting pass. It is line-oriented and independent of the block model in
// internal/txt2md; it trades the analyzer's heuristics for predictability.
package rewrite

import "fmt"

// Enumeration values for the Config fields.
const (
	ListBullet   = "bullet"
	ListNumbered = "numbered"

	SpacingSingle = "single"
	SpacingDouble = "double"

	EmphasisAsterisk   = "asterisk"
	EmphasisUnderscore = "underscore"

	CodeIndented = "indented"
	CodeFenced   = "fenced"
)

// Config drives a [Rewrite] invocation. It is immutable per invocation; no
// state is shared between calls.
type Config struct {
	// HeadingDepth is clamped to 1-6 (and capped at 3 for section
	// headings); out-of-range values are never an error.
	HeadingDepth     int    `yaml:"heading_depth"`
	ListStyle        string `yaml:"list_style"`
	ParagraphSpacing string `yaml:"paragraph_spacing"`
	EmphasisStyle    string `yaml:"emphasis_style"`
	CodeBlockStyle   string `yaml:"code_block_style"`
}

// DefaultConfig returns the configuration used when the caller supplies
// nothing.
func DefaultConfig() Config {
	return Config{
		HeadingDepth:     2,
		ListStyle:        ListBullet,
		ParagraphSpacing: SpacingSingle,
		EmphasisStyle:    EmphasisAsterisk,
		CodeBlockStyle:   CodeFenced,
	}
}

// InvalidConfigError reports a configuration field whose value is outside
// its documented enumeration.
type InvalidConfigError struct {
	Field string
	Value string
}

func (e *InvalidConfigError) Error() string {
	return fmt.Sprintf("invalid configuration: %s=%q", e.Field, e.Value)
}

func (c Config) validate() error {
	checks := []struct {
		field   string
		value   string
		allowed []string
	}{
		{"list_style", c.ListStyle, []string{ListBullet, ListNumbered}},
		{"paragraph_spacing", c.ParagraphSpacing, []string{SpacingSingle, SpacingDouble}},
		{"emphasis_style", c.EmphasisStyle, []string{EmphasisAsterisk, EmphasisUnderscore}},
		{"code_block_style", c.CodeBlockStyle, []string{CodeIndented, CodeFenced}},
	}

	for _, check := range checks {
		if !contains(check.allowed, check.value) {
			return &InvalidConfigError{Field: check.field, Value: check.value}
		}
	}

	return nil
}

func contains(values []string, value string) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}

	return false
}

func (c Config) headingDepth() int {
	if c.HeadingDepth < 1 {
		return 1
	}

	if c.HeadingDepth > 6 {
		return 6
	}

	return c.HeadingDepth
}
