package i18n

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Parser turns the content of a message file into a language -> key -> value table.
// Nested maps are allowed; their keys are joined with dots by the catalog.
type Parser interface {
	Parse(ctx context.Context, content string) (map[string]map[string]any, error)

	// SupportsFileExtension checks if the parser supports a given file extension.
	// The extension may or may not include a leading dot.
	SupportsFileExtension(ext string) bool
}

// NewParserForFile returns a parser based on the file extension, or nil.
func NewParserForFile(filename string) Parser {
	ext := filepath.Ext(filename)
	for _, p := range []Parser{NewYAMLParser(), NewJSONParser(), NewTOMLParser()} {
		if p.SupportsFileExtension(ext) {
			return p
		}
	}
	return nil
}

// YAMLParser reads documents whose top-level keys are language codes.
type YAMLParser struct{}

func NewYAMLParser() *YAMLParser { return &YAMLParser{} }

func (p *YAMLParser) Parse(ctx context.Context, content string) (map[string]map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrYAMLParsingCancelled, err)
	}

	var data map[string]any
	if err := yaml.Unmarshal([]byte(content), &data); err != nil {
		return nil, errors.Join(ErrFailedToParseYAML, err)
	}
	return languageTables(data, ErrFailedToParseYAML)
}

func (p *YAMLParser) SupportsFileExtension(ext string) bool {
	return hasExtension(ext, "yaml", "yml")
}

// JSONParser reads objects whose top-level keys are language codes.
type JSONParser struct{}

func NewJSONParser() *JSONParser { return &JSONParser{} }

func (p *JSONParser) Parse(ctx context.Context, content string) (map[string]map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrJSONParsingCancelled, err)
	}

	var data map[string]any
	if err := json.Unmarshal([]byte(content), &data); err != nil {
		return nil, errors.Join(ErrFailedToParseJSON, err)
	}
	return languageTables(data, ErrFailedToParseJSON)
}

func (p *JSONParser) SupportsFileExtension(ext string) bool {
	return hasExtension(ext, "json")
}

// TOMLParser reads documents with one table per language:
//
//	[fr]
//	required = "{column} est obligatoire"
type TOMLParser struct{}

func NewTOMLParser() *TOMLParser { return &TOMLParser{} }

func (p *TOMLParser) Parse(ctx context.Context, content string) (map[string]map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrTOMLParsingCancelled, err)
	}

	var data map[string]any
	if _, err := toml.Decode(content, &data); err != nil {
		return nil, errors.Join(ErrFailedToParseTOML, err)
	}
	return languageTables(data, ErrFailedToParseTOML)
}

func (p *TOMLParser) SupportsFileExtension(ext string) bool {
	return hasExtension(ext, "toml")
}

// languageTables checks that every top-level value is a table of messages.
func languageTables(data map[string]any, errParse error) (map[string]map[string]any, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: no languages found", errParse)
	}

	result := make(map[string]map[string]any, len(data))
	for lang, val := range data {
		table, ok := val.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: language %q: expected a table of messages, got %T", errParse, lang, val)
		}
		result[lang] = table
	}
	return result, nil
}

func hasExtension(ext string, names ...string) bool {
	ext = strings.TrimPrefix(ext, ".")
	for _, name := range names {
		if strings.EqualFold(ext, name) {
			return true
		}
	}
	return false
}
