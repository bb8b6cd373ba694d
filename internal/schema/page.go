// Package schema validates JSON page documents before they are decoded into
// PageContent. It guards the CLI and API ingestion paths against malformed
// payloads; business rules (required headline, CTA presence) stay with the
// content validator.
package schema

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"sync"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

var ErrPayloadInvalid = errors.New("schema: page payload invalid")

const pageSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "additionalProperties": false,
  "properties": {
    "headline": {"type": "string"},
    "subheadline": {"type": "string"},
    "hero_video": {
      "type": "object",
      "additionalProperties": false,
      "properties": {
        "enabled": {"type": "boolean"},
        "embed": {"type": "string"}
      }
    },
    "body_paragraphs": {"type": "array", "items": {"type": "string"}},
    "video_embed": {"type": "string"},
    "cta_buttons": {"type": "array", "items": {"type": "string"}},
    "affiliate_link": {"type": "string"},
    "bonuses": {
      "type": "array",
      "items": {
        "type": "object",
        "additionalProperties": false,
        "properties": {
          "title": {"type": "string"},
          "description": {"type": "string"},
          "type": {"type": "string"},
          "enabled": {"type": "boolean"}
        }
      }
    },
    "primary_color": {"type": "string"},
    "secondary_color": {"type": "string"},
    "heading_font": {"type": "string"},
    "body_font": {"type": "string"}
  }
}`

var (
	compileOnce sync.Once
	compiled    *jsonschema.Schema
	compileErr  error
)

func pageValidator() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		compiler.Draft = jsonschema.Draft2020
		if err := compiler.AddResource("page.json", bytes.NewReader([]byte(pageSchema))); err != nil {
			compileErr = err
			return
		}
		compiled, compileErr = compiler.Compile("page.json")
	})
	return compiled, compileErr
}

// ValidatePage checks a decoded JSON document against the page schema.
// Failures list every violation with its instance location.
func ValidatePage(payload map[string]any) error {
	validator, err := pageValidator()
	if err != nil {
		return fmt.Errorf("schema: compile page schema: %w", err)
	}
	if payload == nil {
		payload = map[string]any{}
	}
	if err := validator.Validate(payload); err != nil {
		var validationErr *jsonschema.ValidationError
		if errors.As(err, &validationErr) {
			return fmt.Errorf("%w: %s", ErrPayloadInvalid, formatIssues(validationErr))
		}
		return fmt.Errorf("%w: %v", ErrPayloadInvalid, err)
	}
	return nil
}

func formatIssues(err *jsonschema.ValidationError) string {
	var parts []string
	var walk func(*jsonschema.ValidationError)
	walk = func(node *jsonschema.ValidationError) {
		if node == nil {
			return
		}
		if len(node.Causes) == 0 {
			location := strings.TrimSpace(node.InstanceLocation)
			if location == "" {
				location = "#"
			} else if !strings.HasPrefix(location, "#") {
				location = "#" + location
			}
			parts = append(parts, fmt.Sprintf("%s: %s", location, strings.TrimSpace(node.Message)))
			return
		}
		for _, cause := range node.Causes {
			walk(cause)
		}
	}
	walk(err)
	return strings.Join(parts, "; ")
}
