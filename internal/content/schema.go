package content

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// documentSchema describes the content document loosely enough to accept
// every historical shape the adapter understands. It flags records the
// adapter would silently drop or misread.
var documentSchema = map[string]any{
	"type":     "object",
	"required": []any{"assessments"},
	"properties": map[string]any{
		"assessments": map[string]any{
			"type":  "array",
			"items": map[string]any{"$ref": "#/$defs/assessment"},
		},
	},
	"$defs": map[string]any{
		"assessment": map[string]any{
			"type":     "object",
			"required": []any{"title", "school", "course"},
			"properties": map[string]any{
				"title":       map[string]any{"type": "string", "minLength": 1},
				"school":      map[string]any{"type": "string"},
				"course":      map[string]any{"type": "string"},
				"schoolLogo":  map[string]any{"type": "string"},
				"examDate":    map[string]any{"$ref": "#/$defs/date"},
				"date":        map[string]any{"$ref": "#/$defs/date"},
				"anotherInfo": map[string]any{"type": "string"},
				"AnotherInfo": map[string]any{"type": "string"},
				"enabled":     map[string]any{"type": "boolean"},
				"order":       map[string]any{"type": "integer"},
				"subjects": map[string]any{
					"type": "array",
					"items": map[string]any{
						"anyOf": []any{
							map[string]any{"$ref": "#/$defs/subject"},
							map[string]any{
								"type":  "array",
								"items": map[string]any{"$ref": "#/$defs/subject"},
							},
						},
					},
				},
			},
		},
		"subject": map[string]any{
			"type": "object",
			"anyOf": []any{
				map[string]any{"required": []any{"title"}},
				map[string]any{"required": []any{"name"}},
			},
			"properties": map[string]any{
				"title":   map[string]any{"type": "string", "minLength": 1},
				"name":    map[string]any{"type": "string", "minLength": 1},
				"content": map[string]any{"type": "string"},
				"date":    map[string]any{"$ref": "#/$defs/date"},
				"cards": map[string]any{
					"type": "array",
					"items": map[string]any{
						"anyOf": []any{
							map[string]any{"type": "string"},
							map[string]any{
								"type":     "object",
								"required": []any{"title", "description"},
							},
						},
					},
				},
				"questions": map[string]any{
					"type":  "array",
					"items": map[string]any{"$ref": "#/$defs/question"},
				},
				"helpMaterial":     map[string]any{"type": "array", "items": map[string]any{"$ref": "#/$defs/material"}},
				"supportMaterials": map[string]any{"type": "array", "items": map[string]any{"$ref": "#/$defs/material"}},
			},
		},
		"question": map[string]any{
			"type": "object",
			"anyOf": []any{
				map[string]any{"required": []any{"question"}},
				map[string]any{"required": []any{"description"}},
			},
			"properties": map[string]any{
				"type": map[string]any{"type": "string"},
				"responses": map[string]any{
					"type": "array",
					"items": map[string]any{
						"type":     "object",
						"required": []any{"description"},
						"properties": map[string]any{
							"description": map[string]any{"type": "string"},
							"isCorrect":   map[string]any{"type": []any{"boolean", "string"}},
						},
					},
				},
			},
		},
		"material": map[string]any{
			"type":     "object",
			"required": []any{"title"},
			"properties": map[string]any{
				"title": map[string]any{"type": "string"},
				"type":  map[string]any{"enum": []any{"link", "document", "video", "text"}},
				"url":   map[string]any{"type": "string"},
			},
		},
		"date": map[string]any{
			"type":    "string",
			"pattern": `^\d{4}-\d{2}-\d{2}$`,
		},
	},
}

const schemaURL = "schema://estudar/content.json"

var (
	compileOnce sync.Once
	compiled    *jsonschema.Schema
	compileErr  error
)

func compiledSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		// The compiler expects a plain decoded JSON value.
		b, err := json.Marshal(documentSchema)
		if err != nil {
			compileErr = fmt.Errorf("marshal schema: %w", err)
			return
		}
		var doc any
		if err := json.Unmarshal(b, &doc); err != nil {
			compileErr = fmt.Errorf("parse schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaURL, doc); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiled, compileErr = c.Compile(schemaURL)
	})
	return compiled, compileErr
}

// ErrInvalidContent reports a content document that fails the schema.
type ErrInvalidContent struct {
	Err error
}

func (e *ErrInvalidContent) Error() string {
	return fmt.Sprintf("invalid content: %v", e.Err)
}

func (e *ErrInvalidContent) Unwrap() error {
	return e.Err
}

// Validate lints a raw content document. It is stricter than the adapter:
// a document can fail validation and still load, with the offending
// entries dropped.
func Validate(data []byte) error {
	parsed, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return &ErrInvalidContent{Err: fmt.Errorf("invalid JSON: %w", err)}
	}

	sch, err := compiledSchema()
	if err != nil {
		return fmt.Errorf("compile content schema: %w", err)
	}
	if err := sch.Validate(parsed); err != nil {
		return &ErrInvalidContent{Err: err}
	}
	return nil
}
