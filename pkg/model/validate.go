package model

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	"gopkg.in/yaml.v3"
)

//go:embed schema.cue
var schemaFS embed.FS

// ErrSchema is returned when a document breaks the source-model contract.
var ErrSchema = errors.New("model: document does not match the schema")

// Validator checks raw documents against the embedded CUE contract before
// they are decoded, so that typos and wrong types are reported with their
// path instead of being dropped by the decoder.
type Validator struct {
	ctx     *cue.Context
	project cue.Value
}

// NewValidator compiles the embedded schema.
func NewValidator() (*Validator, error) {
	ctx := cuecontext.New()

	schemaBytes, err := schemaFS.ReadFile("schema.cue")
	if err != nil {
		return nil, fmt.Errorf("loading embedded schema: %w", err)
	}

	schema := ctx.CompileBytes(schemaBytes)
	if schema.Err() != nil {
		return nil, fmt.Errorf("compiling schema: %w", schema.Err())
	}

	project := schema.LookupPath(cue.ParsePath("#Project"))
	if project.Err() != nil {
		return nil, fmt.Errorf("looking up #Project definition: %w", project.Err())
	}

	return &Validator{ctx: ctx, project: project}, nil
}

// ValidateDocument checks a JSON or YAML document. The error wraps ErrSchema
// and lists every violation on its own line.
func (v *Validator) ValidateDocument(data []byte, format Format) error {
	jsonBytes := data
	if format == YAML {
		var root yaml.Node
		if err := yaml.Unmarshal(data, &root); err != nil {
			return fmt.Errorf("model: decode: %w", err)
		}
		doc, err := yamlToJSON(&root, "")
		if err != nil {
			return fmt.Errorf("model: converting YAML to JSON: %w", err)
		}
		jsonBytes, err = json.Marshal(doc)
		if err != nil {
			return fmt.Errorf("model: converting YAML to JSON: %w", err)
		}
	}

	dataValue := v.ctx.CompileBytes(jsonBytes)
	if dataValue.Err() != nil {
		return fmt.Errorf("model: compiling document: %w", dataValue.Err())
	}

	unified := v.project.Unify(dataValue)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		var lines []string
		for _, e := range cueerrors.Errors(err) {
			lines = append(lines, e.Error())
		}
		return fmt.Errorf("%w:\n  %s", ErrSchema, strings.Join(lines, "\n  "))
	}
	return nil
}

// Validate checks an already decoded project.
func (v *Validator) Validate(p *Project) error {
	jsonBytes, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("model: marshaling project: %w", err)
	}
	return v.ValidateDocument(jsonBytes, JSON)
}

// keys whose scalars are text in the exchange format even when YAML would
// resolve them to numbers (address: 0x40)
var textKeys = map[string]bool{
	"name":        true,
	"description": true,
	"address":     true,
	"position":    true,
	"resetValue":  true,
}

func yamlToJSON(n *yaml.Node, key string) (interface{}, error) {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil, nil
		}
		return yamlToJSON(n.Content[0], key)
	case yaml.AliasNode:
		return yamlToJSON(n.Alias, key)
	case yaml.MappingNode:
		m := make(map[string]interface{}, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			k := n.Content[i].Value
			v, err := yamlToJSON(n.Content[i+1], k)
			if err != nil {
				return nil, err
			}
			m[k] = v
		}
		return m, nil
	case yaml.SequenceNode:
		items := make([]interface{}, 0, len(n.Content))
		for _, c := range n.Content {
			v, err := yamlToJSON(c, "")
			if err != nil {
				return nil, err
			}
			items = append(items, v)
		}
		return items, nil
	default:
		if textKeys[key] {
			return n.Value, nil
		}
		var v interface{}
		if err := n.Decode(&v); err != nil {
			return nil, err
		}
		return v, nil
	}
}
