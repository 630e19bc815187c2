package intent

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

type schemas struct {
	interpretation *jsonschema.Schema
	suggestion     *jsonschema.Schema
}

func compileSchemas() (schemas, error) {
	interp, err := jsonschema.CompileString("interpretation.json", interpretationSchema)
	if err != nil {
		return schemas{}, fmt.Errorf("compile interpretation schema: %w", err)
	}
	sugg, err := jsonschema.CompileString("suggestion.json", suggestionSchema)
	if err != nil {
		return schemas{}, fmt.Errorf("compile suggestion schema: %w", err)
	}
	return schemas{interpretation: interp, suggestion: sugg}, nil
}

// stripCodeFence removes a surrounding ```json ... ``` block if present.
func stripCodeFence(text string) string {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "```json") {
		text = strings.TrimPrefix(text, "```json")
	} else if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```")
	} else {
		return text
	}
	text = strings.TrimSuffix(strings.TrimSpace(text), "```")
	return strings.TrimSpace(text)
}

// decodeValidated validates text against sch and then decodes it into dst.
// Any failure is ErrUpstreamMalformed.
func decodeValidated(text string, sch *jsonschema.Schema, dst any) error {
	raw := []byte(stripCodeFence(text))

	var doc any
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&doc); err != nil {
		return fmt.Errorf("%w: not JSON: %v", ErrUpstreamMalformed, err)
	}
	if err := sch.Validate(doc); err != nil {
		return fmt.Errorf("%w: %v", ErrUpstreamMalformed, err)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("%w: %v", ErrUpstreamMalformed, err)
	}
	return nil
}
