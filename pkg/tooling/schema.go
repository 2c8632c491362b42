package tooling

import (
	"bytes"
	"encoding/json"

	invopop "github.com/invopop/jsonschema"
	"github.com/openai/openai-go/v3"
	"github.com/santhosh-tekuri/jsonschema/v5"

	"hragent/pkg/darwinbox"
)

// schemaFor reflects a JSON Schema from a tool's argument struct. Fields
// without omitempty are required; extra properties are rejected.
func schemaFor(args any) string {
	reflector := invopop.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}
	schema := reflector.Reflect(args)
	raw, err := json.Marshal(schema)
	if err != nil {
		return ""
	}
	return string(raw)
}

// parameters converts the reflected schema into the parameter map declared
// to the model.
func parameters(args any) openai.FunctionParameters {
	var params openai.FunctionParameters
	if err := json.Unmarshal([]byte(schemaFor(args)), &params); err != nil {
		return openai.FunctionParameters{"type": "object"}
	}
	delete(params, "$schema")
	delete(params, "$id")
	return params
}

// decodeArgs validates model-supplied arguments against the schema reflected
// from target and unmarshals them into target. A non-nil return is an error
// envelope and means no network call was made.
func decodeArgs(raw json.RawMessage, target any) json.RawMessage {
	if len(bytes.TrimSpace(raw)) == 0 {
		raw = json.RawMessage("{}")
	}

	schema, err := jsonschema.CompileString("", schemaFor(target))
	if err != nil {
		return darwinbox.Failure("An unexpected error occurred: " + err.Error())
	}

	var value any
	if err := json.Unmarshal(raw, &value); err != nil {
		return darwinbox.Failure("Invalid tool arguments: " + err.Error())
	}
	if err := schema.Validate(value); err != nil {
		return darwinbox.Failure("Invalid tool arguments: " + err.Error())
	}
	if err := json.Unmarshal(raw, target); err != nil {
		return darwinbox.Failure("Invalid tool arguments: " + err.Error())
	}
	return nil
}
