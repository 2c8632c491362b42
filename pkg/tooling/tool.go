// Package tooling exposes the Darwinbox client operations to the model as
// function-calling tools with declared parameter schemas.
package tooling

import (
	"context"
	"encoding/json"

	"github.com/openai/openai-go/v3"
)

// Tool is one callable HR operation. Call always returns a well-formed
// result envelope, success or error; it never returns a Go error.
type Tool interface {
	Name() string
	Description() string
	Parameters() openai.FunctionParameters
	Call(ctx context.Context, args json.RawMessage) json.RawMessage
}

// Registry maps tool names to operations. Registration order is preserved so
// the definitions handed to the model are stable across runs.
type Registry struct {
	order []string
	tools map[string]Tool
}

func (r *Registry) register(t Tool) {
	if _, exists := r.tools[t.Name()]; !exists {
		r.order = append(r.order, t.Name())
	}
	r.tools[t.Name()] = t
}

// Lookup resolves a model-requested tool name.
func (r *Registry) Lookup(name string) (Tool, bool) {
	t, ok := r.tools[name]
	return t, ok
}

// Names returns the registered tool names in registration order.
func (r *Registry) Names() []string {
	return append([]string(nil), r.order...)
}

// Definitions builds the tool declarations for the chat completion request.
func (r *Registry) Definitions() []openai.ChatCompletionToolUnionParam {
	defs := make([]openai.ChatCompletionToolUnionParam, 0, len(r.order))
	for _, name := range r.order {
		t := r.tools[name]
		defs = append(defs, openai.ChatCompletionToolUnionParam{
			OfFunction: &openai.ChatCompletionFunctionToolParam{
				Function: openai.FunctionDefinitionParam{
					Name:        t.Name(),
					Description: openai.String(t.Description()),
					Parameters:  t.Parameters(),
				},
			},
		})
	}
	return defs
}
