// Package session persists the conversation transcript as yaml so a chat
// can be saved after every turn and resumed in a later run.
package session

import (
	"fmt"
	"os"

	"github.com/openai/openai-go/v3"
	"gopkg.in/yaml.v3"
)

type Session struct {
	ID    string `yaml:"id,omitempty"`
	Model string `yaml:"model,omitempty"`

	Messages []Message `yaml:"messages"`
}

type Message struct {
	Role       string     `yaml:"role"`
	Content    string     `yaml:"content,omitempty"`
	ToolCallID string     `yaml:"tool_call_id,omitempty"`
	ToolCalls  []ToolCall `yaml:"tool_calls,omitempty"`
}

type ToolCall struct {
	ID        string `yaml:"id"`
	Name      string `yaml:"name"`
	Arguments string `yaml:"arguments"`
}

// Save writes the transcript to path, overwriting any previous state.
func Save(path, id string, params *openai.ChatCompletionNewParams) error {
	data, err := yaml.Marshal(fromParams(id, params))
	if err != nil {
		return fmt.Errorf("session marshal: %w", err)
	}
	if err := os.WriteFile(path, data, 0640); err != nil {
		return fmt.Errorf("session write: %w", err)
	}
	return nil
}

// Resume loads a previously saved transcript. A missing file is not an
// error; it just means a fresh session.
func Resume(path string) (string, *openai.ChatCompletionNewParams, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return "", nil, nil
	}
	if err != nil {
		return "", nil, fmt.Errorf("session read: %w", err)
	}

	var s Session
	if err := yaml.Unmarshal(data, &s); err != nil {
		return "", nil, fmt.Errorf("session parse: %w", err)
	}
	return s.ID, toParams(&s), nil
}
