// Package agent drives one user turn: relay the conversation to the model,
// serve at most one requested tool call, and return the model's final text.
package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/openai/openai-go/v3"

	"hragent/pkg/tooling"
)

// Greeting is the assistant's standing first line in a fresh session.
const Greeting = "How can I help you with Darwinbox HR tasks today?"

const apology = "I'm sorry, something went wrong while handling that. Please try again."

// Agent owns the conversation transcript for one session. Not safe for
// concurrent turns; the design is one active turn at a time.
type Agent struct {
	client   openai.Client
	registry *tooling.Registry
	params   openai.ChatCompletionNewParams
	id       string
}

// New builds an Agent. A resumed transcript and its session ID may be passed
// in; a nil transcript starts fresh with the system prompt and a new ID.
func New(client openai.Client, registry *tooling.Registry, model, systemPrompt string, resumed *openai.ChatCompletionNewParams, id string) *Agent {
	var params openai.ChatCompletionNewParams
	if resumed != nil {
		params = *resumed
	}
	if params.Model == "" {
		params.Model = model
	}
	if len(params.Messages) == 0 {
		params.Messages = append(params.Messages, openai.SystemMessage(systemPrompt))
	}
	params.Tools = registry.Definitions()
	// One tool call per turn; parallel calls are not part of this design.
	params.ParallelToolCalls = openai.Bool(false)

	if id == "" {
		id = uuid.NewString()
	}
	return &Agent{
		client:   client,
		registry: registry,
		params:   params,
		id:       id,
	}
}

// ID identifies the session in logs and saved transcripts.
func (a *Agent) ID() string { return a.id }

// Params exposes the transcript for session persistence.
func (a *Agent) Params() *openai.ChatCompletionNewParams { return &a.params }

// Turn processes one user message end to end and returns the assistant's
// reply. Failures never escape: the model sees tool errors as envelopes, and
// the user sees dispatch-level failures as an apology. The transcript stays
// consistent either way.
func (a *Agent) Turn(ctx context.Context, userText string) string {
	logger := slog.With("session_id", a.id, "turn_id", uuid.NewString())

	a.params.Messages = append(a.params.Messages, openai.UserMessage(userText))

	message, ok := a.complete(ctx, logger)
	if !ok {
		return a.reply(apology)
	}
	if len(message.ToolCalls) == 0 {
		return a.reply(message.Content)
	}

	call := message.ToolCalls[0]
	tool, found := a.registry.Lookup(call.Function.Name)
	if !found {
		// Fatal for the turn: no second model round-trip. The assistant
		// tool-call message is not recorded; an unanswered tool call would
		// break every later completion request.
		logger.Error("unknown tool requested", "tool", call.Function.Name)
		return a.reply(fmt.Sprintf("I tried to use a tool named %q that I don't have. Please rephrase your request.", call.Function.Name))
	}

	logger.Info("tool call", "tool", call.Function.Name, "arguments", call.Function.Arguments)
	result := tool.Call(ctx, json.RawMessage(call.Function.Arguments))

	assistant := message.ToParam()
	if assistant.OfAssistant != nil && len(assistant.OfAssistant.ToolCalls) > 1 {
		// Only the first call is served; drop the rest so every recorded
		// tool call has a matching tool response.
		assistant.OfAssistant.ToolCalls = assistant.OfAssistant.ToolCalls[:1]
	}
	a.params.Messages = append(a.params.Messages, assistant)
	a.params.Messages = append(a.params.Messages, openai.ToolMessage(string(result), call.ID))

	final, ok := a.complete(ctx, logger)
	if !ok {
		return a.reply(apology)
	}

	text := final.Content
	if len(final.ToolCalls) > 0 {
		logger.Warn("follow-up tool call not served", "tool", final.ToolCalls[0].Function.Name)
		if text == "" {
			text = "I can only run one lookup per message. Please send the follow-up as a new message."
		}
	}
	return a.reply(text)
}

func (a *Agent) complete(ctx context.Context, logger *slog.Logger) (openai.ChatCompletionMessage, bool) {
	completion, err := a.client.Chat.Completions.New(ctx, a.params)
	if err != nil {
		logger.Error("model call failed", "error", err)
		return openai.ChatCompletionMessage{}, false
	}
	if len(completion.Choices) == 0 {
		logger.Error("model returned no choices")
		return openai.ChatCompletionMessage{}, false
	}
	return completion.Choices[0].Message, true
}

func (a *Agent) reply(text string) string {
	a.params.Messages = append(a.params.Messages, openai.AssistantMessage(text))
	return text
}
