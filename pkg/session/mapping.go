package session

import (
	"github.com/openai/openai-go/v3"
)

func fromParams(id string, params *openai.ChatCompletionNewParams) *Session {
	s := &Session{ID: id, Model: params.Model}

	for _, m := range params.Messages {
		switch {
		case m.OfSystem != nil:
			s.Messages = append(s.Messages, Message{Role: "system", Content: m.OfSystem.Content.OfString.String()})
		case m.OfUser != nil:
			s.Messages = append(s.Messages, Message{Role: "user", Content: m.OfUser.Content.OfString.String()})
		case m.OfAssistant != nil:
			msg := Message{Role: "assistant", Content: m.OfAssistant.Content.OfString.String()}
			for _, call := range m.OfAssistant.ToolCalls {
				if f := call.OfFunction; f != nil {
					msg.ToolCalls = append(msg.ToolCalls, ToolCall{ID: f.ID, Name: f.Function.Name, Arguments: f.Function.Arguments})
				}
			}
			s.Messages = append(s.Messages, msg)
		case m.OfTool != nil:
			s.Messages = append(s.Messages, Message{Role: "tool", Content: m.OfTool.Content.OfString.String(), ToolCallID: m.OfTool.ToolCallID})
		}
	}
	return s
}

func toParams(s *Session) *openai.ChatCompletionNewParams {
	params := &openai.ChatCompletionNewParams{Model: s.Model}

	for _, m := range s.Messages {
		switch m.Role {
		case "system":
			params.Messages = append(params.Messages, openai.SystemMessage(m.Content))
		case "user":
			params.Messages = append(params.Messages, openai.UserMessage(m.Content))
		case "assistant":
			assistant := openai.AssistantMessage(m.Content)
			for _, call := range m.ToolCalls {
				assistant.OfAssistant.ToolCalls = append(assistant.OfAssistant.ToolCalls, openai.ChatCompletionMessageToolCallUnionParam{
					OfFunction: &openai.ChatCompletionMessageFunctionToolCallParam{
						ID: call.ID,
						Function: openai.ChatCompletionMessageFunctionToolCallFunctionParam{
							Name:      call.Name,
							Arguments: call.Arguments,
						},
					},
				})
			}
			params.Messages = append(params.Messages, assistant)
		case "tool":
			params.Messages = append(params.Messages, openai.ToolMessage(m.Content, m.ToolCallID))
		}
	}
	return params
}
