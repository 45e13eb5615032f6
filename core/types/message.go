package types

import (
	"encoding/json"

	"github.com/sashabaranov/go-openai"
)

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleTool      = "tool"
)

// ToolInvocation records one tool call made by the assistant during a turn,
// together with the result that was injected back into the conversation.
type ToolInvocation struct {
	ID     string          `json:"id"`
	Name   string          `json:"name"`
	Args   json.RawMessage `json:"args"`
	Result json.RawMessage `json:"result,omitempty"`
}

// Message is one entry of a persisted transcript. Ordering matters.
type Message struct {
	Role            string           `json:"role"`
	Content         string           `json:"content"`
	ToolInvocations []ToolInvocation `json:"toolInvocations,omitempty"`
}

type Messages []Message

// FilterEmpty drops messages that carry neither content nor tool
// invocations, so the gateway never sees blank turns.
func (m Messages) FilterEmpty() Messages {
	out := Messages{}
	for _, msg := range m {
		if msg.Content == "" && len(msg.ToolInvocations) == 0 {
			continue
		}
		out = append(out, msg)
	}
	return out
}

// ToOpenAI expands the transcript into gateway messages. An assistant entry
// with tool invocations becomes an assistant message carrying the tool calls
// followed by one tool message per recorded result.
func (m Messages) ToOpenAI() []openai.ChatCompletionMessage {
	out := []openai.ChatCompletionMessage{}
	for _, msg := range m {
		if msg.Role == RoleAssistant && len(msg.ToolInvocations) > 0 {
			cc := openai.ChatCompletionMessage{
				Role:    openai.ChatMessageRoleAssistant,
				Content: msg.Content,
			}
			for _, inv := range msg.ToolInvocations {
				cc.ToolCalls = append(cc.ToolCalls, openai.ToolCall{
					ID:   inv.ID,
					Type: openai.ToolTypeFunction,
					Function: openai.FunctionCall{
						Name:      inv.Name,
						Arguments: string(inv.Args),
					},
				})
			}
			out = append(out, cc)
			for _, inv := range msg.ToolInvocations {
				if inv.Result == nil {
					continue
				}
				out = append(out, openai.ChatCompletionMessage{
					Role:       openai.ChatMessageRoleTool,
					ToolCallID: inv.ID,
					Name:       inv.Name,
					Content:    string(inv.Result),
				})
			}
			continue
		}

		out = append(out, openai.ChatCompletionMessage{
			Role:    msg.Role,
			Content: msg.Content,
		})
	}
	return out
}
