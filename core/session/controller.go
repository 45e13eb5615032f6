package session

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/mudler/xlog"
	"github.com/sashabaranov/go-openai"

	"github.com/Sain-Biswas/gemini-bot/core/types"
	models "github.com/Sain-Biswas/gemini-bot/dbmodels"
	"github.com/Sain-Biswas/gemini-bot/pkg/llm"
)

// maxSteps bounds the tool-call loop of a single turn. The model normally
// needs one or two steps; the cap keeps a confused model from spinning.
const maxSteps = 10

var errNoChoices = errors.New("no choices in model response")

// Emitter receives streaming events during a turn: "message", "tool_call",
// "tool_result", "error", "done".
type Emitter func(event string, data interface{})

// Controller drives one chat turn: it binds the tool registry, loops the
// gateway until the model answers with plain content, and persists the
// transcript afterwards. Tool ordering is entirely the model's choice; the
// controller only dispatches.
type Controller struct {
	client       llm.LLMClient
	model        string
	systemPrompt string
	tools        types.Tools
	chats        types.ChatStore
	usage        types.UsageStore
}

func NewController(client llm.LLMClient, model, systemPrompt string, tools types.Tools, chats types.ChatStore, usage types.UsageStore) *Controller {
	return &Controller{
		client:       client,
		model:        model,
		systemPrompt: systemPrompt,
		tools:        tools,
		chats:        chats,
		usage:        usage,
	}
}

// Run executes a turn for an authenticated user. The system prompt is always
// the first message sent to the gateway. When ctx is cancelled (client
// abort) the loop stops and the transcript is not persisted.
func (c *Controller) Run(ctx context.Context, user types.UserRef, chatID string, incoming types.Messages, emit Emitter) error {
	history := incoming.FilterEmpty()
	transcript := append(types.Messages{}, history...)

	conversation := append(
		[]openai.ChatCompletionMessage{{Role: openai.ChatMessageRoleSystem, Content: c.systemPrompt}},
		history.ToOpenAI()...,
	)

	session := &types.SessionState{User: &user}

	for step := 0; step < maxSteps; step++ {
		resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
			Model:    c.model,
			Messages: conversation,
			Tools:    c.tools.ToOpenAITools(),
		})
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			xlog.Error("Gateway completion failed", "chat", chatID, "error", err)
			emit("error", map[string]interface{}{"error": err.Error()})
			return err
		}

		c.recordUsage(user, chatID, resp)

		if len(resp.Choices) == 0 {
			xlog.Error("Gateway returned no choices", "chat", chatID)
			emit("error", map[string]interface{}{"error": "no response from model"})
			return errNoChoices
		}

		msg := resp.Choices[0].Message

		if len(msg.ToolCalls) == 0 {
			emit("message", map[string]interface{}{
				"role":    types.RoleAssistant,
				"content": msg.Content,
			})
			transcript = append(transcript, types.Message{Role: types.RoleAssistant, Content: msg.Content})
			break
		}

		conversation = append(conversation, msg)
		entry := types.Message{Role: types.RoleAssistant, Content: msg.Content}

		for _, tc := range msg.ToolCalls {
			emit("tool_call", map[string]interface{}{
				"id":   tc.ID,
				"name": tc.Function.Name,
				"args": json.RawMessage(tc.Function.Arguments),
			})

			result := c.invoke(ctx, session, tc)

			emit("tool_result", map[string]interface{}{
				"id":     tc.ID,
				"name":   tc.Function.Name,
				"result": json.RawMessage(result),
			})

			conversation = append(conversation, openai.ChatCompletionMessage{
				Role:       openai.ChatMessageRoleTool,
				ToolCallID: tc.ID,
				Name:       tc.Function.Name,
				Content:    result,
			})
			entry.ToolInvocations = append(entry.ToolInvocations, types.ToolInvocation{
				ID:     tc.ID,
				Name:   tc.Function.Name,
				Args:   json.RawMessage(tc.Function.Arguments),
				Result: json.RawMessage(result),
			})
		}

		transcript = append(transcript, entry)
	}

	emit("done", map[string]interface{}{"chatId": chatID})

	if ctx.Err() != nil {
		xlog.Info("Turn cancelled, skipping persistence", "chat", chatID)
		return ctx.Err()
	}

	c.persist(user, chatID, transcript)
	return nil
}

// invoke dispatches one tool call. Every failure mode becomes an
// error-shaped JSON payload fed back to the model so the turn continues; the
// model is expected to retry or explain.
func (c *Controller) invoke(ctx context.Context, session *types.SessionState, tc openai.ToolCall) string {
	tool := c.tools.Find(tc.Function.Name)
	if tool == nil {
		xlog.Warn("Model requested unknown tool", "tool", tc.Function.Name)
		return errorPayload("unknown tool: " + tc.Function.Name)
	}

	params := types.ToolParams{}
	if err := params.Read(tc.Function.Arguments); err != nil {
		xlog.Warn("Invalid tool arguments", "tool", tc.Function.Name, "error", err)
		return errorPayload("invalid arguments: " + err.Error())
	}

	result, err := tool.Run(ctx, session, params)
	if err != nil {
		xlog.Error("Tool execution failed", "tool", tc.Function.Name, "error", err)
		return errorPayload(err.Error())
	}
	return result.Result
}

// persist writes the transcript after the stream has been delivered. A
// failure here is logged and never surfaced: the user already has the
// response.
func (c *Controller) persist(user types.UserRef, chatID string, transcript types.Messages) {
	messagesJSON, err := json.Marshal(transcript)
	if err != nil {
		xlog.Error("Failed to serialize transcript", "chat", chatID, "error", err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := c.chats.Save(ctx, &models.Chat{
		ID:       chatID,
		UserID:   user.ID,
		Messages: messagesJSON,
	}); err != nil {
		xlog.Error("Failed to save chat", "chat", chatID, "error", err)
	}
}

func (c *Controller) recordUsage(user types.UserRef, chatID string, resp openai.ChatCompletionResponse) {
	if c.usage == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := c.usage.Record(ctx, &models.LLMUsage{
		ID:               uuid.New(),
		UserID:           user.ID,
		ChatID:           chatID,
		Model:            c.model,
		PromptTokens:     resp.Usage.PromptTokens,
		CompletionTokens: resp.Usage.CompletionTokens,
		TotalTokens:      resp.Usage.TotalTokens,
		RequestType:      "chat",
		GenID:            resp.ID,
		CreatedAt:        time.Now(),
	}); err != nil {
		xlog.Error("Error tracking LLM usage", "error", err)
	}
}

func errorPayload(message string) string {
	b, _ := json.Marshal(map[string]string{"error": message})
	return string(b)
}
