package types

import (
	"context"
	"encoding/json"

	"github.com/sashabaranov/go-openai"
	"github.com/sashabaranov/go-openai/jsonschema"
)

type ToolParams map[string]interface{}

func (tp ToolParams) Read(s string) error {
	err := json.Unmarshal([]byte(s), &tp)
	return err
}

func (tp ToolParams) String() string {
	b, _ := json.Marshal(tp)
	return string(b)
}

func (tp ToolParams) Unmarshal(v interface{}) error {
	b, err := json.Marshal(tp)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(b, v); err != nil {
		return err
	}
	return nil
}

// ToolResult is what an executor hands back to the conversation. Result is
// the JSON payload injected as the tool message, Metadata carries structured
// values for callers that don't want to reparse it.
type ToolResult struct {
	Result   string
	Metadata map[string]interface{}
}

type ToolDefinition struct {
	Properties  map[string]jsonschema.Definition
	Required    []string
	Name        ToolName
	Description string
}

type ToolName string

func (t ToolName) Is(name string) bool {
	return string(t) == name
}

func (t ToolName) String() string {
	return string(t)
}

func (t ToolDefinition) ToFunctionDefinition() *openai.FunctionDefinition {
	return &openai.FunctionDefinition{
		Name:        t.Name.String(),
		Description: t.Description,
		Parameters: jsonschema.Definition{
			Type:       jsonschema.Object,
			Properties: t.Properties,
			Required:   t.Required,
		},
	}
}

// Tool is a named capability the model may invoke mid-generation. Executors
// are stateless: any cross-call state is re-derived from storage, never held
// in memory.
type Tool interface {
	Run(ctx context.Context, session *SessionState, params ToolParams) (ToolResult, error)
	Definition() ToolDefinition
}

type Tools []Tool

func (t Tools) ToOpenAITools() []openai.Tool {
	tools := []openai.Tool{}
	for _, tool := range t {
		tools = append(tools, openai.Tool{
			Type:     openai.ToolTypeFunction,
			Function: tool.Definition().ToFunctionDefinition(),
		})
	}
	return tools
}

func (t Tools) Find(name string) Tool {
	for _, tool := range t {
		if tool.Definition().Name.Is(name) {
			return tool
		}
	}
	return nil
}
