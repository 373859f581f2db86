package openai_compat

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"google.golang.org/genai"

	"google.golang.org/adk/model"
)

// toWireMessages flattens the ADK request into the Chat Completions message
// list: system instruction first, then each content with its text parts,
// tool calls, and tool responses.
func toWireMessages(req *model.LLMRequest) ([]wireMessage, error) {
	var out []wireMessage

	if req != nil && req.Config != nil && req.Config.SystemInstruction != nil {
		sysText := contentText(req.Config.SystemInstruction)
		if strings.TrimSpace(sysText) != "" {
			out = append(out, wireMessage{Role: "system", Content: sysText})
		}
	}
	if req == nil {
		return out, nil
	}

	for _, c := range req.Contents {
		if c == nil {
			continue
		}
		role := strings.ToLower(strings.TrimSpace(c.Role))
		switch role {
		case "user":
			// ok
		case "model", "assistant":
			role = "assistant"
		default:
			// Unknown roles are treated as "user" for compatibility.
			role = "user"
		}

		var textParts []string
		var toolCalls []wireToolCall
		var toolResponses []*genai.FunctionResponse

		for _, p := range c.Parts {
			if p == nil {
				continue
			}
			switch {
			case p.Text != "":
				textParts = append(textParts, p.Text)
			case p.FunctionCall != nil:
				toolCalls = append(toolCalls, toWireToolCall(p.FunctionCall))
			case p.FunctionResponse != nil:
				toolResponses = append(toolResponses, p.FunctionResponse)
			default:
				// Multimodal parts are not supported by this adapter.
			}
		}

		if len(textParts) > 0 || len(toolCalls) > 0 {
			msg := wireMessage{
				Role:    role,
				Content: strings.Join(textParts, "\n"),
			}
			if role == "assistant" && len(toolCalls) > 0 {
				msg.ToolCalls = toolCalls
			}
			out = append(out, msg)
		}

		// Tool responses become role=tool messages.
		for _, r := range toolResponses {
			if r == nil {
				continue
			}
			raw, err := json.Marshal(r.Response)
			if err != nil {
				return nil, fmt.Errorf("marshal tool response %s: %w", r.Name, err)
			}
			out = append(out, wireMessage{
				Role:       "tool",
				ToolCallID: r.ID,
				Content:    string(raw),
			})
		}
	}

	return out, nil
}

func toWireToolCall(fc *genai.FunctionCall) wireToolCall {
	argsRaw, _ := json.Marshal(fc.Args)
	id := strings.TrimSpace(fc.ID)
	if id == "" {
		// OpenAI "tool" messages require an ID even when the server that
		// produced the call did not supply one.
		id = "call_" + uuid.NewString()
	}
	return wireToolCall{
		ID:   id,
		Type: "function",
		Function: wireToolFunc{
			Name:      fc.Name,
			Arguments: string(argsRaw),
		},
	}
}

func toWireTools(req *model.LLMRequest) []wireTool {
	if req == nil || req.Config == nil || len(req.Config.Tools) == 0 {
		return nil
	}
	var out []wireTool
	for _, t := range req.Config.Tools {
		if t == nil {
			continue
		}
		for _, d := range t.FunctionDeclarations {
			if d == nil || strings.TrimSpace(d.Name) == "" {
				continue
			}
			out = append(out, wireTool{
				Type: "function",
				Function: wireFunction{
					Name:        d.Name,
					Description: d.Description,
					Parameters:  d.ParametersJsonSchema,
				},
			})
		}
	}
	return out
}

func fromWireMessage(msg wireMessage) (*genai.Content, error) {
	c := &genai.Content{Role: "model"}
	if strings.TrimSpace(msg.Content) != "" {
		c.Parts = append(c.Parts, &genai.Part{Text: msg.Content})
	}
	for _, tc := range msg.ToolCalls {
		if tc.Type != "" && tc.Type != "function" {
			continue
		}
		var args map[string]any
		if strings.TrimSpace(tc.Function.Arguments) != "" {
			if err := json.Unmarshal([]byte(tc.Function.Arguments), &args); err != nil {
				// Be forgiving: pass raw arguments through as a single string field.
				args = map[string]any{"_raw": tc.Function.Arguments}
			}
		} else {
			args = map[string]any{}
		}
		c.Parts = append(c.Parts, &genai.Part{
			FunctionCall: &genai.FunctionCall{
				ID:   tc.ID,
				Name: tc.Function.Name,
				Args: args,
			},
		})
	}
	if len(c.Parts) == 0 {
		// Always return at least an empty text part to satisfy downstream assumptions.
		c.Parts = append(c.Parts, &genai.Part{Text: ""})
	}
	return c, nil
}

func contentText(c *genai.Content) string {
	if c == nil {
		return ""
	}
	var parts []string
	for _, p := range c.Parts {
		if p == nil {
			continue
		}
		if p.Text != "" {
			parts = append(parts, p.Text)
		}
	}
	return strings.Join(parts, "\n")
}
