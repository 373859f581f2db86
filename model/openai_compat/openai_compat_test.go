package openai_compat

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"

	"google.golang.org/adk/model"
)

func newTestModel(t *testing.T, handler http.HandlerFunc) model.LLM {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	m, err := NewModel("test-model", Config{
		BaseURL: srv.URL,
		APIKey:  "test-key",
	})
	require.NoError(t, err)
	return m
}

func runOnce(t *testing.T, m model.LLM, req *model.LLMRequest) (*model.LLMResponse, error) {
	t.Helper()
	for resp, err := range m.GenerateContent(context.Background(), req, false) {
		return resp, err
	}
	t.Fatal("GenerateContent yielded nothing")
	return nil, nil
}

func TestNewModelRequiresName(t *testing.T) {
	_, err := NewModel("  ", Config{})
	assert.Error(t, err)
}

func TestCompletionsURL(t *testing.T) {
	cases := []struct {
		base string
		want string
	}{
		{"https://api.openai.com", "https://api.openai.com/v1/chat/completions"},
		{"https://api.openai.com/", "https://api.openai.com/v1/chat/completions"},
		{"http://localhost:8000/v1", "http://localhost:8000/v1/chat/completions"},
		{"http://localhost:8000/v1/", "http://localhost:8000/v1/chat/completions"},
	}
	for _, tc := range cases {
		m, err := NewModel("m", Config{BaseURL: tc.base})
		require.NoError(t, err)
		assert.Equal(t, tc.want, m.(*compatModel).completionsURL(), "base %q", tc.base)
	}
}

func TestGenerateTextReply(t *testing.T) {
	var got chatCompletionsRequest
	m := newTestModel(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		json.NewEncoder(w).Encode(chatCompletionsResponse{
			Choices: []wireChoice{{
				Message:      wireMessage{Role: "assistant", Content: "hi there"},
				FinishReason: "stop",
			}},
		})
	})

	req := &model.LLMRequest{
		Contents: []*genai.Content{
			{Role: "user", Parts: []*genai.Part{{Text: "hello"}}},
		},
		Config: &genai.GenerateContentConfig{
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: "be brief"}}},
		},
	}
	resp, err := runOnce(t, m, req)
	require.NoError(t, err)

	require.Len(t, got.Messages, 2)
	assert.Equal(t, "system", got.Messages[0].Role)
	assert.Equal(t, "be brief", got.Messages[0].Content)
	assert.Equal(t, "user", got.Messages[1].Role)

	require.Len(t, resp.Content.Parts, 1)
	assert.Equal(t, "hi there", resp.Content.Parts[0].Text)
	assert.Equal(t, "model", resp.Content.Role)
}

func TestGenerateToolCallReply(t *testing.T) {
	m := newTestModel(t, func(w http.ResponseWriter, r *http.Request) {
		var req chatCompletionsRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		// Tool declarations should be forwarded as OpenAI function tools.
		require.Len(t, req.Tools, 1)
		assert.Equal(t, "function", req.Tools[0].Type)
		assert.Equal(t, "geocode", req.Tools[0].Function.Name)
		assert.Equal(t, "auto", req.ToolChoice)

		json.NewEncoder(w).Encode(chatCompletionsResponse{
			Choices: []wireChoice{{
				Message: wireMessage{
					Role: "assistant",
					ToolCalls: []wireToolCall{{
						ID:   "call_1",
						Type: "function",
						Function: wireToolFunc{
							Name:      "geocode",
							Arguments: `{"city_name":"Paris"}`,
						},
					}},
				},
				FinishReason: "tool_calls",
			}},
		})
	})

	req := &model.LLMRequest{
		Contents: []*genai.Content{
			{Role: "user", Parts: []*genai.Part{{Text: "weather in Paris"}}},
		},
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{{
				FunctionDeclarations: []*genai.FunctionDeclaration{{
					Name:                 "geocode",
					Description:          "geocode a city",
					ParametersJsonSchema: map[string]any{"type": "object"},
				}},
			}},
		},
	}
	resp, err := runOnce(t, m, req)
	require.NoError(t, err)

	require.Len(t, resp.Content.Parts, 1)
	fc := resp.Content.Parts[0].FunctionCall
	require.NotNil(t, fc)
	assert.Equal(t, "geocode", fc.Name)
	assert.Equal(t, map[string]any{"city_name": "Paris"}, fc.Args)
}

func TestGenerateHTTPError(t *testing.T) {
	m := newTestModel(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(chatCompletionsResponse{
			Error: &wireError{Message: "bad key", Type: "invalid_request_error"},
		})
	})

	_, err := runOnce(t, m, &model.LLMRequest{
		Contents: []*genai.Content{{Role: "user", Parts: []*genai.Part{{Text: "hi"}}}},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
	assert.Contains(t, err.Error(), "bad key")
}

func TestStreamingNotImplemented(t *testing.T) {
	m := newTestModel(t, func(w http.ResponseWriter, r *http.Request) {})
	for _, err := range m.GenerateContent(context.Background(), &model.LLMRequest{}, true) {
		assert.Error(t, err)
		return
	}
	t.Fatal("expected an error from the streaming path")
}

func TestToWireMessagesToolRoundtrip(t *testing.T) {
	req := &model.LLMRequest{
		Contents: []*genai.Content{
			{Role: "user", Parts: []*genai.Part{{Text: "weather in Paris"}}},
			{Role: "model", Parts: []*genai.Part{{
				FunctionCall: &genai.FunctionCall{
					ID:   "call_1",
					Name: "geocode",
					Args: map[string]any{"city_name": "Paris"},
				},
			}}},
			{Role: "user", Parts: []*genai.Part{{
				FunctionResponse: &genai.FunctionResponse{
					ID:       "call_1",
					Name:     "geocode",
					Response: map[string]any{"status": "success"},
				},
			}}},
		},
	}

	msgs, err := toWireMessages(req)
	require.NoError(t, err)
	require.Len(t, msgs, 3)

	assert.Equal(t, "user", msgs[0].Role)

	assert.Equal(t, "assistant", msgs[1].Role)
	require.Len(t, msgs[1].ToolCalls, 1)
	assert.Equal(t, "call_1", msgs[1].ToolCalls[0].ID)
	assert.JSONEq(t, `{"city_name":"Paris"}`, msgs[1].ToolCalls[0].Function.Arguments)

	assert.Equal(t, "tool", msgs[2].Role)
	assert.Equal(t, "call_1", msgs[2].ToolCallID)
	assert.JSONEq(t, `{"status":"success"}`, msgs[2].Content)
}

func TestToWireToolCallGeneratesID(t *testing.T) {
	tc := toWireToolCall(&genai.FunctionCall{Name: "geocode", Args: map[string]any{}})
	assert.Contains(t, tc.ID, "call_")
	assert.Equal(t, "function", tc.Type)
}

func TestFromWireMessageMalformedArgs(t *testing.T) {
	c, err := fromWireMessage(wireMessage{
		Role: "assistant",
		ToolCalls: []wireToolCall{{
			ID:       "call_2",
			Type:     "function",
			Function: wireToolFunc{Name: "web_search", Arguments: "{not json"},
		}},
	})
	require.NoError(t, err)
	require.Len(t, c.Parts, 1)
	assert.Equal(t, map[string]any{"_raw": "{not json"}, c.Parts[0].FunctionCall.Args)
}
