// Package openai_compat provides an ADK model implementation backed by an
// OpenAI-compatible Chat Completions API.
//
// It targets the common endpoint:
//
//	POST {OPENAI_API_BASE}/v1/chat/completions
//
// The adapter covers what the toolchat agent needs:
// - system/user/assistant messages
// - function tools (OpenAI "tools" with type=function)
// - tool calls / tool results
//
// Note: streaming is not implemented. The console runs this model with
// streaming mode none; prefer the SDK-backed model unless the server's SSE
// framing is broken.
package openai_compat

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"iter"
	"net/http"
	"strings"
	"time"

	"google.golang.org/adk/model"
)

const defaultTimeout = 60 * time.Second

type Config struct {
	// BaseURL is the OpenAI-compatible server base URL, with or without a
	// trailing /v1, e.g. https://api.openai.com or http://localhost:8000/v1.
	BaseURL string
	// APIKey is the bearer token (optional for some self-hosted servers).
	APIKey string
	// Timeout bounds a single completion request. Zero means 60s.
	Timeout time.Duration
	// HTTPClient allows overriding the HTTP client; it wins over Timeout.
	HTTPClient *http.Client
}

type compatModel struct {
	name   string
	base   string
	apiKey string
	http   *http.Client
}

func NewModel(modelName string, cfg Config) (model.LLM, error) {
	if strings.TrimSpace(modelName) == "" {
		return nil, fmt.Errorf("modelName is required")
	}
	base := strings.TrimSpace(cfg.BaseURL)
	if base == "" {
		base = "https://api.openai.com"
	}
	hc := cfg.HTTPClient
	if hc == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		hc = &http.Client{Timeout: timeout}
	}
	return &compatModel{
		name:   modelName,
		base:   strings.TrimRight(base, "/"),
		apiKey: cfg.APIKey,
		http:   hc,
	}, nil
}

func (m *compatModel) Name() string { return m.name }

func (m *compatModel) GenerateContent(ctx context.Context, req *model.LLMRequest, stream bool) iter.Seq2[*model.LLMResponse, error] {
	if stream {
		return func(yield func(*model.LLMResponse, error) bool) {
			yield(nil, errors.New("openai_compat model: streaming not implemented; run with streaming mode none"))
		}
	}
	return func(yield func(*model.LLMResponse, error) bool) {
		resp, err := m.generate(ctx, req)
		yield(resp, err)
	}
}

func (m *compatModel) generate(ctx context.Context, req *model.LLMRequest) (*model.LLMResponse, error) {
	messages, err := toWireMessages(req)
	if err != nil {
		return nil, err
	}

	body := chatCompletionsRequest{
		Model:    m.name,
		Messages: messages,
	}
	applyGenerateConfig(&body, req)

	if tools := toWireTools(req); len(tools) > 0 {
		body.Tools = tools
		// Let the model decide when to call tools.
		body.ToolChoice = "auto"
	}

	raw, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, m.completionsURL(), bytes.NewReader(raw))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("content-type", "application/json")
	if strings.TrimSpace(m.apiKey) != "" {
		httpReq.Header.Set("authorization", "Bearer "+m.apiKey)
	}

	httpResp, err := m.http.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer httpResp.Body.Close()

	var decoded chatCompletionsResponse
	if err := json.NewDecoder(httpResp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	if httpResp.StatusCode < 200 || httpResp.StatusCode >= 300 {
		if decoded.Error != nil && decoded.Error.Message != "" {
			return nil, fmt.Errorf("openai_compat http %d: %s", httpResp.StatusCode, decoded.Error.Message)
		}
		return nil, fmt.Errorf("openai_compat http %d", httpResp.StatusCode)
	}
	if len(decoded.Choices) == 0 {
		return nil, fmt.Errorf("empty response choices")
	}

	content, err := fromWireMessage(decoded.Choices[0].Message)
	if err != nil {
		return nil, err
	}

	return &model.LLMResponse{
		Content:        content,
		CustomMetadata: map[string]any{"provider": "openai_compat"},
	}, nil
}

func applyGenerateConfig(body *chatCompletionsRequest, req *model.LLMRequest) {
	// Best-effort mapping of a few common knobs.
	if req == nil || req.Config == nil {
		return
	}
	if req.Config.Temperature != nil {
		t := float64(*req.Config.Temperature)
		body.Temperature = &t
	}
	if req.Config.TopP != nil {
		p := float64(*req.Config.TopP)
		body.TopP = &p
	}
	if req.Config.MaxOutputTokens > 0 {
		body.MaxTokens = int(req.Config.MaxOutputTokens)
	}
	if len(req.Config.StopSequences) > 0 {
		body.Stop = req.Config.StopSequences
	}
}

func (m *compatModel) completionsURL() string {
	// If the base already ends in /v1, don't append another one.
	if strings.HasSuffix(m.base, "/v1") {
		return m.base + "/chat/completions"
	}
	return m.base + "/v1/chat/completions"
}
