package tools

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const requestTimeout = 20 * time.Second

// serpGet issues one GET against the SerpAPI endpoint and decodes the JSON
// document. The second return value is the uniform error message ("" on
// success); label names the feature for the missing-key hint.
func (tb *Toolbox) serpGet(label string, params url.Values) (map[string]any, string) {
	if tb.cfg.SerpAPIKey == "" {
		return nil, fmt.Sprintf("SERPAPI_API_KEY not found in environment variables. Please set this variable to use %s.", label)
	}
	params.Set("api_key", tb.cfg.SerpAPIKey)

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, tb.cfg.SerpAPIBaseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Sprintf("Network error occurred: %v", err)
	}
	resp, err := tb.http.Do(req)
	if err != nil {
		return nil, fmt.Sprintf("Network error occurred: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Sprintf("SerpAPI request failed with status code %d: %s", resp.StatusCode, body)
	}

	var doc map[string]any
	if err := jsonx.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return nil, "Failed to parse the search results."
	}
	return doc, ""
}

// searchMetadata is the common tail of every SerpAPI result.
type searchMetadata struct {
	ID             string  `json:"id"`
	Status         string  `json:"status"`
	TotalTimeTaken float64 `json:"total_time_taken"`
	Engine         string  `json:"engine"`
}

func metadataFrom(doc map[string]any, engine string) searchMetadata {
	md := objField(doc, "search_metadata")
	return searchMetadata{
		ID:             strField(md, "id"),
		Status:         strField(md, "status"),
		TotalTimeTaken: floatField(md, "total_time_taken"),
		Engine:         engine,
	}
}

// Presence-test helpers for the loosely shaped SerpAPI documents. Missing or
// differently typed fields read as zero values.

func strField(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return s
}

func floatField(m map[string]any, key string) float64 {
	switch v := m[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	}
	return 0
}

func intField(m map[string]any, key string) int {
	return int(floatField(m, key))
}

func objField(m map[string]any, key string) map[string]any {
	o, _ := m[key].(map[string]any)
	return o
}

func arrField(m map[string]any, key string) []any {
	a, _ := m[key].([]any)
	return a
}

// objItems filters an array field down to its object elements.
func objItems(m map[string]any, key string) []map[string]any {
	raw := arrField(m, key)
	out := make([]map[string]any, 0, len(raw))
	for _, item := range raw {
		if o, ok := item.(map[string]any); ok {
			out = append(out, o)
		}
	}
	return out
}
