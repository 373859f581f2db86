package console

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatArgs(t *testing.T) {
	assert.Empty(t, FormatArgs(nil))
	assert.Empty(t, FormatArgs(map[string]any{}))

	got := FormatArgs(map[string]any{
		"query":        "machine learning",
		"num_results":  float64(10),
		"include_news": false,
	})
	assert.Equal(t, `include_news: false, num_results: 10, query: "machine learning"`, got)
}

func TestFormatArgsFloat(t *testing.T) {
	got := FormatArgs(map[string]any{
		"latitude":  48.85341,
		"longitude": float64(2),
	})
	assert.Equal(t, "latitude: 48.85341, longitude: 2", got)
}

func TestDecodeToolStatus(t *testing.T) {
	st := decodeToolStatus(map[string]any{"status": "success", "results": []any{}})
	assert.Equal(t, "success", st.Status)
	assert.Equal(t, "success", st.summary())

	st = decodeToolStatus(map[string]any{"status": "error", "error": "boom"})
	assert.Equal(t, "error (boom)", st.summary())

	st = decodeToolStatus(nil)
	assert.Equal(t, "unknown", st.summary())

	st = decodeToolStatus(map[string]any{"unrelated": 1})
	assert.Equal(t, "unknown", st.summary())
}
