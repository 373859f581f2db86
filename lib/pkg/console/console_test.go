package console

import (
	"bytes"
	"context"
	"iter"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"

	"google.golang.org/adk/agent/llmagent"
	"google.golang.org/adk/model"
)

// scriptedModel replies with fixed text. With allowStream false it rejects
// stream=true the way the openai_compat adapter does.
type scriptedModel struct {
	reply       string
	allowStream bool
	calls       int
}

func (m *scriptedModel) Name() string { return "scripted" }

func (m *scriptedModel) GenerateContent(ctx context.Context, req *model.LLMRequest, stream bool) iter.Seq2[*model.LLMResponse, error] {
	m.calls++
	return func(yield func(*model.LLMResponse, error) bool) {
		if stream && !m.allowStream {
			yield(nil, errors.New("scripted model: streaming not supported"))
			return
		}
		yield(&model.LLMResponse{
			Content: &genai.Content{
				Role:  "model",
				Parts: []*genai.Part{{Text: m.reply}},
			},
		}, nil)
	}
}

func newScriptedConsole(t *testing.T, m model.LLM, input string, nonStreaming bool) (*Console, *bytes.Buffer) {
	t.Helper()
	a, err := llmagent.New(llmagent.Config{
		Name:        "scripted_agent",
		Model:       m,
		Description: "replies with scripted text",
		Instruction: "reply",
	})
	require.NoError(t, err)

	out := &bytes.Buffer{}
	c := New(Config{
		Agent:        a,
		In:           strings.NewReader(input),
		Out:          out,
		NonStreaming: nonStreaming,
	})
	return c, out
}

func TestRunNonStreamingModelReplies(t *testing.T) {
	// A model that rejects stream=true still produces replies when the
	// console runs it unstreamed.
	m := &scriptedModel{reply: "hello from the model"}
	c, out := newScriptedConsole(t, m, "hi there\nexit\n", true)

	require.NoError(t, c.Run(context.Background()))
	assert.Contains(t, out.String(), "hello from the model")
	assert.NotContains(t, out.String(), "AGENT_ERROR")
	assert.Equal(t, 1, m.calls)
}

func TestRunStreamErrorSurfacesAndLoopContinues(t *testing.T) {
	m := &scriptedModel{reply: "unreachable"}
	c, out := newScriptedConsole(t, m, "hi\nexit\n", false)

	require.NoError(t, c.Run(context.Background()))
	assert.Contains(t, out.String(), "AGENT_ERROR")
	assert.NotContains(t, out.String(), "unreachable")
}

func TestRunExitSentinelCaseInsensitive(t *testing.T) {
	m := &scriptedModel{reply: "ok"}
	c, _ := newScriptedConsole(t, m, "hi\n  EXIT  \n", true)

	require.NoError(t, c.Run(context.Background()))
	assert.Equal(t, 1, m.calls, "EXIT must end the loop before another turn")
}

func TestRunSkipsBlankLines(t *testing.T) {
	m := &scriptedModel{reply: "ok"}
	c, _ := newScriptedConsole(t, m, "\n   \nexit\n", true)

	require.NoError(t, c.Run(context.Background()))
	assert.Zero(t, m.calls, "blank lines must not start a turn")
}

func TestRunEOFBehavesLikeExit(t *testing.T) {
	m := &scriptedModel{reply: "last reply"}
	c, out := newScriptedConsole(t, m, "hi", true)

	require.NoError(t, c.Run(context.Background()))
	assert.Contains(t, out.String(), "last reply")
	assert.Equal(t, 1, m.calls)
}
