// Package console implements the interactive chat loop: it reads stdin
// lines, forwards each turn to the ADK runner against one persistent
// in-memory session, and renders the streamed event sequence (tool calls,
// message chunks, the final reply).
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"google.golang.org/genai"

	"google.golang.org/adk/agent"
	"google.golang.org/adk/runner"
	"google.golang.org/adk/session"
)

type Config struct {
	AppName string
	UserID  string
	Agent   agent.Agent
	// Debug prints run markers, event detail and tool results.
	Debug bool

	// NonStreaming runs each turn with streaming mode none instead of SSE.
	// Required for models whose GenerateContent rejects stream=true, such as
	// the openai_compat adapter.
	NonStreaming bool

	// In/Out default to stdin/stdout.
	In  io.Reader
	Out io.Writer
}

type Console struct {
	cfg Config
	in  io.Reader
	out io.Writer
}

func New(cfg Config) *Console {
	if cfg.AppName == "" {
		cfg.AppName = "toolchat"
	}
	if cfg.UserID == "" {
		cfg.UserID = "user1"
	}
	c := &Console{cfg: cfg, in: cfg.In, out: cfg.Out}
	if c.in == nil {
		c.in = os.Stdin
	}
	if c.out == nil {
		c.out = os.Stdout
	}
	return c
}

// Run drives the REPL until "exit" or EOF. Conversation history accrues in
// the session service, so every turn sees the turns before it.
func (c *Console) Run(ctx context.Context) error {
	sessionService := session.InMemoryService()

	created, err := sessionService.Create(ctx, &session.CreateRequest{
		AppName: c.cfg.AppName,
		UserID:  c.cfg.UserID,
	})
	if err != nil {
		return errors.Wrap(err, "create session")
	}
	sess := created.Session

	r, err := runner.New(runner.Config{
		AppName:        c.cfg.AppName,
		Agent:          c.cfg.Agent,
		SessionService: sessionService,
	})
	if err != nil {
		return errors.Wrap(err, "create runner")
	}

	c.printBanner()

	scanner := bufio.NewScanner(c.in)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for {
		fmt.Fprint(c.out, "> ")
		if !scanner.Scan() {
			// EOF behaves like exit.
			fmt.Fprintln(c.out)
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if strings.EqualFold(line, "exit") {
			return nil
		}
		fmt.Fprintln(c.out)

		c.runTurn(ctx, r, sess.ID(), line)
	}
}

func (c *Console) printBanner() {
	fmt.Fprintln(c.out, "Chat with the Custom Tools Agent (type 'exit' to quit):")
	fmt.Fprintln(c.out, "Try asking about weather in a city, searching for information, searching YouTube for videos,")
	fmt.Fprintln(c.out, "searching Google Scholar for academic papers, or searching for flights.")
	fmt.Fprintln(c.out, "Example 1: 'Find me YouTube videos about machine learning tutorials'")
	fmt.Fprintln(c.out, "Example 2: 'Search Google Scholar for recent papers on quantum computing'")
	fmt.Fprintln(c.out, "Example 3: 'Find flights from NYC to LHR on 2026-05-15 with a return on 2026-05-22'")
	if c.cfg.Debug {
		fmt.Fprintln(c.out, "Debug mode enabled - agent events will be displayed")
	}
}

func (c *Console) runTurn(ctx context.Context, r *runner.Runner, sessionID, line string) {
	if c.cfg.Debug {
		fmt.Fprintln(c.out, "\n=== Run starting ===")
	}

	userMsg := &genai.Content{
		Role:  string(genai.RoleUser),
		Parts: []*genai.Part{genai.NewPartFromText(line)},
	}

	var finalText string
	var lastAuthor string

	mode := agent.StreamingModeSSE
	if c.cfg.NonStreaming {
		mode = agent.StreamingModeNone
	}

	for event, err := range r.Run(ctx, c.cfg.UserID, sessionID, userMsg, agent.RunConfig{
		StreamingMode: mode,
	}) {
		if err != nil {
			fmt.Fprintf(c.out, "\nAGENT_ERROR: %v\n", err)
			logrus.WithField("module", "console").WithError(err).Error("agent run error")
			continue
		}
		if event == nil {
			continue
		}

		if event.Author != "" && event.Author != lastAuthor {
			if lastAuthor != "" && c.cfg.Debug {
				fmt.Fprintf(c.out, "Agent updated: %s\n", event.Author)
			}
			lastAuthor = event.Author
		}

		if text := c.renderEvent(event); text != "" {
			finalText = text
		}
	}

	fmt.Fprintf(c.out, "\n%s %s\n\n", color.CyanString("⏺"), finalText)

	if c.cfg.Debug {
		fmt.Fprintln(c.out, "=== Run complete ===")
		fmt.Fprintln(c.out)
	}
}

// renderEvent prints the visible pieces of one event and returns the
// event's full text when it is a complete (non-partial) model message.
func (c *Console) renderEvent(event *session.Event) string {
	if event.Content == nil {
		return ""
	}

	var textParts []string
	for _, p := range event.Content.Parts {
		if p == nil {
			continue
		}
		switch {
		case p.FunctionCall != nil:
			fmt.Fprintf(c.out, "%s %s(%s)\n",
				color.CyanString("⏺"),
				color.New(color.Bold).Sprint(p.FunctionCall.Name),
				FormatArgs(p.FunctionCall.Args))
		case p.FunctionResponse != nil:
			c.renderToolResult(p.FunctionResponse)
		case p.Text != "":
			textParts = append(textParts, p.Text)
		}
	}

	if len(textParts) == 0 {
		return ""
	}
	text := strings.Join(textParts, "")
	if event.Partial {
		// Raw message chunks are only surfaced in debug mode; the full
		// message is printed once the run settles.
		logrus.WithField("module", "console").Debugf("message building: %s", text)
		return ""
	}
	return text
}

func (c *Console) renderToolResult(fr *genai.FunctionResponse) {
	st := decodeToolStatus(fr.Response)
	entry := logrus.WithField("module", "console").
		WithField("tool", fr.Name).
		WithField("status", st.Status)
	if st.Status == "error" {
		entry.WithField("error", st.Error).Warn("tool finished")
	} else {
		entry.Debug("tool finished")
	}
	if c.cfg.Debug {
		fmt.Fprintf(c.out, "Tool output: %s -> %s\n", fr.Name, st.summary())
	}
}
