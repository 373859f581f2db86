// Package main provides an interactive ADK agent wired to seven live web
// tools (geocoding, weather, web search, page fetch, YouTube, Scholar,
// Google Flights).
//
// It demonstrates:
// - Creating an ADK model backed by an OpenAI-compatible endpoint (env vars)
// - Registering custom function tools built with functiontool.New
// - Streaming runner events through an interactive console loop
package main

import (
	"context"
	"flag"
	"log"

	"google.golang.org/adk/agent"
	"google.golang.org/adk/agent/llmagent"
	"google.golang.org/adk/cmd/launcher"
	"google.golang.org/adk/cmd/launcher/full"

	"github.com/cometwk/toolchat/lib/pkg/console"
	"github.com/cometwk/toolchat/lib/pkg/env"
	applog "github.com/cometwk/toolchat/lib/pkg/log"
	"github.com/cometwk/toolchat/lib/pkg/tools"
)

func main() {
	debugFlag := flag.Bool("debug", false, "enable debug/verbose mode")
	modelFlag := flag.String("model", "", "override OPENAI_MODEL env var")
	promptFlag := flag.String("prompt", "", "external system prompt file")
	launcherFlag := flag.Bool("launcher", false, "run through ADK's full launcher (console/web/rest); remaining args pass through")
	flag.Parse()

	debug := *debugFlag || env.IsDebug()
	applog.Init(debug, env.String("TOOLCHAT_LOG_FILE", "toolchat.log"))

	ctx := context.Background()

	toolbox := tools.New(tools.Config{
		SerpAPIKey: env.SerpAPIKey(),
	})

	a, err := llmagent.New(llmagent.Config{
		Name:        "custom_tools_agent",
		Model:       env.MustModelWithFlag(*modelFlag),
		Description: "Assistant that can geocode locations, report weather, search the web, fetch pages, and search YouTube, Google Scholar and Google Flights.",
		Instruction: instruction(*promptFlag),
		Tools:       toolbox.Tools(),
	})
	if err != nil {
		log.Fatalf("Failed to create agent: %v", err)
	}

	if *launcherFlag {
		config := &launcher.Config{
			AgentLoader: agent.NewSingleLoader(a),
		}
		l := full.NewLauncher()
		if err := l.Execute(ctx, config, flag.Args()); err != nil {
			log.Fatalf("Run failed: %v\n\n%s", err, l.CommandLineSyntax())
		}
		return
	}

	c := console.New(console.Config{
		AppName: "toolchat",
		UserID:  "user1",
		Agent:   a,
		Debug:   debug,
		// The compat adapter cannot stream; run those turns unstreamed.
		NonStreaming: env.IsCompat(),
	})
	if err := c.Run(ctx); err != nil {
		log.Fatalf("Run failed: %v", err)
	}
}
