package env

import (
	adkopenai "github.com/byebyebruce/adk-go-openai"
	go_openai "github.com/sashabaranov/go-openai"
	"google.golang.org/adk/model"

	"github.com/cometwk/toolchat/model/openai_compat"
)

// mustOpenAIConfig reads the OpenAI-compatible endpoint configuration.
// Every missing variable is reported in one panic so the user can fix
// the whole .env in one go.
func mustOpenAIConfig(requireModel bool) (baseURL, apiKey, modelName string) {
	var missing []string
	if baseURL = String("OPENAI_API_BASE", ""); baseURL == "" {
		missing = append(missing, "OPENAI_API_BASE")
	}
	if apiKey = String("OPENAI_API_KEY", ""); apiKey == "" {
		missing = append(missing, "OPENAI_API_KEY")
	}
	if requireModel {
		if modelName = String("OPENAI_MODEL", ""); modelName == "" {
			missing = append(missing, "OPENAI_MODEL")
		}
	} else {
		modelName = String("OPENAI_MODEL", "")
	}
	if len(missing) > 0 {
		msg := "missing required environment variables:"
		for _, m := range missing {
			msg += " " + m
		}
		panic(msg)
	}
	return baseURL, apiKey, modelName
}

// MustModel builds the ADK model.LLM from OPENAI_API_BASE / OPENAI_API_KEY /
// OPENAI_MODEL. With OPENAI_COMPAT=true the hand-rolled Chat Completions
// adapter is used instead of the SDK wrapper (useful for self-hosted servers
// with broken SSE framing; run with streaming mode none).
func MustModel() model.LLM {
	return MustModelWith(MustString("OPENAI_MODEL"))
}

func MustModelWith(modelName string) model.LLM {
	baseURL, apiKey, _ := mustOpenAIConfig(false)

	if IsCompat() {
		m, err := openai_compat.NewModel(modelName, openai_compat.Config{
			BaseURL: baseURL,
			APIKey:  apiKey,
		})
		if err != nil {
			panic(err)
		}
		return m
	}

	cfg := go_openai.DefaultConfig(apiKey)
	cfg.BaseURL = baseURL
	return adkopenai.NewOpenAIModel(modelName, cfg)
}

// MustModelWithFlag prefers a -model flag override over OPENAI_MODEL.
func MustModelWithFlag(override string) model.LLM {
	if override != "" {
		return MustModelWith(override)
	}
	return MustModel()
}

// SerpAPIKey returns the SerpAPI key, or "" when unset. The SerpAPI-backed
// tools still register without it and return an error result when called,
// so the agent can tell the user what is missing.
func SerpAPIKey() string {
	return String("SERPAPI_API_KEY", "")
}
