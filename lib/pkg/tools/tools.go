// Package tools implements the seven outbound REST tools exposed to the
// agent: Open-Meteo geocoding and forecast, SerpAPI web / YouTube / Scholar /
// Google Flights search, and a generic web page fetcher.
//
// Every tool follows one error contract: network failures, non-200 responses
// and JSON decode failures are folded into the returned result as
// status=error with a message, never into a Go error. The agent runtime sees
// the failure text and decides how to proceed. No retries, no backoff, one
// GET per invocation.
package tools

import (
	"log"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	jsoniter "github.com/json-iterator/go"

	"google.golang.org/adk/tool"
	"google.golang.org/adk/tool/functiontool"
)

const (
	statusSuccess = "success"
	statusError   = "error"

	defaultGeocodingBaseURL = "https://geocoding-api.open-meteo.com"
	defaultForecastBaseURL  = "https://api.open-meteo.com"
	defaultSerpAPIBaseURL   = "https://serpapi.com/search"
)

var jsonx = jsoniter.ConfigCompatibleWithStandardLibrary

type Config struct {
	// SerpAPIKey enables the four SerpAPI-backed tools. When empty the tools
	// still register and return status=error when invoked.
	SerpAPIKey string

	// HTTPClient overrides the shared client (tests point it at httptest).
	HTTPClient *http.Client

	// Base URLs, overridable for tests. Zero values use the public endpoints.
	GeocodingBaseURL string
	ForecastBaseURL  string
	SerpAPIBaseURL   string

	// Now supplies "today" for flight date validation. Zero value: time.Now.
	Now func() time.Time
}

// Toolbox owns the outbound HTTP plumbing shared by all seven tools.
type Toolbox struct {
	cfg      Config
	http     *http.Client
	validate *validator.Validate
	now      func() time.Time
}

func New(cfg Config) *Toolbox {
	if cfg.GeocodingBaseURL == "" {
		cfg.GeocodingBaseURL = defaultGeocodingBaseURL
	}
	if cfg.ForecastBaseURL == "" {
		cfg.ForecastBaseURL = defaultForecastBaseURL
	}
	if cfg.SerpAPIBaseURL == "" {
		cfg.SerpAPIBaseURL = defaultSerpAPIBaseURL
	}
	hc := cfg.HTTPClient
	if hc == nil {
		hc = &http.Client{Timeout: 30 * time.Second}
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	return &Toolbox{
		cfg:      cfg,
		http:     hc,
		validate: validator.New(),
		now:      now,
	}
}

// Tools builds the ADK tool list in the order the agent instruction
// describes them.
func (tb *Toolbox) Tools() []tool.Tool {
	return []tool.Tool{
		mustTool(functiontool.New(functiontool.Config{
			Name:        "geocode",
			Description: geocodeDescription,
		}, adapt(tb.geocode))),
		mustTool(functiontool.New(functiontool.Config{
			Name:        "get_weather",
			Description: weatherDescription,
		}, adapt(tb.getWeather))),
		mustTool(functiontool.New(functiontool.Config{
			Name:        "web_search",
			Description: webSearchDescription,
		}, adapt(tb.webSearch))),
		mustTool(functiontool.New(functiontool.Config{
			Name:        "web_fetch",
			Description: webFetchDescription,
		}, adapt(tb.webFetch))),
		mustTool(functiontool.New(functiontool.Config{
			Name:        "youtube_search",
			Description: youtubeSearchDescription,
		}, adapt(tb.youtubeSearch))),
		mustTool(functiontool.New(functiontool.Config{
			Name:        "scholar_search",
			Description: scholarSearchDescription,
		}, adapt(tb.scholarSearch))),
		mustTool(functiontool.New(functiontool.Config{
			Name:        "flights_search",
			Description: flightsSearchDescription,
		}, adapt(tb.flightsSearch))),
	}
}

// adapt lifts a plain tool function into the functiontool signature. Tool
// failures live in the result's status field, so the Go error is always nil.
func adapt[In, Out any](fn func(In) Out) func(tool.Context, In) (Out, error) {
	return func(_ tool.Context, in In) (Out, error) {
		return fn(in), nil
	}
}

func mustTool(t tool.Tool, err error) tool.Tool {
	if err != nil {
		log.Fatalf("Failed to create tool: %v", err)
	}
	return t
}
