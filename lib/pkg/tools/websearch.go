package tools

import (
	"net/url"
	"strconv"
)

const webSearchDescription = `Performs a web search using Google via SerpAPI.

All parameters must be explicitly provided. num_results is capped at 100; use 10 for most queries. time_period filters results to "past_day", "past_week", "past_month" or "past_year" (empty defaults to past_year). Set include_news to also return news results.`

const maxWebResults = 100

// timePeriodParams maps the time_period values onto Google's tbs qdr codes.
var timePeriodParams = map[string]string{
	"past_day":   "d",
	"past_week":  "w",
	"past_month": "m",
	"past_year":  "y",
}

type webSearchInput struct {
	Query       string `json:"query" jsonschema:"search query string"`
	NumResults  int    `json:"num_results" jsonschema:"number of results to return, max 100, recommend 10"`
	IncludeNews bool   `json:"include_news" jsonschema:"whether to include news results"`
	TimePeriod  string `json:"time_period,omitempty" jsonschema:"time filter: past_day, past_week, past_month or past_year"`
}

type organicResult struct {
	Title         string `json:"title"`
	Link          string `json:"link"`
	Snippet       string `json:"snippet"`
	Position      int    `json:"position"`
	DisplayedLink string `json:"displayed_link"`
}

type webSearchOutput struct {
	Status           string           `json:"status"`
	Error            string           `json:"error,omitempty"`
	Query            string           `json:"query,omitempty"`
	OrganicResults   []organicResult  `json:"organic_results,omitempty"`
	AnswerBox        map[string]any   `json:"answer_box,omitempty"`
	KnowledgeGraph   map[string]any   `json:"knowledge_graph,omitempty"`
	RelatedQuestions []map[string]any `json:"related_questions,omitempty"`
	News             []map[string]any `json:"news,omitempty"`
	Pagination       map[string]any   `json:"pagination,omitempty"`
	SearchMetadata   searchMetadata   `json:"search_metadata"`
}

func (tb *Toolbox) webSearch(in webSearchInput) webSearchOutput {
	num := in.NumResults
	if num <= 0 {
		num = 10
	}
	if num > maxWebResults {
		num = maxWebResults
	}
	// Without a time filter SerpAPI may return no organic results at all,
	// so an unset period falls back to past_year.
	period := in.TimePeriod
	if period == "" {
		period = "past_year"
	}

	params := url.Values{}
	params.Set("q", in.Query)
	params.Set("num", strconv.Itoa(num))
	params.Set("safe", "active")
	params.Set("gl", "us")
	params.Set("hl", "en")
	if qdr, ok := timePeriodParams[period]; ok {
		params.Set("tbs", "qdr:"+qdr)
	}

	doc, errMsg := tb.serpGet("web search", params)
	if errMsg != "" {
		return webSearchOutput{Status: statusError, Error: errMsg}
	}

	out := webSearchOutput{
		Status:           statusSuccess,
		Query:            in.Query,
		AnswerBox:        objField(doc, "answer_box"),
		KnowledgeGraph:   objField(doc, "knowledge_graph"),
		RelatedQuestions: objItems(doc, "related_questions"),
		Pagination:       objField(doc, "pagination"),
		SearchMetadata:   metadataFrom(doc, "Google"),
	}

	for i, item := range objItems(doc, "organic_results") {
		if i >= num {
			break
		}
		out.OrganicResults = append(out.OrganicResults, organicResult{
			Title:         strField(item, "title"),
			Link:          strField(item, "link"),
			Snippet:       strField(item, "snippet"),
			Position:      intField(item, "position"),
			DisplayedLink: strField(item, "displayed_link"),
		})
	}

	if in.IncludeNews {
		news := objItems(doc, "news_results")
		if len(news) > num {
			news = news[:num]
		}
		out.News = news
	}

	return out
}
