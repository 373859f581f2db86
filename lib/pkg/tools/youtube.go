package tools

import (
	"net/url"
	"strconv"
	"strings"
)

const youtubeSearchDescription = `Searches YouTube for videos based on query and filters.

sort_by is one of "relevance", "upload_date", "view_count", "rating" (default relevance). Optional upload_date filter: "last_hour", "today", "this_week", "this_month", "this_year". Optional duration filter: "short" (<4min), "medium" (4-20min), "long" (>20min). num_results is capped at 100.`

// YouTube encodes search filters into an opaque "sp" parameter. The constants
// below are the pre-encoded values the engine expects.
var (
	youtubeSortParams = map[string]string{
		"upload_date": "CAI%253D",
		"view_count":  "CAM%253D",
		"rating":      "CAE%253D",
	}
	youtubeDateParams = map[string]string{
		"last_hour":  "EgIIAQ%253D%253D",
		"today":      "EgQIAhAB",
		"this_week":  "EgQIAxAB",
		"this_month": "EgQIBBAB",
		"this_year":  "EgQIBRAB",
	}
	youtubeDurationParams = map[string]string{
		"short":  "EgQQARgB",
		"medium": "EgQQARgC",
		"long":   "EgQQARgD",
	}
)

type youtubeSearchInput struct {
	Query      string `json:"query" jsonschema:"search query string"`
	NumResults int    `json:"num_results" jsonschema:"number of results to return, max 100"`
	SortBy     string `json:"sort_by" jsonschema:"sort order: relevance, upload_date, view_count or rating"`
	UploadDate string `json:"upload_date,omitempty" jsonschema:"filter by upload date: last_hour, today, this_week, this_month or this_year"`
	Duration   string `json:"duration,omitempty" jsonschema:"filter by duration: short, medium or long"`
}

type videoChannel struct {
	Name string `json:"name"`
	Link string `json:"link"`
}

type videoResult struct {
	Title         string       `json:"title"`
	Link          string       `json:"link"`
	VideoID       string       `json:"video_id,omitempty"`
	Thumbnail     string       `json:"thumbnail"`
	Channel       videoChannel `json:"channel"`
	PublishedDate string       `json:"published_date"`
	Views         any          `json:"views"`
	Duration      string       `json:"duration"`
	Description   string       `json:"description"`
	Extensions    []any        `json:"extensions,omitempty"`
}

type youtubeSearchOutput struct {
	Status            string         `json:"status"`
	Error             string         `json:"error,omitempty"`
	Query             string         `json:"query,omitempty"`
	Videos            []videoResult  `json:"videos,omitempty"`
	RelatedSearches   []any          `json:"related_searches,omitempty"`
	SearchInformation map[string]any `json:"search_information,omitempty"`
	SearchMetadata    searchMetadata `json:"search_metadata"`
}

func (tb *Toolbox) youtubeSearch(in youtubeSearchInput) youtubeSearchOutput {
	num := in.NumResults
	if num <= 0 {
		num = 10
	}
	if num > maxWebResults {
		num = maxWebResults
	}

	params := url.Values{}
	params.Set("engine", "youtube")
	// The YouTube engine uses search_query instead of q.
	params.Set("search_query", in.Query)
	params.Set("num", strconv.Itoa(num))
	params.Set("gl", "us")
	params.Set("hl", "en")
	params.Set("safe", "active")

	var sp []string
	if v, ok := youtubeSortParams[in.SortBy]; ok {
		sp = append(sp, v)
	}
	if v, ok := youtubeDateParams[in.UploadDate]; ok {
		sp = append(sp, v)
	}
	if v, ok := youtubeDurationParams[in.Duration]; ok {
		sp = append(sp, v)
	}
	if len(sp) > 0 {
		params.Set("sp", strings.Join(sp, ","))
	}

	doc, errMsg := tb.serpGet("YouTube search", params)
	if errMsg != "" {
		return youtubeSearchOutput{Status: statusError, Error: errMsg}
	}

	out := youtubeSearchOutput{
		Status:          statusSuccess,
		Query:           in.Query,
		RelatedSearches: arrField(doc, "related_searches"),
		SearchMetadata:  metadataFrom(doc, "YouTube"),
	}

	if info := objField(doc, "search_information"); info != nil {
		out.SearchInformation = map[string]any{
			"total_results":        info["total_results"],
			"time_taken_displayed": info["time_taken_displayed"],
		}
	}

	for i, item := range objItems(doc, "video_results") {
		if i >= num {
			break
		}
		video := videoResult{
			Title:         strField(item, "title"),
			Link:          strField(item, "link"),
			Thumbnail:     strField(objField(item, "thumbnail"), "static"),
			PublishedDate: strField(item, "published_date"),
			Views:         item["views"],
			Duration:      strField(item, "duration_text"),
			Description:   strField(item, "description"),
			Extensions:    arrField(item, "extensions"),
		}
		if ch := objField(item, "channel"); ch != nil {
			video.Channel = videoChannel{
				Name: strField(ch, "name"),
				Link: strField(ch, "link"),
			}
		}
		video.VideoID = videoIDFromLink(video.Link)
		out.Videos = append(out.Videos, video)
	}

	return out
}

// videoIDFromLink pulls the v= parameter out of a watch URL, tolerating
// trailing query parameters. Returns "" when the link has no video ID.
func videoIDFromLink(link string) string {
	idx := strings.Index(link, "v=")
	if idx < 0 {
		return ""
	}
	id := link[idx+2:]
	if amp := strings.Index(id, "&"); amp >= 0 {
		id = id[:amp]
	}
	return id
}
