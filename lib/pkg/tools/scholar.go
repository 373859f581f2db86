package tools

import (
	"net/url"
	"strconv"
)

const scholarSearchDescription = `Searches Google Scholar for academic papers and citations.

sort_by is "relevance" or "date". Optional publication_date filter restricts the year floor: "since_2023", "since_2020", "since_2017", "since_2014". Optional author filter restricts results to a specific researcher. num_results is capped at 20 per page.`

const maxScholarResults = 20

// publicationDateParams maps the publication_date buckets onto the as_ylo
// year floor.
var publicationDateParams = map[string]string{
	"since_2023": "2023",
	"since_2020": "2020",
	"since_2017": "2017",
	"since_2014": "2014",
}

type scholarSearchInput struct {
	Query           string `json:"query" jsonschema:"search query string"`
	NumResults      int    `json:"num_results" jsonschema:"number of results to return, max 20"`
	SortBy          string `json:"sort_by" jsonschema:"sort order: relevance or date"`
	PublicationDate string `json:"publication_date,omitempty" jsonschema:"filter: since_2023, since_2020, since_2017 or since_2014"`
	Author          string `json:"author,omitempty" jsonschema:"filter by specific author"`
}

type citationRef struct {
	Total int    `json:"total"`
	Link  string `json:"link"`
}

type paperResult struct {
	Title           string         `json:"title"`
	Link            string         `json:"link"`
	Snippet         string         `json:"snippet"`
	PublicationInfo map[string]any `json:"publication_info,omitempty"`
	Authors         []any          `json:"authors,omitempty"`
	CitedBy         *citationRef   `json:"cited_by,omitempty"`
	Versions        *citationRef   `json:"versions,omitempty"`
	PDFLink         string         `json:"pdf_link,omitempty"`
}

type scholarSearchOutput struct {
	Status          string         `json:"status"`
	Error           string         `json:"error,omitempty"`
	Query           string         `json:"query,omitempty"`
	OrganicResults  []paperResult  `json:"organic_results,omitempty"`
	CitationResults []any          `json:"citation_results,omitempty"`
	Profiles        any            `json:"profiles,omitempty"`
	RelatedSearches []any          `json:"related_searches,omitempty"`
	Pagination      map[string]any `json:"pagination,omitempty"`
	SearchMetadata  searchMetadata `json:"search_metadata"`
}

func (tb *Toolbox) scholarSearch(in scholarSearchInput) scholarSearchOutput {
	num := in.NumResults
	if num <= 0 {
		num = 10
	}
	if num > maxScholarResults {
		num = maxScholarResults
	}

	params := url.Values{}
	params.Set("engine", "google_scholar")
	params.Set("q", in.Query)
	params.Set("num", strconv.Itoa(num))
	params.Set("hl", "en")
	if in.Author != "" {
		params.Set("as_user", in.Author)
	}
	if in.SortBy == "date" {
		params.Set("as_sdt", "0,5")
	}
	if year, ok := publicationDateParams[in.PublicationDate]; ok {
		params.Set("as_ylo", year)
	}

	doc, errMsg := tb.serpGet("Google Scholar search", params)
	if errMsg != "" {
		return scholarSearchOutput{Status: statusError, Error: errMsg}
	}

	out := scholarSearchOutput{
		Status:          statusSuccess,
		Query:           in.Query,
		CitationResults: arrField(doc, "citations"),
		Profiles:        doc["profiles"],
		RelatedSearches: arrField(doc, "related_searches"),
		Pagination:      objField(doc, "pagination"),
		SearchMetadata:  metadataFrom(doc, "Google Scholar"),
	}

	for _, item := range objItems(doc, "organic_results") {
		paper := paperResult{
			Title:           strField(item, "title"),
			Link:            strField(item, "link"),
			Snippet:         strField(item, "snippet"),
			PublicationInfo: objField(item, "publication_info"),
			Authors:         arrField(item, "authors"),
		}

		links := objField(item, "inline_links")
		if cited := objField(links, "cited_by"); cited != nil {
			paper.CitedBy = &citationRef{
				Total: intField(cited, "total"),
				Link:  strField(cited, "link"),
			}
		}
		if versions := objField(links, "versions"); versions != nil {
			paper.Versions = &citationRef{
				Total: intField(versions, "total"),
				Link:  strField(versions, "link"),
			}
		}

		for _, res := range objItems(item, "resources") {
			if strField(res, "title") == "PDF" {
				paper.PDFLink = strField(res, "link")
				break
			}
		}

		out.OrganicResults = append(out.OrganicResults, paper)
	}

	return out
}
