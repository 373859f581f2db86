package tools

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const scholarFixture = `{
	"search_metadata":{"id":"sch1","status":"Success","total_time_taken":2.1},
	"organic_results":[
		{"title":"Quantum Widgets","link":"https://paper.example/1","snippet":"widgets",
		 "publication_info":{"summary":"A Author - 2024"},
		 "authors":[{"name":"A Author"}],
		 "inline_links":{
			"cited_by":{"total":42,"link":"https://scholar.example/cites"},
			"versions":{"total":3,"link":"https://scholar.example/versions"}
		 },
		 "resources":[{"title":"HTML","link":"https://paper.example/html"},
		              {"title":"PDF","link":"https://paper.example/1.pdf"}]},
		{"title":"Plain Paper","link":"https://paper.example/2","snippet":"plain"}
	],
	"profiles":{"link":"https://scholar.example/profiles"},
	"related_searches":[{"query":"quantum gadgets"}],
	"pagination":{"current":1}
}`

func TestScholarSearchSuccess(t *testing.T) {
	var gotQuery url.Values
	tb := newTestToolbox(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Write([]byte(scholarFixture))
	})

	out := tb.scholarSearch(scholarSearchInput{
		Query:      "quantum computing",
		NumResults: 10,
		SortBy:     "relevance",
	})
	require.Equal(t, "success", out.Status)

	assert.Equal(t, "google_scholar", gotQuery.Get("engine"))
	assert.Equal(t, "quantum computing", gotQuery.Get("q"))
	assert.Empty(t, gotQuery.Get("as_sdt"), "relevance sort adds no as_sdt")
	assert.Empty(t, gotQuery.Get("as_ylo"))

	require.Len(t, out.OrganicResults, 2)
	paper := out.OrganicResults[0]
	assert.Equal(t, "Quantum Widgets", paper.Title)
	require.NotNil(t, paper.CitedBy)
	assert.Equal(t, 42, paper.CitedBy.Total)
	require.NotNil(t, paper.Versions)
	assert.Equal(t, 3, paper.Versions.Total)
	assert.Equal(t, "https://paper.example/1.pdf", paper.PDFLink)

	assert.Nil(t, out.OrganicResults[1].CitedBy)
	assert.Empty(t, out.OrganicResults[1].PDFLink)

	assert.NotNil(t, out.Profiles)
	assert.Equal(t, "Google Scholar", out.SearchMetadata.Engine)
}

func TestScholarSearchFilters(t *testing.T) {
	var gotQuery url.Values
	tb := newTestToolbox(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Write([]byte(`{}`))
	})

	tb.scholarSearch(scholarSearchInput{
		Query:           "q",
		NumResults:      10,
		SortBy:          "date",
		PublicationDate: "since_2020",
		Author:          "D Knuth",
	})
	assert.Equal(t, "0,5", gotQuery.Get("as_sdt"))
	assert.Equal(t, "2020", gotQuery.Get("as_ylo"))
	assert.Equal(t, "D Knuth", gotQuery.Get("as_user"))
}

func TestScholarSearchCapsAtTwenty(t *testing.T) {
	var gotQuery url.Values
	tb := newTestToolbox(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Write([]byte(`{}`))
	})

	tb.scholarSearch(scholarSearchInput{Query: "q", NumResults: 50, SortBy: "relevance"})
	assert.Equal(t, "20", gotQuery.Get("num"))
}

func TestScholarSearchMissingKey(t *testing.T) {
	tb := New(Config{})

	out := tb.scholarSearch(scholarSearchInput{Query: "q", NumResults: 5, SortBy: "relevance"})
	assert.Equal(t, "error", out.Status)
	assert.Contains(t, out.Error, "Google Scholar search")
}
