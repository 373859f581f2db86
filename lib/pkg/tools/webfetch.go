package tools

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

const webFetchDescription = `Fetches content from a given URL and optionally extracts text content.

Set extract_text=true to get the page title, cleaned text, meta tags and links instead of raw HTML.`

const (
	webFetchTimeout = 10 * time.Second
	// Desktop Chrome UA; some sites refuse requests with a Go user agent.
	webFetchUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

	maxFetchedLinks = 100
)

type webFetchInput struct {
	URL         string `json:"url" jsonschema:"the URL to fetch content from"`
	ExtractText bool   `json:"extract_text" jsonschema:"extract text content (true) or return raw HTML (false)"`
}

type pageLink struct {
	Href string `json:"href"`
	Text string `json:"text,omitempty"`
}

type webFetchOutput struct {
	Status      string            `json:"status"`
	Error       string            `json:"error,omitempty"`
	URL         string            `json:"url,omitempty"`
	ContentType string            `json:"content_type,omitempty"`
	Size        int               `json:"size,omitempty"`
	Headers     map[string]string `json:"headers,omitempty"`
	Title       string            `json:"title,omitempty"`
	TextContent string            `json:"text_content,omitempty"`
	MetaTags    map[string]string `json:"meta_tags,omitempty"`
	Links       []pageLink        `json:"links,omitempty"`
	RawContent  string            `json:"raw_content,omitempty"`
}

func webFetchError(msg string) webFetchOutput {
	return webFetchOutput{Status: statusError, Error: msg}
}

func (tb *Toolbox) webFetch(in webFetchInput) webFetchOutput {
	ctx, cancel := context.WithTimeout(context.Background(), webFetchTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, in.URL, nil)
	if err != nil {
		return webFetchError(fmt.Sprintf("Network error occurred: %v", err))
	}
	req.Header.Set("User-Agent", webFetchUserAgent)

	resp, err := tb.http.Do(req)
	if err != nil {
		return webFetchError(fmt.Sprintf("Network error occurred: %v", err))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return webFetchError(fmt.Sprintf("Network error occurred: %v", err))
	}
	if resp.StatusCode != http.StatusOK {
		return webFetchError(fmt.Sprintf("Request failed with status code %d: %s", resp.StatusCode, body))
	}

	contentType := resp.Header.Get("Content-Type")
	isHTML := strings.Contains(strings.ToLower(contentType), "text/html")

	headers := make(map[string]string, len(resp.Header))
	for k := range resp.Header {
		headers[k] = resp.Header.Get(k)
	}

	out := webFetchOutput{
		Status:      statusSuccess,
		URL:         in.URL,
		ContentType: contentType,
		Size:        len(body),
		Headers:     headers,
	}

	if !in.ExtractText || !isHTML {
		out.RawContent = string(body)
		return out
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(string(body)))
	if err != nil {
		return webFetchError(fmt.Sprintf("Error during web fetch: %v", err))
	}

	out.Title = strings.TrimSpace(doc.Find("title").First().Text())

	// Drop non-content elements before extracting text.
	doc.Find("script, style").Remove()
	out.TextContent = cleanText(doc.Find("body").Text())
	if out.TextContent == "" {
		out.TextContent = cleanText(doc.Text())
	}

	meta := map[string]string{}
	doc.Find("meta").Each(func(_ int, s *goquery.Selection) {
		name, ok := s.Attr("name")
		if !ok || name == "" {
			name, _ = s.Attr("property")
		}
		content, _ := s.Attr("content")
		if name != "" && content != "" {
			meta[name] = content
		}
	})
	if len(meta) > 0 {
		out.MetaTags = meta
	}

	doc.Find("a[href]").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if len(out.Links) >= maxFetchedLinks {
			return false
		}
		href, _ := s.Attr("href")
		if href == "" || strings.HasPrefix(href, "#") || strings.HasPrefix(href, "javascript:") {
			return true
		}
		out.Links = append(out.Links, pageLink{
			Href: href,
			Text: strings.TrimSpace(s.Text()),
		})
		return true
	})

	return out
}

// cleanText collapses the extracted text into trimmed, non-empty lines.
func cleanText(text string) string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n")
}
