package sources

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/inbucket/html2text"
)

// Wiki fetches one page from a MediaWiki installation via the action API
// and flattens the rendered HTML to plain text.
type Wiki struct {
	client *http.Client
	apiURL string
	page   string
}

func NewWiki(apiURL, page string) *Wiki {
	return &Wiki{
		client: newHTTPClient(),
		apiURL: apiURL,
		page:   page,
	}
}

func (w *Wiki) Name() string {
	return "WIKI"
}

func (w *Wiki) Fetch(ctx context.Context) (string, error) {
	if w.apiURL == "" || w.page == "" {
		return "", nil
	}

	q := url.Values{}
	q.Set("action", "parse")
	q.Set("format", "json")
	q.Set("prop", "text")
	q.Set("page", w.page)

	body, err := getBody(ctx, w.client, w.apiURL+"?"+q.Encode())
	if err != nil {
		return "", fmt.Errorf("wiki page %s: %w", w.page, err)
	}

	var result struct {
		Parse struct {
			Text map[string]string `json:"text"`
		} `json:"parse"`
		Error *struct {
			Info string `json:"info"`
		} `json:"error"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("decode wiki response: %w", err)
	}
	if result.Error != nil {
		return "", fmt.Errorf("wiki page %s: %s", w.page, result.Error.Info)
	}

	html := result.Parse.Text["*"]
	if html == "" {
		return "", fmt.Errorf("wiki page %s: empty parse text", w.page)
	}

	text, err := html2text.FromString(html, html2text.Options{TextOnly: true})
	if err != nil {
		return "", fmt.Errorf("flatten wiki html: %w", err)
	}
	return text, nil
}
