package sources

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/inbucket/html2text"
)

// Web fetches an arbitrary page with a plain GET. HTML bodies are flattened
// to text; anything else is passed through as-is.
type Web struct {
	client *http.Client
	url    string
}

func NewWeb(url string) *Web {
	return &Web{
		client: newHTTPClient(),
		url:    url,
	}
}

func (w *Web) Name() string {
	return "WEB"
}

func (w *Web) Fetch(ctx context.Context) (string, error) {
	if w.url == "" {
		return "", nil
	}

	body, err := getBody(ctx, w.client, w.url)
	if err != nil {
		return "", fmt.Errorf("web page %s: %w", w.url, err)
	}

	content := string(body)
	if !looksLikeHTML(content) {
		return content, nil
	}

	text, err := html2text.FromString(content, html2text.Options{TextOnly: true})
	if err != nil {
		return "", fmt.Errorf("flatten html: %w", err)
	}
	return text, nil
}

func looksLikeHTML(s string) bool {
	head := strings.ToLower(s)
	if len(head) > 512 {
		head = head[:512]
	}
	return strings.Contains(head, "<html") || strings.Contains(head, "<!doctype html")
}
