package sources

import (
	"context"
	"fmt"
	"net/http"
)

// GoogleDoc fetches a document shared with link access through the
// plain-text export endpoint, so no Docs API credentials are needed.
type GoogleDoc struct {
	client  *http.Client
	baseURL string
	docID   string
}

func NewGoogleDoc(docID string) *GoogleDoc {
	return &GoogleDoc{
		client:  newHTTPClient(),
		baseURL: "https://docs.google.com",
		docID:   docID,
	}
}

func (g *GoogleDoc) Name() string {
	return "GOOGLE DOC"
}

func (g *GoogleDoc) Fetch(ctx context.Context) (string, error) {
	if g.docID == "" {
		return "", nil
	}

	url := fmt.Sprintf("%s/document/d/%s/export?format=txt", g.baseURL, g.docID)
	body, err := getBody(ctx, g.client, url)
	if err != nil {
		return "", fmt.Errorf("google doc %s: %w", g.docID, err)
	}
	return string(body), nil
}
