package share

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/31stmarketingmedia/Pocket-Sommelier/internal/pairing"
)

type mockUploader struct {
	lastKey         string
	lastContentType string
	lastBody        string

	url string
	err error
}

func (m *mockUploader) Upload(ctx context.Context, key string, body io.Reader, contentType string) (string, error) {
	m.lastKey = key
	m.lastContentType = contentType
	raw, _ := io.ReadAll(body)
	m.lastBody = string(raw)
	return m.url, m.err
}

var paloma = pairing.Recommendation{
	Name:           "Paloma",
	Type:           "Cocktail",
	Description:    "Tequila and grapefruit soda.",
	Reasoning:      "Smoky-sweet contrast.",
	EstimatedPrice: "$12",
}

func TestShare_UploadsCard(t *testing.T) {
	uploader := &mockUploader{url: "https://cdn.example.com/shares/abc.txt"}
	service := NewService(uploader)

	result := service.Share(context.Background(), paloma)

	if result.Method != "link" {
		t.Fatalf("expected link method, got %q", result.Method)
	}
	if result.URL != uploader.url {
		t.Errorf("expected public URL, got %q", result.URL)
	}
	if !strings.HasPrefix(uploader.lastKey, "shares/") || !strings.HasSuffix(uploader.lastKey, ".txt") {
		t.Errorf("unexpected object key: %q", uploader.lastKey)
	}
	if !strings.Contains(uploader.lastBody, "Paloma") || !strings.Contains(uploader.lastBody, "Smoky-sweet contrast.") {
		t.Errorf("card body missing pairing content: %q", uploader.lastBody)
	}
}

func TestShare_ClipboardFallbackWithoutUploader(t *testing.T) {
	service := NewService(nil)

	result := service.Share(context.Background(), paloma)

	if result.Method != "clipboard" {
		t.Fatalf("expected clipboard method, got %q", result.Method)
	}
	if result.Message == "" {
		t.Error("expected a user-visible confirmation message")
	}
	if !strings.Contains(result.Text, "Paloma") {
		t.Errorf("share text missing drink name: %q", result.Text)
	}
}

func TestShare_ClipboardFallbackOnUploadError(t *testing.T) {
	service := NewService(&mockUploader{err: errors.New("bucket gone")})

	result := service.Share(context.Background(), paloma)

	if result.Method != "clipboard" {
		t.Fatalf("expected clipboard fallback, got %q", result.Method)
	}
}

func TestVendorLinks_SubstitutesEscapedName(t *testing.T) {
	links := VendorLinks("Old Fashioned")

	if len(links) != 3 {
		t.Fatalf("expected 3 vendors, got %d", len(links))
	}
	for _, link := range links {
		if strings.Contains(link.URL, "{DRINK_NAME}") {
			t.Errorf("template not substituted: %s", link.URL)
		}
		if !strings.Contains(link.URL, "Old+Fashioned") {
			t.Errorf("drink name not escaped into %s", link.URL)
		}
	}
}
