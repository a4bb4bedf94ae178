package share

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"github.com/31stmarketingmedia/Pocket-Sommelier/internal/pairing"
)

// Result is the outcome of sharing a pairing. Method "link" carries a public
// URL; method "clipboard" carries the card text for the client to copy, with
// a user-visible confirmation message.
type Result struct {
	Method  string `json:"method"`
	Title   string `json:"title"`
	Text    string `json:"text"`
	URL     string `json:"url,omitempty"`
	Message string `json:"message,omitempty"`
}

type Service struct {
	uploader Uploader
}

// NewService accepts a nil uploader, in which case every share falls back to
// the clipboard method.
func NewService(uploader Uploader) *Service {
	return &Service{uploader: uploader}
}

func (s *Service) Share(ctx context.Context, rec pairing.Recommendation) Result {
	title := fmt.Sprintf("Drink Pairing: %s", rec.Name)
	text := fmt.Sprintf(
		"My Pocket Sommelier recommends pairing %s with your dish!\n\nWhy it works: %s",
		rec.Name,
		rec.Reasoning,
	)

	if s.uploader != nil {
		key := fmt.Sprintf("shares/%s.txt", uuid.New().String())
		card := title + "\n\n" + text

		publicURL, err := s.uploader.Upload(ctx, key, strings.NewReader(card), "text/plain; charset=utf-8")
		if err == nil {
			return Result{
				Method: "link",
				Title:  title,
				Text:   text,
				URL:    publicURL,
			}
		}
		// Upload trouble degrades to the clipboard path.
		log.Printf("share: upload failed for %q: %v", rec.Name, err)
	}

	return Result{
		Method:  "clipboard",
		Title:   title,
		Text:    text,
		Message: "Pairing copied to clipboard!",
	}
}

// --------------------------------------------------
// Vendor search links
// --------------------------------------------------

type Vendor struct {
	Name          string `json:"name"`
	AffiliateLink string `json:"affiliateLink"`
}

// VendorLink is a vendor with the drink substituted into its template.
type VendorLink struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

var Vendors = []Vendor{
	{
		Name:          "Wine.com",
		AffiliateLink: "https://www.wine.com/search/{DRINK_NAME}/",
	},
	{
		Name:          "Drizly",
		AffiliateLink: "https://drizly.com/search?q={DRINK_NAME}",
	},
	{
		Name:          "Total Wine",
		AffiliateLink: "https://www.totalwine.com/search/all?text={DRINK_NAME}",
	},
}

// VendorLinks fills the drink name into every vendor template.
func VendorLinks(drinkName string) []VendorLink {
	links := make([]VendorLink, 0, len(Vendors))
	escaped := url.QueryEscape(drinkName)
	for _, v := range Vendors {
		links = append(links, VendorLink{
			Name: v.Name,
			URL:  strings.ReplaceAll(v.AffiliateLink, "{DRINK_NAME}", escaped),
		})
	}
	return links
}
