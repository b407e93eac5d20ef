package kleinanzeigen

import (
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/PuerkitoBio/goquery"

	"watch-deal-scraper/models"
)

const (
	maxListings = 5

	itemSelector  = ".aditem"
	titleSelector = ".text-module-begin"
	priceSelector = ".aditem-main--middle--price-shipping--price"
)

// ErrMissingElement is returned when an ad lacks one of the fields we read.
var ErrMissingElement = errors.New("missing element")

var nonDigitRegexp = regexp.MustCompile(`\D`)

// page is what was read from one rendered results page.
type page struct {
	Found    int
	Listings []*models.Listing
	Skipped  []error
}

// parsePage reads up to maxListings ads from the results page markup in
// document order. Ads that cannot be read are recorded in Skipped and left
// out; they still count towards the limit.
func parsePage(html, pageURL string) (*page, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("kleinanzeigen: parse html: %w", err)
	}

	base, err := url.Parse(pageURL)
	if err != nil {
		base = nil
	}

	items := doc.Find(itemSelector)
	if items.Length() > maxListings {
		items = items.Slice(0, maxListings)
	}

	p := &page{Found: items.Length()}
	items.Each(func(i int, sel *goquery.Selection) {
		l, err := extractListing(sel, base)
		if err != nil {
			p.Skipped = append(p.Skipped, fmt.Errorf("item %d: %w", i+1, err))
			return
		}
		p.Listings = append(p.Listings, l)
	})
	return p, nil
}

func extractListing(sel *goquery.Selection, base *url.URL) (*models.Listing, error) {
	title := sel.Find(titleSelector).First()
	if title.Length() == 0 {
		return nil, fmt.Errorf("%w: title %q", ErrMissingElement, titleSelector)
	}

	img := sel.Find("img").First()
	if img.Length() == 0 {
		return nil, fmt.Errorf("%w: img", ErrMissingElement)
	}

	price := sel.Find(priceSelector).First()
	if price.Length() == 0 {
		return nil, fmt.Errorf("%w: price %q", ErrMissingElement, priceSelector)
	}

	link := sel.Find("a").First()
	if link.Length() == 0 {
		return nil, fmt.Errorf("%w: link", ErrMissingElement)
	}

	return &models.Listing{
		Title:     normaliseText(title.Text()),
		ImageURL:  resolveURL(base, img.AttrOr("src", "")),
		Price:     parsePrice(price.Text()),
		DetailURL: resolveURL(base, link.AttrOr("href", "")),
	}, nil
}

// parsePrice keeps only the digits of the scraped price text.
// Examples:
//
//	"1.234 €"     → 1234
//	"450 € VB"    → 450
//	"VB" or ""    → 0
func parsePrice(raw string) int {
	digits := nonDigitRegexp.ReplaceAllString(raw, "")
	if digits == "" {
		return 0
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0
	}
	return n
}

func resolveURL(base *url.URL, ref string) string {
	ref = strings.TrimSpace(ref)
	if ref == "" || base == nil {
		return ref
	}
	u, err := url.Parse(ref)
	if err != nil {
		return ref
	}
	return base.ResolveReference(u).String()
}

// normaliseText strips leading/trailing whitespace and collapses internal whitespace.
func normaliseText(s string) string {
	fields := strings.FieldsFunc(s, unicode.IsSpace)
	return strings.Join(fields, " ")
}
