package olx

import (
	"errors"
	"fmt"
	"net/url"
	"olx-scraper/config"
	"olx-scraper/models"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

const notAvailable = "N/A"

var errFieldMissing = errors.New("field not found")

// Extractor maps rendered result-page markup to listings.
type Extractor struct {
	selectors   config.Selectors
	limit       int
	titlePrefix string
	base        *url.URL
	now         func() time.Time
}

func NewExtractor(cfg *config.Config, now func() time.Time) *Extractor {
	// An unparsable base only disables href resolution.
	base, _ := url.Parse(cfg.SearchURL)
	return &Extractor{
		selectors:   cfg.Selectors,
		limit:       cfg.MaxListings,
		titlePrefix: cfg.SearchQuery,
		base:        base,
		now:         now,
	}
}

// Extract returns one listing per container, in document order, capped at
// the configured limit. Zero containers is not an error.
func (e *Extractor) Extract(html string) ([]models.Listing, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	containers := doc.Find(e.selectors.Container)
	if e.limit > 0 && containers.Length() > e.limit {
		containers = containers.Slice(0, e.limit)
	}

	listings := make([]models.Listing, 0, containers.Length())
	containers.Each(func(i int, s *goquery.Selection) {
		listings = append(listings, e.extractListing(i, s))
	})
	return listings, nil
}

func (e *Extractor) extractListing(i int, s *goquery.Selection) models.Listing {
	return models.Listing{
		Title: valueOr(func() (string, error) {
			return childText(s, e.selectors.Title)
		}, fmt.Sprintf("%s %d", e.titlePrefix, i+1)),
		Price: valueOr(func() (string, error) {
			return childText(s, e.selectors.Price)
		}, notAvailable),
		Location: valueOr(func() (string, error) {
			return childText(s, e.selectors.Location)
		}, notAvailable),
		Link: valueOr(func() (string, error) {
			return e.childHref(s)
		}, notAvailable),
		SearchDate: e.now().Format(models.SearchDateLayout),
	}
}

// valueOr runs lookup and substitutes fallback on any failure.
func valueOr(lookup func() (string, error), fallback string) string {
	v, err := lookup()
	if err != nil {
		return fallback
	}
	return v
}

func childText(s *goquery.Selection, selector string) (string, error) {
	el := s.Find(selector).First()
	if el.Length() == 0 {
		return "", fmt.Errorf("%s: %w", selector, errFieldMissing)
	}
	return visibleText(el), nil
}

// visibleText approximates a browser's rendered text: non-rendered nodes are
// dropped and whitespace runs collapse to one space.
func visibleText(s *goquery.Selection) string {
	c := s.Clone()
	c.Find("script, style, noscript, template").Remove()
	return strings.Join(strings.Fields(c.Text()), " ")
}

// childHref returns the first anchor's href resolved against the page URL,
// the way a browser reports the href property.
func (e *Extractor) childHref(s *goquery.Selection) (string, error) {
	href, ok := s.Find(e.selectors.Link).First().Attr("href")
	if !ok {
		return "", fmt.Errorf("%s[href]: %w", e.selectors.Link, errFieldMissing)
	}
	href = strings.TrimSpace(href)
	if e.base == nil {
		return href, nil
	}
	ref, err := url.Parse(href)
	if err != nil {
		return "", fmt.Errorf("bad href %q: %w", href, err)
	}
	return e.base.ResolveReference(ref).String(), nil
}
