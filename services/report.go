package services

import (
	"fmt"
	"io"
	"olx-scraper/models"
	"sort"
	"strings"
)

type Report struct {
	TotalListings      int
	PricedListings     int
	ListingsByLocation map[string]int
}

// GenerateReport counts listings overall, with a price, and per location.
func GenerateReport(listings []models.Listing) Report {
	report := Report{
		TotalListings:      len(listings),
		ListingsByLocation: make(map[string]int),
	}

	for _, l := range listings {
		if hasValue(l.Price) {
			report.PricedListings++
		}
		report.ListingsByLocation[normalizeLocation(l.Location)]++
	}

	return report
}

// PrintResults writes the numbered console report for a search.
func PrintResults(w io.Writer, listings []models.Listing) {
	rule := strings.Repeat("=", 60)
	fmt.Fprintln(w)
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, "CAR COVER SEARCH RESULTS FROM OLX")
	fmt.Fprintln(w, rule)

	if len(listings) == 0 {
		fmt.Fprintln(w, "No listings found.")
		return
	}

	for i, l := range listings {
		fmt.Fprintf(w, "\n%d. %s\n", i+1, l.Title)
		fmt.Fprintf(w, "   Price: %s\n", l.Price)
		fmt.Fprintf(w, "   Location: %s\n", l.Location)
		fmt.Fprintf(w, "   Link: %s\n", l.Link)
		fmt.Fprintf(w, "   Found on: %s\n", l.SearchDate)
		fmt.Fprintln(w, strings.Repeat("-", 50))
	}
}

func PrintReport(w io.Writer, report Report) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "┌──────────────────────────────────────────────┬───────────────┐")
	fmt.Fprintf(w, "│ %-44s │ %-13d │\n", "Total Listings", report.TotalListings)
	fmt.Fprintf(w, "│ %-44s │ %-13d │\n", "Listings With Price", report.PricedListings)
	fmt.Fprintln(w, "├──────────────────────────────────────────────┼───────────────┤")
	fmt.Fprintln(w, "│ Listings per Location                        │ Count         │")
	fmt.Fprintln(w, "├──────────────────────────────────────────────┼───────────────┤")
	for _, loc := range sortedLocations(report.ListingsByLocation) {
		fmt.Fprintf(w, "│ %-44s │ %-13d │\n", truncateText(loc, 44), report.ListingsByLocation[loc])
	}
	fmt.Fprintln(w, "└──────────────────────────────────────────────┴───────────────┘")
}

func hasValue(s string) bool {
	s = strings.TrimSpace(s)
	return s != "" && s != "N/A"
}

func normalizeLocation(location string) string {
	if !hasValue(location) {
		return "Unknown"
	}
	return strings.TrimSpace(location)
}

func sortedLocations(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func truncateText(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max <= 3 {
		return string(runes[:max])
	}
	return string(runes[:max-3]) + "..."
}
