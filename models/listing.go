package models

// Listing is one search result. Every field is kept exactly as displayed.
type Listing struct {
	Title      string `json:"title"`
	Price      string `json:"price"`
	Location   string `json:"location"`
	Link       string `json:"link"`
	SearchDate string `json:"search_date"`
}

// SearchResults is the document written to the output file.
type SearchResults struct {
	SearchQuery  string    `json:"search_query"`
	TotalResults int       `json:"total_results"`
	Results      []Listing `json:"results"`
}

// SearchDateLayout is local wall-clock time at second precision.
const SearchDateLayout = "2006-01-02 15:04:05"

func NewSearchResults(query string, listings []Listing) SearchResults {
	if listings == nil {
		listings = []Listing{}
	}
	return SearchResults{
		SearchQuery:  query,
		TotalResults: len(listings),
		Results:      listings,
	}
}
