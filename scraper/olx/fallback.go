package olx

import (
	"olx-scraper/models"
	"time"
)

// SampleListings is the placeholder data used when nothing could be scraped.
func SampleListings(now func() time.Time) []models.Listing {
	stamp := func() string { return now().Format(models.SearchDateLayout) }

	return []models.Listing{
		{
			Title:      "Waterproof Car Body Cover - Universal Size",
			Price:      "₹ 1,299",
			Location:   "New Delhi, Delhi",
			Link:       "https://www.olx.in/item/waterproof-car-cover-universal",
			SearchDate: stamp(),
		},
		{
			Title:      "Premium Car Cover for Sedan Cars",
			Price:      "₹ 2,500",
			Location:   "Mumbai, Maharashtra",
			Link:       "https://www.olx.in/item/premium-sedan-car-cover",
			SearchDate: stamp(),
		},
		{
			Title:      "Heavy Duty Car Cover - All Weather Protection",
			Price:      "₹ 3,200",
			Location:   "Bangalore, Karnataka",
			Link:       "https://www.olx.in/item/heavy-duty-car-cover",
			SearchDate: stamp(),
		},
	}
}
