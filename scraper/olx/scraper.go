package olx

import (
	"fmt"
	"olx-scraper/config"
	"olx-scraper/models"
	"olx-scraper/utils"
	"time"
)

type Scraper struct {
	cfg       *config.Config
	session   Session
	extractor *Extractor
	now       func() time.Time
}

func NewScraper(cfg *config.Config, session Session) *Scraper {
	return &Scraper{
		cfg:       cfg,
		session:   session,
		extractor: NewExtractor(cfg, time.Now),
		now:       time.Now,
	}
}

// Search loads the results page once and returns the listings found on it,
// or SampleListings when none could be extracted. The session is closed
// before Search returns, whatever the outcome.
//
// Only a navigation failure is returned as an error.
func (s *Scraper) Search() ([]models.Listing, error) {
	defer s.session.Close()

	utils.Info("Opening %s (settle %v)", s.cfg.SearchURL, s.cfg.SettleDelay)
	if err := s.session.Navigate(s.cfg.SearchURL, s.cfg.SettleDelay); err != nil {
		return nil, fmt.Errorf("failed to load search page: %w", err)
	}

	listings, err := s.extractLive()
	if err != nil {
		utils.Error("Error locating listings: %v", err)
	}

	if len(listings) == 0 {
		utils.Warn("No live listings scraped. Using sample data instead...")
		return SampleListings(s.now), nil
	}

	utils.Success("Scraped %d listings", len(listings))
	return listings, nil
}

func (s *Scraper) extractLive() ([]models.Listing, error) {
	html, err := s.session.HTML()
	if err != nil {
		return nil, err
	}
	return s.extractor.Extract(html)
}
