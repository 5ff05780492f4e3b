package main

import (
	"context"
	"fmt"
	"io"
	"olx-scraper/config"
	"olx-scraper/models"
	"olx-scraper/scraper/olx"
	"olx-scraper/services"
	"olx-scraper/storage"
	"olx-scraper/utils"
	"os"
)

func main() {
	cfg := config.Load()
	utils.Info("Starting OLX %s search | max=%d settle=%v", cfg.SearchQuery, cfg.MaxListings, cfg.SettleDelay)

	browser, err := olx.NewBrowser(context.Background(), cfg.Headless)
	if err != nil {
		utils.Error("Could not start scraper: %v", err)
		os.Exit(1)
	}

	// Search closes the browser on every path.
	listings, err := olx.NewScraper(cfg, browser).Search()
	if err != nil {
		utils.Error("Search failed: %v", err)
		os.Exit(1)
	}

	utils.Section("RESULTS")
	services.PrintResults(os.Stdout, listings)
	services.PrintReport(os.Stdout, services.GenerateReport(listings))

	results := models.NewSearchResults(cfg.SearchQuery, listings)
	written := saveResults(cfg, results)

	printSummary(os.Stdout, results, cfg.OutputPath, written)
	utils.Success("Search completed!")
}

// saveResults runs every sink. A failing sink is logged and never stops the
// run; the return value reports whether the JSON file was written.
func saveResults(cfg *config.Config, results models.SearchResults) bool {
	written := true
	if err := storage.NewJSONWriter(cfg.OutputPath).Write(results); err != nil {
		utils.Error("Error saving results: %v", err)
		written = false
	}

	if cfg.PostgresEnabled() {
		mirrorToPostgres(cfg, results)
	}
	return written
}

// mirrorToPostgres is best effort; failures are logged and the run goes on.
func mirrorToPostgres(cfg *config.Config, results models.SearchResults) {
	pgWriter, err := storage.NewPostgresWriter(cfg.PostgresDSN)
	if err != nil {
		utils.Error("Failed to connect PostgreSQL: %v", err)
		return
	}
	defer pgWriter.Close()

	if err := pgWriter.EnsureSchema(); err != nil {
		utils.Error("Failed to ensure PostgreSQL schema: %v", err)
		return
	}

	if err := pgWriter.WriteBatch(results); err != nil {
		utils.Error("Failed to save listings to PostgreSQL: %v", err)
		return
	}
	utils.Success("Mirrored %d listings to PostgreSQL", results.TotalResults)
}

func printSummary(w io.Writer, results models.SearchResults, path string, written bool) {
	output := path
	if !written {
		output = "not written"
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "╔══════════════════════════════════════════════╗")
	fmt.Fprintln(w, "║                SEARCH COMPLETE               ║")
	fmt.Fprintln(w, "╠══════════════════════════════════════════════╣")
	fmt.Fprintf(w, "║  Query          : %-26s ║\n", results.SearchQuery)
	fmt.Fprintf(w, "║  Total listings : %-26d ║\n", results.TotalResults)
	fmt.Fprintf(w, "║  Output file    : %-26s ║\n", output)
	fmt.Fprintln(w, "╚══════════════════════════════════════════════╝")
	fmt.Fprintln(w)
}
