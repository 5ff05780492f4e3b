package main

import (
	"bytes"
	"encoding/json"
	"olx-scraper/config"
	"olx-scraper/models"
	"olx-scraper/utils"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureLog(t *testing.T) *bytes.Buffer {
	var buf bytes.Buffer
	utils.SetOutput(&buf)
	t.Cleanup(func() { utils.SetOutput(os.Stdout) })
	return &buf
}

func testResults() models.SearchResults {
	return models.NewSearchResults("Car Cover", []models.Listing{
		{Title: "Car Cover 1", Price: "N/A", Location: "N/A", Link: "N/A", SearchDate: "2026-10-19 09:30:15"},
	})
}

func TestSaveResultsWritesFile(t *testing.T) {
	logs := captureLog(t)
	cfg := config.DefaultConfig()
	cfg.OutputPath = filepath.Join(t.TempDir(), "car_cover_search_results.json")

	require.True(t, saveResults(cfg, testResults()))

	data, err := os.ReadFile(cfg.OutputPath)
	require.NoError(t, err)
	var got models.SearchResults
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, 1, got.TotalResults)
	assert.Contains(t, logs.String(), "Results saved to")
}

func TestSaveResultsWriteFailureIsLogged(t *testing.T) {
	logs := captureLog(t)
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))

	cfg := config.DefaultConfig()
	cfg.OutputPath = filepath.Join(blocker, "car_cover_search_results.json")

	assert.False(t, saveResults(cfg, testResults()))
	assert.Contains(t, logs.String(), "[ERROR] Error saving results:")
}

func TestPrintSummaryReportsMissingFile(t *testing.T) {
	var buf bytes.Buffer

	printSummary(&buf, testResults(), "car_cover_search_results.json", false)
	assert.Contains(t, buf.String(), "Output file    : not written")
	assert.NotContains(t, buf.String(), "car_cover_search_results.json")

	buf.Reset()
	printSummary(&buf, testResults(), "car_cover_search_results.json", true)
	assert.Contains(t, buf.String(), "Output file    : car_cover_search_results.json")
}
