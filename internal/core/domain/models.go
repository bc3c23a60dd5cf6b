package domain

import (
	"fmt"
	"time"
)

// DefaultBatchSize is the number of videos stored together in one batch directory.
const DefaultBatchSize = 100

// Run identifies a single discovery-and-download run.
type Run struct {
	ID         string    `json:"run_id"`
	ChannelURL string    `json:"channel_url"`
	ListingURL string    `json:"listing_url"`
	CreatedAt  time.Time `json:"created_at"`
}

// VideoRecord is one discovered short video. The URL is the uniqueness key.
type VideoRecord struct {
	URL         string `json:"url"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// StatusEntry tracks the download outcome of one video across the run.
type StatusEntry struct {
	URL    string `json:"url"`
	Title  string `json:"title"`
	Status Status `json:"status"`
}

// Batch is a contiguous window of records processed and stored together.
type Batch struct {
	Index     int // 1-based
	Total     int // number of batches in the run
	Records   []VideoRecord
	OutputDir string
}

// Label returns the human readable position of the batch, e.g. "Batch 2/5".
func (b Batch) Label() string {
	return fmt.Sprintf("Batch %d/%d", b.Index, b.Total)
}

// URLs returns the record URLs in batch order.
func (b Batch) URLs() []string {
	urls := make([]string, len(b.Records))
	for i, r := range b.Records {
		urls[i] = r.URL
	}
	return urls
}

// BatchDirName is the directory name used for batch n.
func BatchDirName(n int) string {
	return fmt.Sprintf("Batch_%d", n)
}

// RunResult holds the outcome of a completed, cancelled or failed run.
type RunResult struct {
	Run          Run
	State        State
	States       []State // every state visited, in order
	Discovered   int
	Records      int
	Batches      int
	Failed       []string
	Entries      []StatusEntry
	StatusPath   string
	ErrorMessage string
	CompletedAt  time.Time
}
