package service

import (
	"errors"
	"fmt"

	"shortsbatcher/internal/core/domain"
)

// ErrInvalidTransition is returned when an entry is moved out of a terminal
// status or into a non-terminal one.
var ErrInvalidTransition = errors.New("invalid status transition")

// Ledger maps every video of a run to its download status, in record order.
// It is owned by the worker running the pipeline and is not synchronized.
type Ledger struct {
	order   []string
	entries map[string]*domain.StatusEntry
}

// NewLedger creates one Pending entry per record.
func NewLedger(records []domain.VideoRecord) *Ledger {
	l := &Ledger{
		order:   make([]string, 0, len(records)),
		entries: make(map[string]*domain.StatusEntry, len(records)),
	}
	for _, r := range records {
		l.Ensure(r.URL, r.Title)
	}
	return l
}

// Ensure returns the entry for url, creating a Pending one if needed.
func (l *Ledger) Ensure(url, title string) domain.StatusEntry {
	if e, ok := l.entries[url]; ok {
		return *e
	}
	e := &domain.StatusEntry{URL: url, Title: title, Status: domain.StatusPending}
	l.entries[url] = e
	l.order = append(l.order, url)
	return *e
}

// Mark records the final status of url.
func (l *Ledger) Mark(url string, status domain.Status) error {
	e, ok := l.entries[url]
	if !ok {
		return fmt.Errorf("mark %s: not in ledger", url)
	}
	if !e.Status.CanTransitionTo(status) {
		return fmt.Errorf("mark %s %s -> %s: %w", url, e.Status, status, ErrInvalidTransition)
	}
	e.Status = status
	return nil
}

// Get returns the entry for url.
func (l *Ledger) Get(url string) (domain.StatusEntry, bool) {
	e, ok := l.entries[url]
	if !ok {
		return domain.StatusEntry{}, false
	}
	return *e, true
}

// Entries returns a copy of every entry in insertion order.
func (l *Ledger) Entries() []domain.StatusEntry {
	out := make([]domain.StatusEntry, len(l.order))
	for i, url := range l.order {
		out[i] = *l.entries[url]
	}
	return out
}

// Counts tallies entries by status.
func (l *Ledger) Counts() map[domain.Status]int {
	counts := make(map[domain.Status]int)
	for _, e := range l.entries {
		counts[e.Status]++
	}
	return counts
}

// Len returns the number of entries.
func (l *Ledger) Len() int {
	return len(l.order)
}
