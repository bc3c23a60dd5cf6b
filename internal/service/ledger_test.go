package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shortsbatcher/internal/core/domain"
)

func TestLedger_StartsPendingInOrder(t *testing.T) {
	records := makeRecords(3)
	l := NewLedger(records)

	entries := l.Entries()
	require.Len(t, entries, 3)
	for i, e := range entries {
		assert.Equal(t, records[i].URL, e.URL)
		assert.Equal(t, records[i].Title, e.Title)
		assert.Equal(t, domain.StatusPending, e.Status)
	}
	assert.Equal(t, map[domain.Status]int{domain.StatusPending: 3}, l.Counts())
}

func TestLedger_MarkOnce(t *testing.T) {
	records := makeRecords(1)
	l := NewLedger(records)
	url := records[0].URL

	require.NoError(t, l.Mark(url, domain.StatusDownloaded))
	err := l.Mark(url, domain.StatusError)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	e, ok := l.Get(url)
	require.True(t, ok)
	assert.Equal(t, domain.StatusDownloaded, e.Status)
}

func TestLedger_MarkRejectsPending(t *testing.T) {
	records := makeRecords(1)
	l := NewLedger(records)

	assert.ErrorIs(t, l.Mark(records[0].URL, domain.StatusPending), ErrInvalidTransition)
}

func TestLedger_MarkUnknown(t *testing.T) {
	l := NewLedger(nil)
	assert.Error(t, l.Mark("https://www.youtube.com/shorts/nope", domain.StatusDownloaded))
}

func TestLedger_EnsureUpserts(t *testing.T) {
	records := makeRecords(1)
	l := NewLedger(records)

	e := l.Ensure(records[0].URL, "other title")
	assert.Equal(t, records[0].Title, e.Title, "existing entry is kept")

	added := l.Ensure(ShortURL("extra"), "Extra")
	assert.Equal(t, domain.StatusPending, added.Status)
	assert.Equal(t, 2, l.Len())
	assert.Equal(t, ShortURL("extra"), l.Entries()[1].URL)
}

func TestLedger_EntriesIsCopy(t *testing.T) {
	records := makeRecords(1)
	l := NewLedger(records)

	entries := l.Entries()
	entries[0].Status = domain.StatusDownloaded

	e, _ := l.Get(records[0].URL)
	assert.Equal(t, domain.StatusPending, e.Status)
}
