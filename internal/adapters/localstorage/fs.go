package localstorage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"shortsbatcher/internal/core/domain"
)

const (
	errorsDirName      = "batching_error"
	errorFileName      = "error.txt"
	statusSuffix       = "_shorts_download_status"
	defaultStatusName  = "shorts_download_status"
	metadataNameFormat = "shorts_metadata_batch_%d"
)

// LocalStorage implements ports.Storage for the local filesystem.
type LocalStorage struct {
	BaseDir string
}

// NewLocalStorage creates a new LocalStorage instance.
func NewLocalStorage(baseDir string) *LocalStorage {
	return &LocalStorage{BaseDir: baseDir}
}

// InitRoot creates the output directory.
func (s *LocalStorage) InitRoot(ctx context.Context) error {
	if err := os.MkdirAll(s.BaseDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", s.BaseDir, err)
	}
	return nil
}

// InitBatch creates the batch directory.
func (s *LocalStorage) InitBatch(ctx context.Context, batch domain.Batch) error {
	if err := os.MkdirAll(batch.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create batch directory %s: %w", batch.OutputDir, err)
	}
	return nil
}

// SaveFailedURLs writes urls, one per line, to
// batching_error/Batch_<n>_Errors/error.txt and returns its path.
func (s *LocalStorage) SaveFailedURLs(ctx context.Context, batchIndex int, urls []string) (string, error) {
	dir := filepath.Join(s.BaseDir, errorsDirName, domain.BatchDirName(batchIndex)+"_Errors")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create error directory %s: %w", dir, err)
	}

	path := filepath.Join(dir, errorFileName)
	data := strings.Join(urls, "\n") + "\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		return "", fmt.Errorf("failed to save %s: %w", path, err)
	}
	return path, nil
}

// MetadataPath returns the batch metadata export path inside the batch directory.
func (s *LocalStorage) MetadataPath(batch domain.Batch, ext string) string {
	return filepath.Join(batch.OutputDir, fmt.Sprintf(metadataNameFormat, batch.Index)+ext)
}

// StatusPath returns the run level status export path for the channel.
func (s *LocalStorage) StatusPath(channelName, ext string) string {
	name := defaultStatusName
	if safe := SafeChannelName(channelName); safe != "" {
		name = safe + statusSuffix
	}
	return filepath.Join(s.BaseDir, name+ext)
}

// keepRune reports whether r may appear in a file name derived from a channel.
func keepRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == ' ' || r == '.' || r == '_'
}

// SafeChannelName strips everything but letters, digits, spaces, dots and
// underscores from name, after NFC normalization.
func SafeChannelName(name string) string {
	t := transform.Chain(norm.NFC, runes.Remove(runes.Predicate(func(r rune) bool {
		return !keepRune(r)
	})))
	out, _, err := transform.String(t, name)
	if err != nil {
		return ""
	}
	return strings.TrimRight(out, " ")
}
