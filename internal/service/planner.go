package service

import (
	"path/filepath"

	"shortsbatcher/internal/core/domain"
)

// PlanBatches partitions records into contiguous windows of at most size
// records, in order. Batch n is stored under root/Batch_n. Empty input
// yields no batches.
func PlanBatches(records []domain.VideoRecord, size int, root string) []domain.Batch {
	if size <= 0 {
		size = domain.DefaultBatchSize
	}
	total := (len(records) + size - 1) / size
	batches := make([]domain.Batch, 0, total)
	for i := 0; i < total; i++ {
		start := i * size
		end := min(start+size, len(records))
		batches = append(batches, domain.Batch{
			Index:     i + 1,
			Total:     total,
			Records:   records[start:end:end],
			OutputDir: filepath.Join(root, domain.BatchDirName(i+1)),
		})
	}
	return batches
}
