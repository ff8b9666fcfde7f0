package engine

import "expview/internal/domain"

// ComputeStats counts the records and how many fail in the default and strict modes
func ComputeStats(records []domain.TestRecord) domain.Stats {
	stats := domain.Stats{Total: len(records)}
	for _, record := range records {
		if record.HasMode(domain.ModeDefault) {
			stats.DefaultModeCount++
		}
		if record.HasMode(domain.ModeStrict) {
			stats.StrictModeCount++
		}
	}
	return stats
}
