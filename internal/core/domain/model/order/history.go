package order

import "time"

// HistoryEntry records one status the order held.
type HistoryEntry struct {
	Status    Status
	Label     string
	ChangedAt time.Time
}
