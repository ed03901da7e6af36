package ports

import "time"

// Clock supplies the current time. Every timestamp written by the core comes from it.
type Clock interface {
	Now() time.Time
}
