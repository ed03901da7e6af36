// Package schedule models the restaurant's weekly opening hours: one
// OpeningSchedule per day of week, each with optional opening and closing
// times and an open flag that can close a day even when times are set.
//
// The schedule is maintained by administrators; the order core only reads it.
package schedule
