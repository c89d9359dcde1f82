package models

import "time"

// DateRange is the min/max of a dataset's date column.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// ColumnStats holds descriptive statistics for one numeric column.
type ColumnStats struct {
	// Column is the column name.
	Column string
	// Count is the number of numeric values observed.
	Count int
	Mean  float64
	// Std is the sample standard deviation (zero for fewer than two
	// values).
	Std    float64
	Min    float64
	Q1     float64
	Median float64
	Q3     float64
	Max    float64
}

// SummaryStats aggregates dataset-level metadata for the executive
// summary.
type SummaryStats struct {
	// TotalRecords is the dataset row count.
	TotalRecords int
	// DateRange is nil when the date column is missing or the dataset
	// is empty.
	DateRange *DateRange
	// Numeric holds per-column statistics in dataset column order.
	// Empty when no numeric columns exist.
	Numeric []ColumnStats
}

// RankingEntry is one (group key, aggregated value) pair.
type RankingEntry struct {
	Key   string
	Value float64
}

// Ranking is a top-N result: entries sorted descending by value, ties
// broken by first-encountered group key.
type Ranking []RankingEntry

// TrendPoint is one calendar-month bucket of a trend analysis.
type TrendPoint struct {
	// Period is the first day of the bucket month.
	Period time.Time
	// Label is the period formatted as "2006-01".
	Label string
	// Value is the bucket sum.
	Value float64
	// Growth is the percent change from the previous bucket, nil for
	// the first bucket and when the previous bucket sums to zero.
	Growth *float64
}
