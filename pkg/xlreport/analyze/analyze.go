// Package analyze computes summary statistics, top-N rankings and
// month-bucketed trend figures from a dataset. All functions are pure:
// missing columns yield empty or partial results, never errors.
package analyze

import (
	"sort"
	"time"

	"github.com/montanaflynn/stats"

	"github.com/reportforge/xlreport/pkg/xlreport/models"
)

// Describe returns dataset-level summary statistics. The date range is
// taken from dateColumn and omitted when the column is missing or the
// dataset is empty. Descriptive statistics cover every numeric column,
// in declared column order.
func Describe(ds *models.Dataset, dateColumn string) models.SummaryStats {
	summary := models.SummaryStats{TotalRecords: len(ds.Rows)}

	if values, ok := ds.Column(dateColumn); ok {
		summary.DateRange = dateRange(values)
	}

	for _, col := range ds.Columns {
		values, _ := ds.Column(col)
		nums, numeric := numericColumn(values)
		if !numeric {
			continue
		}
		summary.Numeric = append(summary.Numeric, describeColumn(col, nums))
	}

	return summary
}

// TopPerformers groups rows by groupColumn, sums valueColumn per group
// and returns the top n groups by descending sum. Ties keep the
// first-encountered group first. The result is empty when either column
// is absent.
func TopPerformers(ds *models.Dataset, groupColumn, valueColumn string, n int) models.Ranking {
	groupIdx := ds.ColumnIndex(groupColumn)
	valueIdx := ds.ColumnIndex(valueColumn)
	if groupIdx < 0 || valueIdx < 0 || n <= 0 {
		return nil
	}

	sums := make(map[string]float64)
	order := make([]string, 0)
	for _, row := range ds.Rows {
		key := models.String(row[groupIdx])
		if _, seen := sums[key]; !seen {
			order = append(order, key)
		}
		if v, ok := models.Float(row[valueIdx]); ok {
			sums[key] += v
		}
	}

	ranking := make(models.Ranking, 0, len(order))
	for _, key := range order {
		ranking = append(ranking, models.RankingEntry{Key: key, Value: sums[key]})
	}
	sort.SliceStable(ranking, func(i, j int) bool { return ranking[i].Value > ranking[j].Value })

	if len(ranking) > n {
		ranking = ranking[:n]
	}
	return ranking
}

// Trend buckets rows into calendar months by dateColumn, sums
// valueColumn per month in chronological order, and computes the
// percent change from the immediately preceding bucket. Growth is nil
// for the first bucket and after a zero-sum predecessor. Rows whose
// date cell is not a date are skipped. The result is empty when either
// column is absent.
func Trend(ds *models.Dataset, dateColumn, valueColumn string) []models.TrendPoint {
	dateIdx := ds.ColumnIndex(dateColumn)
	valueIdx := ds.ColumnIndex(valueColumn)
	if dateIdx < 0 || valueIdx < 0 {
		return nil
	}

	buckets := make(map[time.Time]float64)
	for _, row := range ds.Rows {
		t, ok := models.Time(row[dateIdx])
		if !ok {
			continue
		}
		month := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
		v, _ := models.Float(row[valueIdx])
		buckets[month] += v
	}

	periods := make([]time.Time, 0, len(buckets))
	for month := range buckets {
		periods = append(periods, month)
	}
	sort.Slice(periods, func(i, j int) bool { return periods[i].Before(periods[j]) })

	points := make([]models.TrendPoint, 0, len(periods))
	for i, period := range periods {
		point := models.TrendPoint{
			Period: period,
			Label:  period.Format("2006-01"),
			Value:  buckets[period],
		}
		if i > 0 {
			prev := buckets[periods[i-1]]
			if prev != 0 {
				growth := (point.Value - prev) / prev * 100
				point.Growth = &growth
			}
		}
		points = append(points, point)
	}
	return points
}

// numericColumn converts a column to float64 values. A column counts as
// numeric when it holds at least one numeric cell and no non-numeric,
// non-nil cells.
func numericColumn(values []any) ([]float64, bool) {
	nums := make([]float64, 0, len(values))
	for _, v := range values {
		if v == nil {
			continue
		}
		f, ok := models.Float(v)
		if !ok {
			return nil, false
		}
		nums = append(nums, f)
	}
	return nums, len(nums) > 0
}

func describeColumn(name string, nums []float64) models.ColumnStats {
	cs := models.ColumnStats{Column: name, Count: len(nums)}

	data := stats.Float64Data(nums)
	cs.Mean, _ = stats.Mean(data)
	cs.Min, _ = stats.Min(data)
	cs.Max, _ = stats.Max(data)
	cs.Median, _ = stats.Median(data)
	if len(nums) > 1 {
		cs.Std, _ = stats.StandardDeviationSample(data)
	}
	if q, err := stats.Quartile(data); err == nil {
		cs.Q1 = q.Q1
		cs.Median = q.Q2
		cs.Q3 = q.Q3
	} else {
		// single-value columns: quartiles collapse onto the median
		cs.Q1, cs.Q3 = cs.Median, cs.Median
	}
	return cs
}

func dateRange(values []any) *models.DateRange {
	var dr *models.DateRange
	for _, v := range values {
		t, ok := models.Time(v)
		if !ok {
			continue
		}
		if dr == nil {
			dr = &models.DateRange{Start: t, End: t}
			continue
		}
		if t.Before(dr.Start) {
			dr.Start = t
		}
		if t.After(dr.End) {
			dr.End = t
		}
	}
	return dr
}
