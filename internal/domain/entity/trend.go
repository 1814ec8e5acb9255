// Package entity defines the core business entities for the domain layer.
package entity

import (
	"math"
	"time"

	"github.com/shopspring/decimal"
)

// RangeSelector represents a relative date window recomputed on each evaluation.
type RangeSelector string

const (
	RangeLast7Days   RangeSelector = "7d"
	RangeLast30Days  RangeSelector = "30d"
	RangeLast90Days  RangeSelector = "90d"
	RangeMonthToDate RangeSelector = "mtd"
	RangeYearToDate  RangeSelector = "ytd"
)

// IsValid returns true if the selector is one of the supported values.
func (s RangeSelector) IsValid() bool {
	switch s {
	case RangeLast7Days, RangeLast30Days, RangeLast90Days, RangeMonthToDate, RangeYearToDate:
		return true
	}
	return false
}

// ComparisonMode represents the policy for choosing the prior period.
type ComparisonMode string

const (
	// ComparisonMonthOverMonth compares against the immediately-preceding
	// window of identical length.
	ComparisonMonthOverMonth ComparisonMode = "mom"

	// ComparisonYearOverYear compares against the same window one calendar
	// year earlier.
	ComparisonYearOverYear ComparisonMode = "yoy"
)

// IsValid returns true if the comparison mode is supported.
func (m ComparisonMode) IsValid() bool {
	return m == ComparisonMonthOverMonth || m == ComparisonYearOverYear
}

// Metric represents the measurable quantity a chart is built over.
type Metric string

const (
	MetricRevenue      Metric = "revenue"
	MetricTransactions Metric = "transactions"
	MetricAppointments Metric = "appointments"
)

// DateRange represents an inclusive calendar date range.
type DateRange struct {
	From time.Time
	To   time.Time
}

// Days returns the inclusive length of the range in days. Rounding absorbs
// DST offsets when the bounds are local midnights.
func (r DateRange) Days() int {
	return int(math.Round(r.To.Sub(r.From).Hours()/24)) + 1
}

// DailyRecord represents one calendar day of sales activity. Series may be
// sparse: days with no activity are simply absent.
type DailyRecord struct {
	Date         time.Time
	Revenue      decimal.Decimal
	Transactions int
}

// MetricValue returns the record's value for the given metric.
func (r DailyRecord) MetricValue(metric Metric) decimal.Decimal {
	if metric == MetricTransactions {
		return decimal.NewFromInt(int64(r.Transactions))
	}
	return r.Revenue
}

// ComparisonPoint pairs one day of the current series with the same relative
// day of the prior series. Derived fresh on every recomputation; never mutated.
type ComparisonPoint struct {
	DayIndex     int
	Label        string
	CurrentValue decimal.Decimal
	PriorValue   decimal.Decimal
	CurrentDate  *time.Time
	PriorDate    *time.Time
}

// ComparisonMetrics holds the aggregate figures derived from aligned points.
type ComparisonMetrics struct {
	CurrentTotal        decimal.Decimal
	PriorTotal          decimal.Decimal
	CurrentDailyAverage decimal.Decimal
	PriorDailyAverage   decimal.Decimal
	PercentChange       decimal.Decimal
}
