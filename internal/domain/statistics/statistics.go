// Package statistics computes descriptive statistics over a snapshot of
// account balances. Everything here is a pure function of its input.
package statistics

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"sort"
	"time"

	"bank-account-api/pkg/money"
)

const (
	MinLimit     = 1
	MaxLimit     = 100
	DefaultLimit = 5
)

var ErrLimitOutOfRange = errors.New("limit out of range")

// Holding is one account as seen by the engine.
type Holding struct {
	Holder  string
	Balance float64
}

type Percentiles struct {
	P25 float64 `json:"p25"`
	P50 float64 `json:"p50"`
	P75 float64 `json:"p75"`
	P90 float64 `json:"p90"`
	P99 float64 `json:"p99"`
}

// Overview fields that have no meaning for an empty snapshot are nil.
type Overview struct {
	TotalAccounts     int          `json:"totalAccounts"`
	TotalBalance      float64      `json:"totalBalance"`
	AverageBalance    float64      `json:"averageBalance"`
	MinBalance        *float64     `json:"minBalance"`
	MaxBalance        *float64     `json:"maxBalance"`
	MedianBalance     *float64     `json:"medianBalance"`
	StandardDeviation *float64     `json:"standardDeviation"`
	Percentiles       *Percentiles `json:"percentiles"`
}

type Bucket struct {
	Range      string  `json:"range"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

type HolderStats struct {
	HolderName     string  `json:"holderName"`
	AccountCount   int     `json:"accountCount"`
	TotalBalance   float64 `json:"totalBalance"`
	AverageBalance float64 `json:"averageBalance"`
}

type Summary struct {
	Overview     Overview      `json:"overview"`
	Distribution []Bucket      `json:"distribution"`
	TopHolders   []HolderStats `json:"topHolders"`
	GeneratedAt  time.Time     `json:"generatedAt"`
}

// Balances extracts the balance column.
func Balances(hs []Holding) []float64 {
	out := make([]float64, len(hs))
	for i, h := range hs {
		out[i] = h.Balance
	}
	return out
}

func Compute(balances []float64) Overview {
	n := len(balances)
	if n == 0 {
		return Overview{}
	}
	sorted := slices.Clone(balances)
	slices.Sort(sorted)

	total := money.Sum(balances...)
	mean := total / float64(n)
	median := Median(sorted)
	sd := StdDev(balances, mean)
	return Overview{
		TotalAccounts:     n,
		TotalBalance:      total,
		AverageBalance:    mean,
		MinBalance:        &sorted[0],
		MaxBalance:        &sorted[n-1],
		MedianBalance:     &median,
		StandardDeviation: &sd,
		Percentiles: &Percentiles{
			P25: Percentile(sorted, 25),
			P50: Percentile(sorted, 50),
			P75: Percentile(sorted, 75),
			P90: Percentile(sorted, 90),
			P99: Percentile(sorted, 99),
		},
	}
}

// Median expects sorted input with at least one element.
func Median(sorted []float64) float64 {
	mid := len(sorted) / 2
	if len(sorted)%2 != 0 {
		return sorted[mid]
	}
	return (sorted[mid-1] + sorted[mid]) / 2
}

// StdDev is the population standard deviation around mean.
func StdDev(values []float64, mean float64) float64 {
	var sq float64
	for _, v := range values {
		d := v - mean
		sq += d * d
	}
	return math.Sqrt(sq / float64(len(values)))
}

// Percentile interpolates linearly between the closest ranks of sorted.
func Percentile(sorted []float64, p float64) float64 {
	idx := p / 100 * float64(len(sorted)-1)
	lo, hi := math.Floor(idx), math.Ceil(idx)
	if lo == hi {
		return sorted[int(lo)]
	}
	l, h := sorted[int(lo)], sorted[int(hi)]
	return l + (h-l)*(idx-lo)
}

var buckets = []struct {
	min, max float64
	label    string
}{
	{0, 1000, "$0 - $1,000"},
	{1000, 5000, "$1,000 - $5,000"},
	{5000, 10000, "$5,000 - $10,000"},
	{10000, math.Inf(1), "$10,000+"},
}

// Distribution counts balances per half-open bucket. Negative balances fall
// in no bucket.
func Distribution(balances []float64) []Bucket {
	out := []Bucket{}
	if len(balances) == 0 {
		return out
	}
	for _, b := range buckets {
		count := 0
		for _, v := range balances {
			if v >= b.min && v < b.max {
				count++
			}
		}
		out = append(out, Bucket{
			Range:      b.label,
			Count:      count,
			Percentage: money.Round2(float64(count) / float64(len(balances)) * 100),
		})
	}
	return out
}

// TopHolders groups holdings by exact holder name and ranks them by total
// balance, descending. Holders with equal totals keep first-seen order.
func TopHolders(hs []Holding, limit int) ([]HolderStats, error) {
	if limit < MinLimit || limit > MaxLimit {
		return nil, fmt.Errorf("%w: limit must be between %d and %d", ErrLimitOutOfRange, MinLimit, MaxLimit)
	}
	index := map[string]int{}
	var groups []HolderStats
	for _, h := range hs {
		i, ok := index[h.Holder]
		if !ok {
			i = len(groups)
			index[h.Holder] = i
			groups = append(groups, HolderStats{HolderName: h.Holder})
		}
		groups[i].AccountCount++
		groups[i].TotalBalance = money.Add(groups[i].TotalBalance, h.Balance)
	}
	for i := range groups {
		groups[i].AverageBalance = groups[i].TotalBalance / float64(groups[i].AccountCount)
	}
	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].TotalBalance > groups[j].TotalBalance
	})
	if len(groups) > limit {
		groups = groups[:limit]
	}
	if groups == nil {
		groups = []HolderStats{}
	}
	return groups, nil
}

func Summarize(hs []Holding, now time.Time) Summary {
	balances := Balances(hs)
	top, _ := TopHolders(hs, DefaultLimit)
	return Summary{
		Overview:     Compute(balances),
		Distribution: Distribution(balances),
		TopHolders:   top,
		GeneratedAt:  now.UTC(),
	}
}
