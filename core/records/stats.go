package records

import "math"

// Number is any numeric field a record can be aggregated on.
type Number interface {
	~int | ~int32 | ~int64 | ~float32 | ~float64
}

// Count returns how many items match pred.
func Count[T any](items []T, pred func(T) bool) int {
	var n int
	for _, item := range items {
		if pred(item) {
			n++
		}
	}
	return n
}

// Sum adds up field over items.
func Sum[T any, N Number](items []T, field func(T) N) N {
	var total N
	for _, item := range items {
		total += field(item)
	}
	return total
}

// Average is the mean of field over items, 0 for an empty collection.
func Average[T any, N Number](items []T, field func(T) N) float64 {
	if len(items) == 0 {
		return 0
	}
	return float64(Sum(items, field)) / float64(len(items))
}

// RoundedAverage is Average rounded half away from zero.
func RoundedAverage[T any, N Number](items []T, field func(T) N) int {
	return int(math.Round(Average(items, field)))
}

// Percentage is round(100 * current / target); it is not clamped and is 0 when target <= 0.
func Percentage(current, target int) int {
	if target <= 0 {
		return 0
	}
	return int(math.Round(100 * float64(current) / float64(target)))
}

// ProgressWidth clamps a percentage to the [0, 100] fill width of a progress bar.
func ProgressWidth(pct int) int {
	if pct > 100 {
		return 100
	}
	if pct < 0 {
		return 0
	}
	return pct
}

// Unique counts the distinct values of key (exact string equality).
func Unique[T any](items []T, key func(T) string) int {
	seen := make(map[string]struct{}, len(items))
	for _, item := range items {
		seen[key(item)] = struct{}{}
	}
	return len(seen)
}
