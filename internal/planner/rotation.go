package planner

// RotationSlice picks up to k consecutive pool entries for the given workday
// (1-based), starting at ((day-1)*k) mod len(pool) and wrapping around. The
// start offset advances with the day index, so successive days walk through
// the whole pool instead of re-reading its head. The result is fully
// determined by pool order and day; no cursor state survives a run.
func RotationSlice[T any](pool []T, day, k int) []T {
	n := len(pool)
	if n == 0 || k <= 0 {
		return nil
	}
	if k > n {
		k = n
	}
	start := ((day - 1) * k) % n
	out := make([]T, 0, k)
	for i := 0; i < k; i++ {
		out = append(out, pool[(start+i)%n])
	}
	return out
}
