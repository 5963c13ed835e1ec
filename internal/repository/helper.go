package repository

const (
	DefaultLimit  = 20
	DefaultOffset = 0
	MaxLimit      = 100
)

// CoercePage normalizes limit/offset to usable values instead of
// rejecting them: a non-positive or oversized limit falls back to
// DefaultLimit, a negative offset to DefaultOffset.
func CoercePage(limit, offset int) (int, int) {
	if limit <= 0 || limit > MaxLimit {
		limit = DefaultLimit
	}
	if offset < 0 {
		offset = DefaultOffset
	}
	return limit, offset
}
