package utils

const (
	DefaultLimit = 25
	MaxLimit     = 50
)

// ClampLimit keeps a page size inside [1, MaxLimit], falling back to
// DefaultLimit for non-positive values.
func ClampLimit(limit int) int {
	if limit < 1 {
		return DefaultLimit
	}
	if limit > MaxLimit {
		return MaxLimit
	}
	return limit
}

func ClampOffset(offset int) int {
	if offset < 0 {
		return 0
	}
	return offset
}
