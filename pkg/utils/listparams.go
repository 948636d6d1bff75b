package utils

const (
	// DefaultLimit is the page size used when the caller does not supply one
	DefaultLimit = 20
	// DefaultOffset is used when the caller does not supply an offset
	DefaultOffset = 0
)

// NormalizeListParams applies the default limit/offset for list queries
func NormalizeListParams(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if offset < 0 {
		offset = DefaultOffset
	}
	return limit, offset
}
