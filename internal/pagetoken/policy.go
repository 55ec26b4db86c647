package pagetoken

import "fmt"

const (
	DefaultPageSize = 100
	MaxPageSize     = 1000
)

// Policy clamps requested page sizes.
type Policy struct {
	Default int
	Max     int
}

// DefaultPolicy is 100 rows per page by default, at most 1000.
var DefaultPolicy = Policy{Default: DefaultPageSize, Max: MaxPageSize}

// NewPolicy validates 1 <= def <= max.
func NewPolicy(def, max int) (Policy, error) {
	if def < 1 || def > max {
		return Policy{}, fmt.Errorf("invalid page size policy: default %d, max %d", def, max)
	}
	return Policy{Default: def, Max: max}, nil
}

// Clamp maps a requested size to the number of rows to fetch: zero or
// negative selects the default, anything above the maximum is capped.
func (p Policy) Clamp(requested int32) int {
	switch {
	case requested <= 0:
		return p.Default
	case int(requested) > p.Max:
		return p.Max
	}
	return int(requested)
}

// Next returns the continuation token for a page fetched with limit rows.
// A short page is the last one and gets an empty token; a full page gets a
// token built from its last item.
func Next[T any](c *Codec, page []T, limit int, cursor func(last T) Record) (string, error) {
	if len(page) == 0 || len(page) < limit {
		return "", nil
	}
	return c.Encode(cursor(page[len(page)-1]))
}
