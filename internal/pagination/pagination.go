// Package pagination parses page/limit query parameters.
package pagination

import (
	"net/url"
	"strconv"
)

const (
	DefaultLimit = 6
	MaxLimit     = 100
)

type Page struct {
	Number int32
	Limit  int32
}

// Parse reads "page" (1-based) and "limit" from q. Missing or malformed
// values fall back to page 1 and defaultLimit; limit is capped at MaxLimit.
func Parse(q url.Values, defaultLimit int32) Page {
	p := Page{Number: 1, Limit: defaultLimit}
	if v, err := strconv.ParseInt(q.Get("page"), 10, 32); err == nil && v > 0 {
		p.Number = int32(v)
	}
	if v, err := strconv.ParseInt(q.Get("limit"), 10, 32); err == nil && v > 0 {
		p.Limit = int32(min(v, MaxLimit))
	}
	return p
}

func (p Page) Offset() int32 {
	return (p.Number - 1) * p.Limit
}
