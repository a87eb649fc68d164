package controller

import (
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/jbeshir/dream-journal/internal/command"
)

const (
	defaultPage     = 1
	defaultPageSize = 50
	maxPageSize     = 200
)

// intParam reads an optional integer query parameter, which must lie in
// [lo, hi] when present.
func intParam(q url.Values, name string, lo, hi int64) (v int, present bool, err error) {
	if !q.Has(name) {
		return 0, false, nil
	}
	n, err := strconv.ParseInt(q.Get(name), 10, 32)
	if err != nil {
		return 0, true, fmt.Errorf("unable to parse %s from query: %w", name, err)
	}
	if n < lo || n > hi {
		return 0, true, fmt.Errorf("%s [%d] out of range [%d, %d]", name, n, lo, hi)
	}
	return int(n), true, nil
}

func parsePagination(q url.Values) (page, pageSize int, err error) {
	page, pageSize = defaultPage, defaultPageSize

	if p, ok, err := intParam(q, "page", 1, 1<<31-1); err != nil {
		return 0, 0, err
	} else if ok {
		page = p
	}

	if ps, ok, err := intParam(q, "page_size", 1, maxPageSize); err != nil {
		return 0, 0, err
	} else if ok {
		pageSize = ps
	}

	return page, pageSize, nil
}

// parseLimit reads ?limit=. Zero means the command default.
func parseLimit(q url.Values) (int, error) {
	limit, _, err := intParam(q, "limit", 1, command.MaxSimilarDreamsLimit)
	return limit, err
}

// locationFromQuery reads the IANA zone in ?tz=, falling back to def.
func locationFromQuery(q url.Values, def *time.Location) (*time.Location, error) {
	if q.Get("tz") == "" {
		if def == nil {
			return time.UTC, nil
		}
		return def, nil
	}
	return time.LoadLocation(q.Get("tz"))
}
