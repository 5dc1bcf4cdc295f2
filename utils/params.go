package utils

import (
	"net/http"
	"strconv"
	"strings"
)

// ParsePagination reads page and limit from the query string. Absent or
// unparsable values coerce to page 1 and defaultLimit; no upper bound is
// enforced on limit.
func ParsePagination(r *http.Request, defaultLimit int64) (page, limit, skip int64) {
	q := r.URL.Query()

	page, _ = strconv.ParseInt(q.Get("page"), 10, 64)
	if page < 1 {
		page = 1
	}

	limit, _ = strconv.ParseInt(q.Get("limit"), 10, 64)
	if limit < 1 {
		limit = defaultLimit
	}

	skip = (page - 1) * limit
	return page, limit, skip
}

func ContainsIgnoreCase(str, substr string) bool {
	return strings.Contains(strings.ToLower(str), strings.ToLower(substr))
}
