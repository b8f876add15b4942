// Package pagination implements opaque-cursor paging over id-ordered
// result sets.
package pagination

import (
	"encoding/base64"
	"strconv"
)

const (
	defaultPageSize = 50
	maxPageSize     = 250
)

// Pagination binds the cursor query parameters. A request without either
// parameter gets the full, unpaged result set.
type Pagination struct {
	PageToken string `form:"page_token"`
	PageSize  int    `form:"page_size"`
}

// Requested reports whether the caller asked for a paged response.
func (p Pagination) Requested() bool {
	return p.PageToken != "" || p.PageSize > 0
}

// Limit clamps the requested page size into [1, 250], defaulting to 50.
func (p Pagination) Limit() int {
	switch {
	case p.PageSize <= 0:
		return defaultPageSize
	case p.PageSize > maxPageSize:
		return maxPageSize
	default:
		return p.PageSize
	}
}

type PageInfo struct {
	NextPageToken string `json:"next_page_token"`
	HasMore       bool   `json:"has_more"`
}

// EncodeCursor wraps a record id into an opaque page token.
func EncodeCursor(id int64) string {
	return base64.StdEncoding.EncodeToString([]byte(strconv.FormatInt(id, 10)))
}

// DecodeCursor unwraps a page token. An empty token decodes to 0, meaning
// start from the beginning.
func DecodeCursor(token string) (int64, error) {
	if token == "" {
		return 0, nil
	}
	b, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return 0, err
	}
	return strconv.ParseInt(string(b), 10, 64)
}

// Window cuts one page out of an already-ordered result set. The cursor
// function extracts each record's id; after is the id the previous page
// ended on, 0 for the first page.
func Window[T any](data []T, cursor func(T) int64, after int64, limit int) ([]T, PageInfo) {
	start := 0
	if after != 0 {
		for i, rec := range data {
			if cursor(rec) == after {
				start = i + 1
				break
			}
		}
	}

	end := start + limit
	if end >= len(data) {
		return data[start:], PageInfo{HasMore: false}
	}
	page := data[start:end]
	return page, PageInfo{
		HasMore:       true,
		NextPageToken: EncodeCursor(cursor(page[len(page)-1])),
	}
}
