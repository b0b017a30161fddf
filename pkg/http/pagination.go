package http

import (
	"net/url"
	"strconv"
)

// PageParams selects a page of a numbered listing (datasets, documents,
// segments, annotations, feedbacks, workflow logs).
type PageParams struct {
	Page  int
	Limit int
}

// ToQuery converts pagination parameters to URL query values.
func (p PageParams) ToQuery() url.Values {
	q := url.Values{}
	if p.Page > 0 {
		q.Set("page", strconv.Itoa(p.Page))
	}
	if p.Limit > 0 {
		q.Set("limit", strconv.Itoa(p.Limit))
	}
	return q
}

// CursorParams selects a window of a cursor listing. Messages page
// backwards from FirstID; conversations page forwards from LastID.
type CursorParams struct {
	FirstID string
	LastID  string
	Limit   int
}

// ToQuery converts cursor parameters to URL query values.
func (p CursorParams) ToQuery() url.Values {
	q := url.Values{}
	if p.FirstID != "" {
		q.Set("first_id", p.FirstID)
	}
	if p.LastID != "" {
		q.Set("last_id", p.LastID)
	}
	if p.Limit > 0 {
		q.Set("limit", strconv.Itoa(p.Limit))
	}
	return q
}

// PageMeta is the pagination envelope Dify returns next to "data".
type PageMeta struct {
	Page    int  `json:"page,omitempty"`
	Limit   int  `json:"limit"`
	Total   int  `json:"total,omitempty"`
	HasMore bool `json:"has_more"`
}

// NextPage returns the number of the following page, or 0 when there is none.
func (m PageMeta) NextPage() int {
	if !m.HasMore {
		return 0
	}
	if m.Page == 0 {
		return 2
	}
	return m.Page + 1
}

// MergeQuery merges multiple url.Values into one.
func MergeQuery(queries ...url.Values) url.Values {
	result := url.Values{}
	for _, q := range queries {
		for k, v := range q {
			for _, val := range v {
				result.Add(k, val)
			}
		}
	}
	return result
}
