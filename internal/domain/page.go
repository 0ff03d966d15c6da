package domain

import (
	"bytes"
	"fmt"
	"strconv"
)

// Link is an SWS hypermedia reference.
type Link struct {
	Href string `json:"Href"`
}

// Page carries the paging envelope shared by every SWS search response.
type Page struct {
	PageStart  FlexInt `json:"PageStart"`
	PageSize   FlexInt `json:"PageSize"`
	TotalCount FlexInt `json:"TotalCount"`
	Next       *Link   `json:"Next"`
	Previous   *Link   `json:"Previous"`
	Current    *Link   `json:"Current"`
}

// PageInfo returns the paging envelope; search results embed Page and
// inherit it.
func (p Page) PageInfo() Page { return p }

// FlexInt decodes integers SWS sometimes sends as JSON strings ("10") and
// sometimes as numbers. Empty strings and null decode to 0.
type FlexInt int

func (n *FlexInt) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*n = 0
		return nil
	}
	if b[0] == '"' {
		s, err := strconv.Unquote(string(b))
		if err != nil {
			return fmt.Errorf("flexint: %w", err)
		}
		if s == "" {
			*n = 0
			return nil
		}
		b = []byte(s)
	}
	v, err := strconv.Atoi(string(b))
	if err != nil {
		return fmt.Errorf("flexint: %q is not an integer", b)
	}
	*n = FlexInt(v)
	return nil
}
