package models

import "time"

// Query holds the query parameters used by PayPal list calls. Zero
// values are omitted.
type Query struct {
	Count              int        `url:"count,omitempty"`
	EndTime            *time.Time `url:"end_time,omitempty"`
	Page               int        `url:"page,omitempty"`
	PageSize           int        `url:"page_size,omitempty"`
	TotalCountRequired bool       `url:"total_count_required,omitempty"`
	TotalRequired      bool       `url:"total_required,omitempty"`
	SortBy             string     `url:"sort_by,omitempty"`
	SortOrder          string     `url:"sort_order,omitempty"`
	StartID            string     `url:"start_id,omitempty"`
	StartIndex         int        `url:"start_index,omitempty"`
	StartTime          *time.Time `url:"start_time,omitempty"`
	Fields             string     `url:"fields,omitempty"`
}
