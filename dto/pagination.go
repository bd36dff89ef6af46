package dto

// ListParams carries the shared query parameters of every list endpoint:
// page, limit, search, sortColumn, sortDirection.
type ListParams struct {
	Page          int
	Limit         int
	Search        string
	SortColumn    string
	SortDirection string
}

// Offset returns the SQL offset for the current page.
func (p ListParams) Offset() int {
	return (p.Page - 1) * p.Limit
}

// ListResponse is the paginated list envelope.
type ListResponse struct {
	Data       interface{} `json:"data"`
	TotalCount int64       `json:"totalCount"`
	Page       int         `json:"page"`
	Limit      int         `json:"limit"`
	TotalPages int         `json:"totalPages"`
}

// DeleteRequest is the bulk soft-delete payload used by every resource.
type DeleteRequest struct {
	IDs []uint `json:"ids" binding:"required,min=1"`
}
