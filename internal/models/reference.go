package models

// ReferenceItem is the shape shared by all lookup tables (genders, body
// types, colors, sizes, roles, qualifications and the rest).
type ReferenceItem struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	IsActive bool   `json:"isActive"`
}

// ReferencePage is one page of a paginated lookup listing.
type ReferencePage struct {
	Items      []ReferenceItem `json:"items"`
	PageNumber int             `json:"pageNumber"`
	PageSize   int             `json:"pageSize"`
	TotalCount int             `json:"totalCount"`
}
