// Package schema defines the transport representations exchanged over the
// API boundary. Persistence records live in internal/model; conversion
// between the two is configured per entity in internal/datastore.
package schema

// Category is the transport representation of a manual category.
type Category struct {
	ID      int64  `json:"id"`
	Name    string `json:"name" binding:"required"`
	LogoURL string `json:"logo_url"`
}

// Group is the transport representation of a manual group.
type Group struct {
	ID         int64  `json:"id"`
	Name       string `json:"name" binding:"required"`
	CategoryID int64  `json:"category_id"`
}

// Manual is the transport representation of an equipment manual.
type Manual struct {
	ID            int64  `json:"id"`
	Title         string `json:"title" binding:"required"`
	FileURL       string `json:"file_url"`
	CoverImageURL string `json:"cover_image_url"`
	CategoryID    int64  `json:"category_id"`
	GroupID       int64  `json:"group_id"`
}

// NestedManual is a manual as it appears inside a nested category tree.
type NestedManual struct {
	ID      int64  `json:"id"`
	Title   string `json:"title"`
	FileURL string `json:"file_url"`
	GroupID int64  `json:"group_id"`
}

// NestedGroup is a group with its manuals materialized.
type NestedGroup struct {
	ID      int64          `json:"id"`
	Name    string         `json:"name"`
	Manuals []NestedManual `json:"manuals"`
}

// NestedCategory is a category with its full group/manual tree.
type NestedCategory struct {
	ID      int64         `json:"id"`
	Name    string        `json:"name"`
	LogoURL string        `json:"logo_url"`
	Groups  []NestedGroup `json:"groups"`
}

// UploadedManual describes the object-store outcome of a manual upload.
type UploadedManual struct {
	FileURL       string `json:"file_url"`
	CoverImageURL string `json:"cover_image_url"`
}
