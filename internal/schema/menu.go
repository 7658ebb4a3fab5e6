package schema

// MenuItem is the transport representation of a menu entry.
type MenuItem struct {
	ID    int64  `json:"id"`
	Title string `json:"title" binding:"required"`
	URL   string `json:"url"`
}
