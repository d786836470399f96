package topic

// Topic is a discussion category that articles are filed under.
type Topic struct {
	Slug        string `json:"slug"`
	Description string `json:"description"`
}

// Global field names for validation
const (
	FieldSlug        = "slug"
	FieldDescription = "description"
)
