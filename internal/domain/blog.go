package domain

import "time"

const (
	BlogStatusDraft     = "draft"
	BlogStatusPublished = "published"
	BlogStatusArchived  = "archived"
)

// BlogPost is one article in the site blog, stored as a document.
type BlogPost struct {
	ID        string    `json:"id" bson:"_id"`
	Slug      string    `json:"slug" bson:"slug"`
	Title     string    `json:"title" bson:"title"`
	Excerpt   string    `json:"excerpt,omitempty" bson:"excerpt,omitempty"`
	Body      string    `json:"body" bson:"body"`
	Author    string    `json:"author" bson:"author"`
	Status    string    `json:"status" bson:"status"`
	Tags      []string  `json:"tags,omitempty" bson:"tags,omitempty"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}

// ValidBlogStatus reports whether s is one of the known post statuses.
func ValidBlogStatus(s string) bool {
	switch s {
	case BlogStatusDraft, BlogStatusPublished, BlogStatusArchived:
		return true
	}
	return false
}
