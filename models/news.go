package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// News statuses.
const (
	StatusDraft     = "draft"
	StatusPublished = "published"
	StatusArchived  = "archived"
)

// ValidStatus reports whether s is a known publication status.
func ValidStatus(s string) bool {
	switch s {
	case StatusDraft, StatusPublished, StatusArchived:
		return true
	}
	return false
}

// News represents an item in the legacy news collection. Category and tags
// are free-text labels here, not references.
// Collection: news
type News struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	SemanticID  string             `bson:"semantic_id,omitempty" json:"semantic_id,omitempty"`
	Slug        string             `bson:"slug,omitempty" json:"slug,omitempty"`
	Title       LocalizedText      `bson:"title" json:"title"`
	Summary     LocalizedText      `bson:"summary" json:"summary"`
	Content     LocalizedText      `bson:"content" json:"content"`
	Category    string             `bson:"category" json:"category"`
	Tags        []string           `bson:"tags" json:"tags"`
	Author      string             `bson:"author" json:"author"`
	Status      string             `bson:"status" json:"status"`
	Views       int64              `bson:"views" json:"views"`
	ReadTime    int                `bson:"read_time" json:"read_time"`
	IsHot       bool               `bson:"is_hot" json:"is_hot"`
	IsImportant bool               `bson:"is_important" json:"is_important"`
	IsCritical  bool               `bson:"is_critical" json:"is_critical"`
	ImageURL    string             `bson:"image_url,omitempty" json:"image_url,omitempty"`
	ExternalURL string             `bson:"external_url,omitempty" json:"external_url,omitempty"`
	PublishedAt *time.Time         `bson:"published_at,omitempty" json:"published_at,omitempty"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updated_at"`

	// Extra captures ad hoc fields (weekday, week, ...) that legacy tooling
	// attached to news documents outside the declared schema. They are
	// preserved on writes but never interpreted.
	Extra map[string]interface{} `bson:",inline" json:"extra,omitempty"`
}
