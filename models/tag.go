package models

import (
	"regexp"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Tag labels articles. Like Category, the value slug is unique and
// ArticleCount is a best-effort denormalized counter.
// Collection: tags
type Tag struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         LocalizedText      `bson:"name" json:"name"`
	Description  LocalizedText      `bson:"description" json:"description"`
	Value        string             `bson:"value" json:"value"`
	Color        string             `bson:"color" json:"color"`
	IsActive     bool               `bson:"is_active" json:"is_active"`
	ArticleCount int64              `bson:"article_count" json:"article_count"`
	CreatedAt    time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time          `bson:"updated_at" json:"updated_at"`
}

var slugSpaces = regexp.MustCompile(`\s+`)

// Slugify derives the unique value from a display name: lowercased,
// trimmed, runs of whitespace collapsed into single hyphens. Non-ASCII
// names are kept verbatim; there is no transliteration, so a pure-Chinese
// name becomes its own slug.
func Slugify(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = slugSpaces.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// SlugFromName picks the English name for the slug when available,
// otherwise falls back to the Chinese name.
func SlugFromName(name LocalizedText) string {
	if name.En != "" {
		return Slugify(name.En)
	}
	return Slugify(name.Zh)
}
