package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Article is the richer news variant where category, tags and author are
// references into their own collections.
// Collection: articles
type Article struct {
	ID              primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	SemanticID      string               `bson:"semantic_id" json:"semantic_id"`
	Slug            string               `bson:"slug" json:"slug"`
	Title           LocalizedText        `bson:"title" json:"title"`
	Summary         LocalizedText        `bson:"summary" json:"summary"`
	Content         LocalizedText        `bson:"content" json:"content"`
	Category        primitive.ObjectID   `bson:"category" json:"category"`
	Tags            []primitive.ObjectID `bson:"tags" json:"tags"`
	Author          primitive.ObjectID   `bson:"author,omitempty" json:"author,omitempty"`
	RelatedArticles []primitive.ObjectID `bson:"related_articles" json:"related_articles"`
	Status          string               `bson:"status" json:"status"`
	Views           int64                `bson:"views" json:"views"`
	ReadTime        int                  `bson:"read_time" json:"read_time"`
	IsFeatured      bool                 `bson:"is_featured" json:"is_featured"`
	IsHot           bool                 `bson:"is_hot" json:"is_hot"`
	IsImportant     bool                 `bson:"is_important" json:"is_important"`
	IsCritical      bool                 `bson:"is_critical" json:"is_critical"`
	SEO             *ArticleSEO          `bson:"seo,omitempty" json:"seo,omitempty"`
	PublishedAt     *time.Time           `bson:"published_at,omitempty" json:"published_at,omitempty"`
	CreatedAt       time.Time            `bson:"created_at" json:"created_at"`
	UpdatedAt       time.Time            `bson:"updated_at" json:"updated_at"`
}

// ArticleSEO carries optional per-language metadata for search engines.
type ArticleSEO struct {
	MetaTitle       LocalizedText `bson:"meta_title" json:"meta_title"`
	MetaDescription LocalizedText `bson:"meta_description" json:"meta_description"`
	Keywords        []string      `bson:"keywords" json:"keywords"`
}
