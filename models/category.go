package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Category groups articles. The value slug is unique per collection.
// ArticleCount is denormalized and maintained with $inc from article
// mutations; it can drift from the true count.
// Collection: categories
type Category struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         LocalizedText      `bson:"name" json:"name"`
	Description  LocalizedText      `bson:"description" json:"description"`
	Value        string             `bson:"value" json:"value"`
	Color        string             `bson:"color" json:"color"`
	DisplayOrder int                `bson:"display_order" json:"display_order"`
	IsActive     bool               `bson:"is_active" json:"is_active"`
	ArticleCount int64              `bson:"article_count" json:"article_count"`
	CreatedAt    time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time          `bson:"updated_at" json:"updated_at"`
}
