package dto

import (
	"time"

	"news-cms/models"
)

// CategoryDTO is the transport shape of a category.
type CategoryDTO struct {
	ID           string               `json:"id"`
	Name         models.LocalizedText `json:"name"`
	Description  models.LocalizedText `json:"description"`
	Value        string               `json:"value"`
	Color        string               `json:"color"`
	DisplayOrder int                  `json:"display_order"`
	IsActive     bool                 `json:"is_active"`
	ArticleCount int64                `json:"article_count"`
	CreatedAt    time.Time            `json:"created_at"`
	UpdatedAt    time.Time            `json:"updated_at"`
}

func NewCategoryDTO(c models.Category) CategoryDTO {
	return CategoryDTO{
		ID:           c.ID.Hex(),
		Name:         c.Name,
		Description:  c.Description,
		Value:        c.Value,
		Color:        c.Color,
		DisplayOrder: c.DisplayOrder,
		IsActive:     c.IsActive,
		ArticleCount: c.ArticleCount,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}

// TagDTO is the transport shape of a tag.
type TagDTO struct {
	ID           string               `json:"id"`
	Name         models.LocalizedText `json:"name"`
	Description  models.LocalizedText `json:"description"`
	Value        string               `json:"value"`
	Color        string               `json:"color"`
	IsActive     bool                 `json:"is_active"`
	ArticleCount int64                `json:"article_count"`
	CreatedAt    time.Time            `json:"created_at"`
	UpdatedAt    time.Time            `json:"updated_at"`
}

func NewTagDTO(t models.Tag) TagDTO {
	return TagDTO{
		ID:           t.ID.Hex(),
		Name:         t.Name,
		Description:  t.Description,
		Value:        t.Value,
		Color:        t.Color,
		IsActive:     t.IsActive,
		ArticleCount: t.ArticleCount,
		CreatedAt:    t.CreatedAt,
		UpdatedAt:    t.UpdatedAt,
	}
}

// CreateCategoryRequest is the POST /categories body.
type CreateCategoryRequest struct {
	Name         *models.LocalizedText `json:"name"`
	Description  *models.LocalizedText `json:"description"`
	Value        string                `json:"value"`
	Color        string                `json:"color"`
	DisplayOrder *int                  `json:"display_order"`
	IsActive     *bool                 `json:"is_active"`
}

// UpdateCategoryRequest is the PUT /categories/:id body.
type UpdateCategoryRequest struct {
	Name         *models.LocalizedText `json:"name"`
	Description  *models.LocalizedText `json:"description"`
	Value        *string               `json:"value"`
	Color        *string               `json:"color"`
	DisplayOrder *int                  `json:"display_order"`
	IsActive     *bool                 `json:"is_active"`
}

// CreateTagRequest is the POST /tags body. Value defaults to a slug
// derived from the name.
type CreateTagRequest struct {
	Name        *models.LocalizedText `json:"name"`
	Description *models.LocalizedText `json:"description"`
	Value       string                `json:"value"`
	Color       string                `json:"color"`
	IsActive    *bool                 `json:"is_active"`
}

// UpdateTagRequest is the PUT /tags/:id body.
type UpdateTagRequest struct {
	Name        *models.LocalizedText `json:"name"`
	Description *models.LocalizedText `json:"description"`
	Value       *string               `json:"value"`
	Color       *string               `json:"color"`
	IsActive    *bool                 `json:"is_active"`
}
