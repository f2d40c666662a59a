package dto

import (
	"time"

	"news-cms/models"
)

// NewsDTO is the transport shape of a news item. IDs are hex strings.
type NewsDTO struct {
	ID          string                 `json:"id"`
	SemanticID  string                 `json:"semantic_id,omitempty"`
	Slug        string                 `json:"slug,omitempty"`
	Title       models.LocalizedText   `json:"title"`
	Summary     models.LocalizedText   `json:"summary"`
	Content     models.LocalizedText   `json:"content"`
	Category    string                 `json:"category"`
	Tags        []string               `json:"tags"`
	Author      string                 `json:"author"`
	Status      string                 `json:"status"`
	Views       int64                  `json:"views"`
	ReadTime    int                    `json:"read_time"`
	IsHot       bool                   `json:"is_hot"`
	IsImportant bool                   `json:"is_important"`
	IsCritical  bool                   `json:"is_critical"`
	ImageURL    string                 `json:"image_url,omitempty"`
	ExternalURL string                 `json:"external_url,omitempty"`
	PublishedAt *time.Time             `json:"published_at,omitempty"`
	CreatedAt   time.Time              `json:"created_at"`
	UpdatedAt   time.Time              `json:"updated_at"`
	Extra       map[string]interface{} `json:"extra,omitempty"`
}

func NewNewsDTO(n models.News) NewsDTO {
	tags := n.Tags
	if tags == nil {
		tags = []string{}
	}
	return NewsDTO{
		ID:          n.ID.Hex(),
		SemanticID:  n.SemanticID,
		Slug:        n.Slug,
		Title:       n.Title,
		Summary:     n.Summary,
		Content:     n.Content,
		Category:    n.Category,
		Tags:        tags,
		Author:      n.Author,
		Status:      n.Status,
		Views:       n.Views,
		ReadTime:    n.ReadTime,
		IsHot:       n.IsHot,
		IsImportant: n.IsImportant,
		IsCritical:  n.IsCritical,
		ImageURL:    n.ImageURL,
		ExternalURL: n.ExternalURL,
		PublishedAt: n.PublishedAt,
		CreatedAt:   n.CreatedAt,
		UpdatedAt:   n.UpdatedAt,
		Extra:       n.Extra,
	}
}

// CreateNewsRequest is the POST /news body. Bilingual fields accept the
// canonical object shape as well as legacy strings.
type CreateNewsRequest struct {
	SemanticID  string                `json:"semantic_id"`
	Slug        string                `json:"slug"`
	Title       *models.LocalizedText `json:"title"`
	Summary     *models.LocalizedText `json:"summary"`
	Content     *models.LocalizedText `json:"content"`
	Category    string                `json:"category"`
	Tags        []string              `json:"tags"`
	Author      string                `json:"author"`
	Status      string                `json:"status"`
	IsHot       *bool                 `json:"is_hot"`
	IsImportant *bool                 `json:"is_important"`
	IsCritical  *bool                 `json:"is_critical"`
	ImageURL    string                `json:"image_url"`
	ExternalURL string                `json:"external_url"`
	PublishedAt *time.Time            `json:"published_at"`
}

// UpdateNewsRequest is the PUT /news/:id body; nil fields stay untouched.
type UpdateNewsRequest struct {
	Title       *models.LocalizedText `json:"title"`
	Summary     *models.LocalizedText `json:"summary"`
	Content     *models.LocalizedText `json:"content"`
	Category    *string               `json:"category"`
	Tags        []string              `json:"tags"`
	Author      *string               `json:"author"`
	Status      *string               `json:"status"`
	IsHot       *bool                 `json:"is_hot"`
	IsImportant *bool                 `json:"is_important"`
	IsCritical  *bool                 `json:"is_critical"`
	ImageURL    *string               `json:"image_url"`
	ExternalURL *string               `json:"external_url"`
	PublishedAt *time.Time            `json:"published_at"`
}
