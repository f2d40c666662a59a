package dto

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"news-cms/models"
)

// ArticleDTO flattens an article with its resolved references.
type ArticleDTO struct {
	ID              string               `json:"id"`
	SemanticID      string               `json:"semantic_id"`
	Slug            string               `json:"slug,omitempty"`
	Title           models.LocalizedText `json:"title"`
	Summary         models.LocalizedText `json:"summary"`
	Content         models.LocalizedText `json:"content"`
	Category        *CategoryRefDTO      `json:"category,omitempty"`
	Tags            []TagRefDTO          `json:"tags"`
	Author          *AuthorRefDTO        `json:"author,omitempty"`
	RelatedArticles []string             `json:"related_articles"`
	Status          string               `json:"status"`
	Views           int64                `json:"views"`
	ReadTime        int                  `json:"read_time"`
	IsFeatured      bool                 `json:"is_featured"`
	IsHot           bool                 `json:"is_hot"`
	IsImportant     bool                 `json:"is_important"`
	IsCritical      bool                 `json:"is_critical"`
	SEO             *models.ArticleSEO   `json:"seo,omitempty"`
	PublishedAt     *time.Time           `json:"published_at,omitempty"`
	CreatedAt       time.Time            `json:"created_at"`
	UpdatedAt       time.Time            `json:"updated_at"`
}

// CategoryRefDTO is the populated form of a category reference.
type CategoryRefDTO struct {
	ID    string               `json:"id"`
	Name  models.LocalizedText `json:"name"`
	Value string               `json:"value"`
}

// TagRefDTO is the populated form of a tag reference.
type TagRefDTO struct {
	ID    string               `json:"id"`
	Name  models.LocalizedText `json:"name"`
	Value string               `json:"value"`
}

// AuthorRefDTO is the populated form of an author reference.
type AuthorRefDTO struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// NewArticleDTO maps the document; reference resolution happens in the
// service, which passes the populated refs in.
func NewArticleDTO(a models.Article, category *CategoryRefDTO, tags []TagRefDTO, author *AuthorRefDTO) ArticleDTO {
	if tags == nil {
		tags = []TagRefDTO{}
	}
	related := make([]string, 0, len(a.RelatedArticles))
	for _, id := range a.RelatedArticles {
		related = append(related, id.Hex())
	}
	return ArticleDTO{
		ID:              a.ID.Hex(),
		SemanticID:      a.SemanticID,
		Slug:            a.Slug,
		Title:           a.Title,
		Summary:         a.Summary,
		Content:         a.Content,
		Category:        category,
		Tags:            tags,
		Author:          author,
		RelatedArticles: related,
		Status:          a.Status,
		Views:           a.Views,
		ReadTime:        a.ReadTime,
		IsFeatured:      a.IsFeatured,
		IsHot:           a.IsHot,
		IsImportant:     a.IsImportant,
		IsCritical:      a.IsCritical,
		SEO:             a.SEO,
		PublishedAt:     a.PublishedAt,
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
	}
}

// CreateArticleRequest is the POST /articles body. References are hex IDs.
type CreateArticleRequest struct {
	SemanticID      string                `json:"semantic_id"`
	Slug            string                `json:"slug"`
	Title           *models.LocalizedText `json:"title"`
	Summary         *models.LocalizedText `json:"summary"`
	Content         *models.LocalizedText `json:"content"`
	Category        string                `json:"category"`
	Tags            []string              `json:"tags"`
	Author          string                `json:"author"`
	RelatedArticles []string              `json:"related_articles"`
	Status          string                `json:"status"`
	IsFeatured      *bool                 `json:"is_featured"`
	IsHot           *bool                 `json:"is_hot"`
	IsImportant     *bool                 `json:"is_important"`
	IsCritical      *bool                 `json:"is_critical"`
	SEO             *models.ArticleSEO    `json:"seo"`
	PublishedAt     *time.Time            `json:"published_at"`
}

// UpdateArticleRequest is the PUT /articles/:id body.
type UpdateArticleRequest struct {
	Title           *models.LocalizedText `json:"title"`
	Summary         *models.LocalizedText `json:"summary"`
	Content         *models.LocalizedText `json:"content"`
	Category        *string               `json:"category"`
	Tags            []string              `json:"tags"`
	RelatedArticles []string              `json:"related_articles"`
	Status          *string               `json:"status"`
	IsFeatured      *bool                 `json:"is_featured"`
	IsHot           *bool                 `json:"is_hot"`
	IsImportant     *bool                 `json:"is_important"`
	IsCritical      *bool                 `json:"is_critical"`
	SEO             *models.ArticleSEO    `json:"seo"`
	PublishedAt     *time.Time            `json:"published_at"`
}

// ParseObjectIDs converts hex strings, silently skipping blanks.
func ParseObjectIDs(hexes []string) ([]primitive.ObjectID, error) {
	ids := make([]primitive.ObjectID, 0, len(hexes))
	for _, h := range hexes {
		if h == "" {
			continue
		}
		id, err := primitive.ObjectIDFromHex(h)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
