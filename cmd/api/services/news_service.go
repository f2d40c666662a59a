package services

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"news-cms/cmd/api/dto"
	"news-cms/models"
	"news-cms/repositories"
	"news-cms/sanitizer"
	"news-cms/semanticid"
)

// semanticIDMaxAttempts caps the sequence probing when deriving a unique
// semantic ID for the same day.
const semanticIDMaxAttempts = 999

type NewsService struct {
	repo         *repositories.NewsRepository
	readingSpeed int
}

func NewNewsService(repo *repositories.NewsRepository, readingSpeed int) *NewsService {
	if readingSpeed <= 0 {
		readingSpeed = sanitizer.DefaultReadingSpeed
	}
	return &NewsService{repo: repo, readingSpeed: readingSpeed}
}

// List returns a page of news. publicOnly restricts the result to
// published items regardless of the status filter.
func (s *NewsService) List(ctx context.Context, opts repositories.ListNewsOptions, publicOnly bool) (dto.Pagination[dto.NewsDTO], error) {
	if opts.Status != "" && !models.ValidStatus(opts.Status) {
		return dto.Pagination[dto.NewsDTO]{}, fmt.Errorf("%w: unknown status %q", ErrValidation, opts.Status)
	}
	if publicOnly {
		opts.Status = models.StatusPublished
	}
	opts = opts.Normalize()

	items, total, err := s.repo.List(ctx, opts)
	if err != nil {
		return dto.Pagination[dto.NewsDTO]{}, err
	}

	out := make([]dto.NewsDTO, 0, len(items))
	for _, n := range items {
		out = append(out, dto.NewNewsDTO(n))
	}
	return dto.NewPagination(out, opts.Page, opts.PageSize, total), nil
}

// Get resolves a news item by ObjectID hex or, failing that, by semantic ID.
func (s *NewsService) Get(ctx context.Context, idOrSemantic string, publicOnly bool) (dto.NewsDTO, error) {
	var (
		n   *models.News
		err error
	)
	if oid, idErr := primitive.ObjectIDFromHex(idOrSemantic); idErr == nil {
		n, err = s.repo.FindByID(ctx, oid)
	} else {
		n, err = s.repo.FindBySemanticID(ctx, idOrSemantic)
	}
	if err != nil {
		if err == repositories.ErrNotFound {
			return dto.NewsDTO{}, ErrNotFound
		}
		return dto.NewsDTO{}, err
	}
	if publicOnly && n.Status != models.StatusPublished {
		return dto.NewsDTO{}, ErrNotFound
	}
	return dto.NewNewsDTO(*n), nil
}

func (s *NewsService) Create(ctx context.Context, req dto.CreateNewsRequest) (dto.NewsDTO, error) {
	if req.Title == nil || req.Title.IsEmpty() {
		return dto.NewsDTO{}, fmt.Errorf("%w: title is required", ErrValidation)
	}
	if req.Content == nil || req.Content.IsEmpty() {
		return dto.NewsDTO{}, fmt.Errorf("%w: content is required", ErrValidation)
	}
	if req.Category == "" {
		return dto.NewsDTO{}, fmt.Errorf("%w: category is required", ErrValidation)
	}

	status := req.Status
	if status == "" {
		status = models.StatusDraft
	}
	if !models.ValidStatus(status) {
		return dto.NewsDTO{}, fmt.Errorf("%w: unknown status %q", ErrValidation, status)
	}

	content := sanitizer.SanitizeLocalized(*req.Content)
	summary := models.LocalizedText{}
	if req.Summary != nil {
		summary = sanitizer.SanitizeLocalized(*req.Summary)
	}

	semanticID := req.SemanticID
	if semanticID == "" {
		var err error
		semanticID, err = s.uniqueSemanticID(ctx, req.Title.In("en"), primitive.NilObjectID)
		if err != nil {
			return dto.NewsDTO{}, err
		}
	} else {
		taken, err := s.repo.ExistsBySemanticID(ctx, semanticID, primitive.NilObjectID)
		if err != nil {
			return dto.NewsDTO{}, err
		}
		if taken {
			return dto.NewsDTO{}, fmt.Errorf("%w: semantic_id %q", ErrConflict, semanticID)
		}
	}

	slug := req.Slug
	if slug == "" {
		slug = semanticID
	}
	if slug != "" {
		taken, err := s.repo.ExistsBySlug(ctx, slug, primitive.NilObjectID)
		if err != nil {
			return dto.NewsDTO{}, err
		}
		if taken {
			return dto.NewsDTO{}, fmt.Errorf("%w: slug %q", ErrConflict, slug)
		}
	}

	n := models.News{
		SemanticID:  semanticID,
		Slug:        slug,
		Title:       *req.Title,
		Summary:     summary,
		Content:     content,
		Category:    req.Category,
		Tags:        req.Tags,
		Author:      req.Author,
		Status:      status,
		ReadTime:    sanitizer.LocalizedReadTime(content, s.readingSpeed),
		ImageURL:    req.ImageURL,
		ExternalURL: req.ExternalURL,
		PublishedAt: req.PublishedAt,
	}
	if req.IsHot != nil {
		n.IsHot = *req.IsHot
	}
	if req.IsImportant != nil {
		n.IsImportant = *req.IsImportant
	}
	if req.IsCritical != nil {
		n.IsCritical = *req.IsCritical
	}
	if status == models.StatusPublished && n.PublishedAt == nil {
		now := time.Now()
		n.PublishedAt = &now
	}

	id, err := s.repo.Insert(ctx, &n)
	if err != nil {
		return dto.NewsDTO{}, err
	}
	n.ID = id
	return dto.NewNewsDTO(n), nil
}

func (s *NewsService) Update(ctx context.Context, idHex string, req dto.UpdateNewsRequest) (dto.NewsDTO, error) {
	id, err := primitive.ObjectIDFromHex(idHex)
	if err != nil {
		return dto.NewsDTO{}, fmt.Errorf("%w: %s", ErrInvalidID, idHex)
	}

	set := bson.M{}
	if req.Title != nil {
		if req.Title.IsEmpty() {
			return dto.NewsDTO{}, fmt.Errorf("%w: title cannot be empty", ErrValidation)
		}
		set["title"] = *req.Title
	}
	if req.Summary != nil {
		set["summary"] = sanitizer.SanitizeLocalized(*req.Summary)
	}
	if req.Content != nil {
		content := sanitizer.SanitizeLocalized(*req.Content)
		set["content"] = content
		set["read_time"] = sanitizer.LocalizedReadTime(content, s.readingSpeed)
	}
	if req.Category != nil {
		if *req.Category == "" {
			return dto.NewsDTO{}, fmt.Errorf("%w: category cannot be empty", ErrValidation)
		}
		set["category"] = *req.Category
	}
	if req.Tags != nil {
		set["tags"] = req.Tags
	}
	if req.Author != nil {
		set["author"] = *req.Author
	}
	if req.Status != nil {
		if !models.ValidStatus(*req.Status) {
			return dto.NewsDTO{}, fmt.Errorf("%w: unknown status %q", ErrValidation, *req.Status)
		}
		set["status"] = *req.Status
		if *req.Status == models.StatusPublished && req.PublishedAt == nil {
			set["published_at"] = time.Now()
		}
	}
	if req.IsHot != nil {
		set["is_hot"] = *req.IsHot
	}
	if req.IsImportant != nil {
		set["is_important"] = *req.IsImportant
	}
	if req.IsCritical != nil {
		set["is_critical"] = *req.IsCritical
	}
	if req.ImageURL != nil {
		set["image_url"] = *req.ImageURL
	}
	if req.ExternalURL != nil {
		set["external_url"] = *req.ExternalURL
	}
	if req.PublishedAt != nil {
		set["published_at"] = *req.PublishedAt
	}
	if len(set) == 0 {
		return dto.NewsDTO{}, fmt.Errorf("%w: no fields to update", ErrValidation)
	}

	if err := s.repo.Update(ctx, id, set); err != nil {
		if err == repositories.ErrNotFound {
			return dto.NewsDTO{}, ErrNotFound
		}
		return dto.NewsDTO{}, err
	}

	n, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return dto.NewsDTO{}, err
	}
	return dto.NewNewsDTO(*n), nil
}

func (s *NewsService) Delete(ctx context.Context, idHex string) error {
	id, err := primitive.ObjectIDFromHex(idHex)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidID, idHex)
	}
	removed, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !removed {
		return ErrNotFound
	}
	return nil
}

// uniqueSemanticID derives a semantic ID from the title and today's date,
// probing the per-day sequence until it finds a free one.
func (s *NewsService) uniqueSemanticID(ctx context.Context, title string, excludeID primitive.ObjectID) (string, error) {
	date := time.Now().Format("20060102")
	for seq := 1; seq <= semanticIDMaxAttempts; seq++ {
		candidate := semanticid.Generate(title, date, seq, "", "")
		taken, err := s.repo.ExistsBySemanticID(ctx, candidate, excludeID)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("%w: semantic id space exhausted for %s", ErrConflict, date)
}
