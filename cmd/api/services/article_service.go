package services

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"news-cms/cmd/api/dto"
	"news-cms/cmd/internal/logger"
	"news-cms/models"
	"news-cms/repositories"
	"news-cms/sanitizer"
	"news-cms/semanticid"
)

type ArticleService struct {
	articles     *repositories.ArticleRepository
	categories   *repositories.CategoryRepository
	tags         *repositories.TagRepository
	users        *repositories.UserRepository
	readingSpeed int
}

func NewArticleService(
	articles *repositories.ArticleRepository,
	categories *repositories.CategoryRepository,
	tags *repositories.TagRepository,
	users *repositories.UserRepository,
	readingSpeed int,
) *ArticleService {
	if readingSpeed <= 0 {
		readingSpeed = sanitizer.DefaultReadingSpeed
	}
	return &ArticleService{
		articles:     articles,
		categories:   categories,
		tags:         tags,
		users:        users,
		readingSpeed: readingSpeed,
	}
}

// refCache memoizes reference lookups within one request so that listing a
// page of articles does not refetch the same category or tag per item.
type refCache struct {
	categories map[primitive.ObjectID]*dto.CategoryRefDTO
	tags       map[primitive.ObjectID]*dto.TagRefDTO
	authors    map[primitive.ObjectID]*dto.AuthorRefDTO
}

func newRefCache() *refCache {
	return &refCache{
		categories: map[primitive.ObjectID]*dto.CategoryRefDTO{},
		tags:       map[primitive.ObjectID]*dto.TagRefDTO{},
		authors:    map[primitive.ObjectID]*dto.AuthorRefDTO{},
	}
}

func (s *ArticleService) categoryRef(ctx context.Context, cache *refCache, id primitive.ObjectID) *dto.CategoryRefDTO {
	if id.IsZero() {
		return nil
	}
	if ref, ok := cache.categories[id]; ok {
		return ref
	}
	c, err := s.categories.FindByID(ctx, id)
	if err != nil {
		// Dangling reference; the article still renders without it.
		cache.categories[id] = nil
		return nil
	}
	ref := &dto.CategoryRefDTO{ID: c.ID.Hex(), Name: c.Name, Value: c.Value}
	cache.categories[id] = ref
	return ref
}

func (s *ArticleService) tagRefs(ctx context.Context, cache *refCache, ids []primitive.ObjectID) []dto.TagRefDTO {
	refs := make([]dto.TagRefDTO, 0, len(ids))
	for _, id := range ids {
		ref, ok := cache.tags[id]
		if !ok {
			t, err := s.tags.FindByID(ctx, id)
			if err != nil {
				cache.tags[id] = nil
				continue
			}
			ref = &dto.TagRefDTO{ID: t.ID.Hex(), Name: t.Name, Value: t.Value}
			cache.tags[id] = ref
		}
		if ref != nil {
			refs = append(refs, *ref)
		}
	}
	return refs
}

func (s *ArticleService) authorRef(ctx context.Context, cache *refCache, id primitive.ObjectID) *dto.AuthorRefDTO {
	if id.IsZero() {
		return nil
	}
	if ref, ok := cache.authors[id]; ok {
		return ref
	}
	u, err := s.users.FindByID(ctx, id)
	if err != nil {
		cache.authors[id] = nil
		return nil
	}
	ref := &dto.AuthorRefDTO{ID: u.ID.Hex(), Username: u.Username, Email: u.Email}
	cache.authors[id] = ref
	return ref
}

func (s *ArticleService) toDTO(ctx context.Context, cache *refCache, a models.Article) dto.ArticleDTO {
	return dto.NewArticleDTO(
		a,
		s.categoryRef(ctx, cache, a.Category),
		s.tagRefs(ctx, cache, a.Tags),
		s.authorRef(ctx, cache, a.Author),
	)
}

func (s *ArticleService) List(ctx context.Context, opts repositories.ListArticlesOptions, publicOnly bool) (dto.Pagination[dto.ArticleDTO], error) {
	if opts.Status != "" && !models.ValidStatus(opts.Status) {
		return dto.Pagination[dto.ArticleDTO]{}, fmt.Errorf("%w: unknown status %q", ErrValidation, opts.Status)
	}
	if publicOnly {
		opts.Status = models.StatusPublished
	}
	opts = opts.Normalize()

	items, total, err := s.articles.List(ctx, opts)
	if err != nil {
		return dto.Pagination[dto.ArticleDTO]{}, err
	}

	cache := newRefCache()
	out := make([]dto.ArticleDTO, 0, len(items))
	for _, a := range items {
		out = append(out, s.toDTO(ctx, cache, a))
	}
	return dto.NewPagination(out, opts.Page, opts.PageSize, total), nil
}

// Get fetches an article by ID. When countView is set the view counter is
// bumped atomically as part of the read.
func (s *ArticleService) Get(ctx context.Context, idHex string, publicOnly, countView bool) (dto.ArticleDTO, error) {
	id, err := primitive.ObjectIDFromHex(idHex)
	if err != nil {
		return dto.ArticleDTO{}, fmt.Errorf("%w: %s", ErrInvalidID, idHex)
	}

	var a *models.Article
	if countView {
		a, err = s.articles.FindByIDAndIncrementViews(ctx, id)
	} else {
		a, err = s.articles.FindByID(ctx, id)
	}
	if err != nil {
		if err == repositories.ErrNotFound {
			return dto.ArticleDTO{}, ErrNotFound
		}
		return dto.ArticleDTO{}, err
	}
	if publicOnly && a.Status != models.StatusPublished {
		return dto.ArticleDTO{}, ErrNotFound
	}
	return s.toDTO(ctx, newRefCache(), *a), nil
}

func (s *ArticleService) Create(ctx context.Context, req dto.CreateArticleRequest) (dto.ArticleDTO, error) {
	if req.Title == nil || req.Title.IsEmpty() {
		return dto.ArticleDTO{}, fmt.Errorf("%w: title is required", ErrValidation)
	}
	if req.Content == nil || req.Content.IsEmpty() {
		return dto.ArticleDTO{}, fmt.Errorf("%w: content is required", ErrValidation)
	}
	if req.Category == "" {
		return dto.ArticleDTO{}, fmt.Errorf("%w: category is required", ErrValidation)
	}

	categoryID, err := primitive.ObjectIDFromHex(req.Category)
	if err != nil {
		return dto.ArticleDTO{}, fmt.Errorf("%w: category %s", ErrInvalidID, req.Category)
	}
	if _, err := s.categories.FindByID(ctx, categoryID); err != nil {
		if err == repositories.ErrNotFound {
			return dto.ArticleDTO{}, fmt.Errorf("%w: category %s", ErrNotFound, req.Category)
		}
		return dto.ArticleDTO{}, err
	}

	tagIDs, err := dto.ParseObjectIDs(req.Tags)
	if err != nil {
		return dto.ArticleDTO{}, fmt.Errorf("%w: tags contain a malformed id", ErrInvalidID)
	}
	for _, tid := range tagIDs {
		if _, err := s.tags.FindByID(ctx, tid); err != nil {
			if err == repositories.ErrNotFound {
				return dto.ArticleDTO{}, fmt.Errorf("%w: tag %s", ErrNotFound, tid.Hex())
			}
			return dto.ArticleDTO{}, err
		}
	}

	var authorID primitive.ObjectID
	if req.Author != "" {
		authorID, err = primitive.ObjectIDFromHex(req.Author)
		if err != nil {
			return dto.ArticleDTO{}, fmt.Errorf("%w: author %s", ErrInvalidID, req.Author)
		}
	}

	relatedIDs, err := dto.ParseObjectIDs(req.RelatedArticles)
	if err != nil {
		return dto.ArticleDTO{}, fmt.Errorf("%w: related_articles contain a malformed id", ErrInvalidID)
	}

	status := req.Status
	if status == "" {
		status = models.StatusDraft
	}
	if !models.ValidStatus(status) {
		return dto.ArticleDTO{}, fmt.Errorf("%w: unknown status %q", ErrValidation, status)
	}

	semanticID := req.SemanticID
	if semanticID == "" {
		semanticID, err = s.uniqueSemanticID(ctx, req.Title.In("en"))
		if err != nil {
			return dto.ArticleDTO{}, err
		}
	} else {
		taken, err := s.articles.ExistsBySemanticID(ctx, semanticID, primitive.NilObjectID)
		if err != nil {
			return dto.ArticleDTO{}, err
		}
		if taken {
			return dto.ArticleDTO{}, fmt.Errorf("%w: semantic_id %q", ErrConflict, semanticID)
		}
	}

	content := sanitizer.SanitizeLocalized(*req.Content)
	summary := models.LocalizedText{}
	if req.Summary != nil {
		summary = sanitizer.SanitizeLocalized(*req.Summary)
	}

	a := models.Article{
		SemanticID:      semanticID,
		Slug:            req.Slug,
		Title:           *req.Title,
		Summary:         summary,
		Content:         content,
		Category:        categoryID,
		Tags:            tagIDs,
		Author:          authorID,
		RelatedArticles: relatedIDs,
		Status:          status,
		ReadTime:        sanitizer.LocalizedReadTime(content, s.readingSpeed),
		SEO:             req.SEO,
		PublishedAt:     req.PublishedAt,
	}
	if req.IsFeatured != nil {
		a.IsFeatured = *req.IsFeatured
	}
	if req.IsHot != nil {
		a.IsHot = *req.IsHot
	}
	if req.IsImportant != nil {
		a.IsImportant = *req.IsImportant
	}
	if req.IsCritical != nil {
		a.IsCritical = *req.IsCritical
	}
	if status == models.StatusPublished && a.PublishedAt == nil {
		now := time.Now()
		a.PublishedAt = &now
	}

	id, err := s.articles.Insert(ctx, &a)
	if err != nil {
		return dto.ArticleDTO{}, err
	}
	a.ID = id

	s.bumpCounters(ctx, categoryID, tagIDs, +1)

	return s.toDTO(ctx, newRefCache(), a), nil
}

func (s *ArticleService) Update(ctx context.Context, idHex string, req dto.UpdateArticleRequest) (dto.ArticleDTO, error) {
	id, err := primitive.ObjectIDFromHex(idHex)
	if err != nil {
		return dto.ArticleDTO{}, fmt.Errorf("%w: %s", ErrInvalidID, idHex)
	}

	current, err := s.articles.FindByID(ctx, id)
	if err != nil {
		if err == repositories.ErrNotFound {
			return dto.ArticleDTO{}, ErrNotFound
		}
		return dto.ArticleDTO{}, err
	}

	set := bson.M{}
	var (
		newCategory = current.Category
		newTags     = current.Tags
	)

	if req.Title != nil {
		if req.Title.IsEmpty() {
			return dto.ArticleDTO{}, fmt.Errorf("%w: title cannot be empty", ErrValidation)
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
		categoryID, err := primitive.ObjectIDFromHex(*req.Category)
		if err != nil {
			return dto.ArticleDTO{}, fmt.Errorf("%w: category %s", ErrInvalidID, *req.Category)
		}
		if _, err := s.categories.FindByID(ctx, categoryID); err != nil {
			if err == repositories.ErrNotFound {
				return dto.ArticleDTO{}, fmt.Errorf("%w: category %s", ErrNotFound, *req.Category)
			}
			return dto.ArticleDTO{}, err
		}
		set["category"] = categoryID
		newCategory = categoryID
	}
	if req.Tags != nil {
		tagIDs, err := dto.ParseObjectIDs(req.Tags)
		if err != nil {
			return dto.ArticleDTO{}, fmt.Errorf("%w: tags contain a malformed id", ErrInvalidID)
		}
		for _, tid := range tagIDs {
			if _, err := s.tags.FindByID(ctx, tid); err != nil {
				if err == repositories.ErrNotFound {
					return dto.ArticleDTO{}, fmt.Errorf("%w: tag %s", ErrNotFound, tid.Hex())
				}
				return dto.ArticleDTO{}, err
			}
		}
		set["tags"] = tagIDs
		newTags = tagIDs
	}
	if req.RelatedArticles != nil {
		relatedIDs, err := dto.ParseObjectIDs(req.RelatedArticles)
		if err != nil {
			return dto.ArticleDTO{}, fmt.Errorf("%w: related_articles contain a malformed id", ErrInvalidID)
		}
		set["related_articles"] = relatedIDs
	}
	if req.Status != nil {
		if !models.ValidStatus(*req.Status) {
			return dto.ArticleDTO{}, fmt.Errorf("%w: unknown status %q", ErrValidation, *req.Status)
		}
		set["status"] = *req.Status
		if *req.Status == models.StatusPublished && current.PublishedAt == nil && req.PublishedAt == nil {
			set["published_at"] = time.Now()
		}
	}
	if req.IsFeatured != nil {
		set["is_featured"] = *req.IsFeatured
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
	if req.SEO != nil {
		set["seo"] = req.SEO
	}
	if req.PublishedAt != nil {
		set["published_at"] = *req.PublishedAt
	}
	if len(set) == 0 {
		return dto.ArticleDTO{}, fmt.Errorf("%w: no fields to update", ErrValidation)
	}

	if err := s.articles.Update(ctx, id, set); err != nil {
		if err == repositories.ErrNotFound {
			return dto.ArticleDTO{}, ErrNotFound
		}
		return dto.ArticleDTO{}, err
	}

	s.adjustCounters(ctx, current.Category, newCategory, current.Tags, newTags)

	updated, err := s.articles.FindByID(ctx, id)
	if err != nil {
		return dto.ArticleDTO{}, err
	}
	return s.toDTO(ctx, newRefCache(), *updated), nil
}

func (s *ArticleService) Delete(ctx context.Context, idHex string) error {
	id, err := primitive.ObjectIDFromHex(idHex)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidID, idHex)
	}

	a, err := s.articles.FindByID(ctx, id)
	if err != nil {
		if err == repositories.ErrNotFound {
			return ErrNotFound
		}
		return err
	}

	removed, err := s.articles.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !removed {
		return ErrNotFound
	}

	s.bumpCounters(ctx, a.Category, a.Tags, -1)
	return nil
}

// RecountArticleCounts rebuilds every category and tag article_count from
// the articles collection. Used by the admin reconcile endpoint.
func (s *ArticleService) RecountArticleCounts(ctx context.Context) error {
	cats, err := s.categories.List(ctx, false)
	if err != nil {
		return err
	}
	for _, c := range cats {
		n, err := s.articles.CountByCategory(ctx, c.ID)
		if err != nil {
			return err
		}
		if err := s.categories.SetArticleCount(ctx, c.ID, n); err != nil {
			return err
		}
	}

	ts, err := s.tags.List(ctx, false)
	if err != nil {
		return err
	}
	for _, t := range ts {
		n, err := s.articles.CountByTag(ctx, t.ID)
		if err != nil {
			return err
		}
		if err := s.tags.SetArticleCount(ctx, t.ID, n); err != nil {
			return err
		}
	}
	return nil
}

// bumpCounters applies delta to the category and every tag counter. Counter
// drift is tolerated; RecountArticleCounts repairs it.
func (s *ArticleService) bumpCounters(ctx context.Context, categoryID primitive.ObjectID, tagIDs []primitive.ObjectID, delta int) {
	if !categoryID.IsZero() {
		if err := s.categories.IncArticleCount(ctx, categoryID, delta); err != nil {
			logger.Log.Warnf("category counter %s: %v", categoryID.Hex(), err)
		}
	}
	for _, tid := range tagIDs {
		if err := s.tags.IncArticleCount(ctx, tid, delta); err != nil {
			logger.Log.Warnf("tag counter %s: %v", tid.Hex(), err)
		}
	}
}

// adjustCounters moves counters when an update changes the category or tag
// set. Unchanged references are left alone.
func (s *ArticleService) adjustCounters(ctx context.Context, oldCat, newCat primitive.ObjectID, oldTags, newTags []primitive.ObjectID) {
	if oldCat != newCat {
		s.bumpCounters(ctx, oldCat, nil, -1)
		s.bumpCounters(ctx, newCat, nil, +1)
	}

	oldSet := make(map[primitive.ObjectID]bool, len(oldTags))
	for _, id := range oldTags {
		oldSet[id] = true
	}
	newSet := make(map[primitive.ObjectID]bool, len(newTags))
	for _, id := range newTags {
		newSet[id] = true
	}
	for id := range oldSet {
		if !newSet[id] {
			s.bumpCounters(ctx, primitive.NilObjectID, []primitive.ObjectID{id}, -1)
		}
	}
	for id := range newSet {
		if !oldSet[id] {
			s.bumpCounters(ctx, primitive.NilObjectID, []primitive.ObjectID{id}, +1)
		}
	}
}

func (s *ArticleService) uniqueSemanticID(ctx context.Context, title string) (string, error) {
	date := time.Now().Format("20060102")
	for seq := 1; seq <= semanticIDMaxAttempts; seq++ {
		candidate := semanticid.Generate(title, date, seq, "", "")
		taken, err := s.articles.ExistsBySemanticID(ctx, candidate, primitive.NilObjectID)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("%w: semantic id space exhausted for %s", ErrConflict, date)
}
