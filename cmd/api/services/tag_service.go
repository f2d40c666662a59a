package services

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"news-cms/cmd/api/dto"
	"news-cms/models"
	"news-cms/repositories"
)

type TagService struct {
	repo     *repositories.TagRepository
	articles *repositories.ArticleRepository
}

func NewTagService(repo *repositories.TagRepository, articles *repositories.ArticleRepository) *TagService {
	return &TagService{repo: repo, articles: articles}
}

func (s *TagService) List(ctx context.Context, activeOnly bool) ([]dto.TagDTO, error) {
	items, err := s.repo.List(ctx, activeOnly)
	if err != nil {
		return nil, err
	}
	out := make([]dto.TagDTO, 0, len(items))
	for _, t := range items {
		out = append(out, dto.NewTagDTO(t))
	}
	return out, nil
}

func (s *TagService) Get(ctx context.Context, idHex string) (dto.TagDTO, error) {
	id, err := primitive.ObjectIDFromHex(idHex)
	if err != nil {
		return dto.TagDTO{}, fmt.Errorf("%w: %s", ErrInvalidID, idHex)
	}
	t, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == repositories.ErrNotFound {
			return dto.TagDTO{}, ErrNotFound
		}
		return dto.TagDTO{}, err
	}
	return dto.NewTagDTO(*t), nil
}

func (s *TagService) Create(ctx context.Context, req dto.CreateTagRequest) (dto.TagDTO, error) {
	if req.Name == nil || req.Name.IsEmpty() {
		return dto.TagDTO{}, fmt.Errorf("%w: name is required", ErrValidation)
	}

	value := req.Value
	if value == "" {
		value = models.SlugFromName(*req.Name)
	}
	if value == "" {
		return dto.TagDTO{}, fmt.Errorf("%w: value is required", ErrValidation)
	}

	taken, err := s.repo.ExistsByValue(ctx, value, primitive.NilObjectID)
	if err != nil {
		return dto.TagDTO{}, err
	}
	if taken {
		return dto.TagDTO{}, fmt.Errorf("%w: tag value %q", ErrConflict, value)
	}

	t := models.Tag{
		Name:     *req.Name,
		Value:    value,
		Color:    req.Color,
		IsActive: true,
	}
	if req.Description != nil {
		t.Description = *req.Description
	}
	if req.IsActive != nil {
		t.IsActive = *req.IsActive
	}

	id, err := s.repo.Insert(ctx, &t)
	if err != nil {
		return dto.TagDTO{}, err
	}
	t.ID = id
	return dto.NewTagDTO(t), nil
}

func (s *TagService) Update(ctx context.Context, idHex string, req dto.UpdateTagRequest) (dto.TagDTO, error) {
	id, err := primitive.ObjectIDFromHex(idHex)
	if err != nil {
		return dto.TagDTO{}, fmt.Errorf("%w: %s", ErrInvalidID, idHex)
	}

	set := bson.M{}
	if req.Name != nil {
		if req.Name.IsEmpty() {
			return dto.TagDTO{}, fmt.Errorf("%w: name cannot be empty", ErrValidation)
		}
		set["name"] = *req.Name
	}
	if req.Description != nil {
		set["description"] = *req.Description
	}
	if req.Value != nil {
		if *req.Value == "" {
			return dto.TagDTO{}, fmt.Errorf("%w: value cannot be empty", ErrValidation)
		}
		taken, err := s.repo.ExistsByValue(ctx, *req.Value, id)
		if err != nil {
			return dto.TagDTO{}, err
		}
		if taken {
			return dto.TagDTO{}, fmt.Errorf("%w: tag value %q", ErrConflict, *req.Value)
		}
		set["value"] = *req.Value
	}
	if req.Color != nil {
		set["color"] = *req.Color
	}
	if req.IsActive != nil {
		set["is_active"] = *req.IsActive
	}
	if len(set) == 0 {
		return dto.TagDTO{}, fmt.Errorf("%w: no fields to update", ErrValidation)
	}

	if err := s.repo.Update(ctx, id, set); err != nil {
		if err == repositories.ErrNotFound {
			return dto.TagDTO{}, ErrNotFound
		}
		return dto.TagDTO{}, err
	}

	t, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return dto.TagDTO{}, err
	}
	return dto.NewTagDTO(*t), nil
}

// Delete removes a tag. Articles still carrying the tag keep the dangling
// reference; the populated view simply drops it.
func (s *TagService) Delete(ctx context.Context, idHex string) error {
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
