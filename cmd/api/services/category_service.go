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

type CategoryService struct {
	repo     *repositories.CategoryRepository
	articles *repositories.ArticleRepository
}

func NewCategoryService(repo *repositories.CategoryRepository, articles *repositories.ArticleRepository) *CategoryService {
	return &CategoryService{repo: repo, articles: articles}
}

func (s *CategoryService) List(ctx context.Context, activeOnly bool) ([]dto.CategoryDTO, error) {
	items, err := s.repo.List(ctx, activeOnly)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CategoryDTO, 0, len(items))
	for _, c := range items {
		out = append(out, dto.NewCategoryDTO(c))
	}
	return out, nil
}

func (s *CategoryService) Get(ctx context.Context, idHex string) (dto.CategoryDTO, error) {
	id, err := primitive.ObjectIDFromHex(idHex)
	if err != nil {
		return dto.CategoryDTO{}, fmt.Errorf("%w: %s", ErrInvalidID, idHex)
	}
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == repositories.ErrNotFound {
			return dto.CategoryDTO{}, ErrNotFound
		}
		return dto.CategoryDTO{}, err
	}
	return dto.NewCategoryDTO(*c), nil
}

func (s *CategoryService) Create(ctx context.Context, req dto.CreateCategoryRequest) (dto.CategoryDTO, error) {
	if req.Name == nil || req.Name.IsEmpty() {
		return dto.CategoryDTO{}, fmt.Errorf("%w: name is required", ErrValidation)
	}

	value := req.Value
	if value == "" {
		value = models.SlugFromName(*req.Name)
	}
	if value == "" {
		return dto.CategoryDTO{}, fmt.Errorf("%w: value is required", ErrValidation)
	}

	taken, err := s.repo.ExistsByValue(ctx, value, primitive.NilObjectID)
	if err != nil {
		return dto.CategoryDTO{}, err
	}
	if taken {
		return dto.CategoryDTO{}, fmt.Errorf("%w: category value %q", ErrConflict, value)
	}

	c := models.Category{
		Name:     *req.Name,
		Value:    value,
		Color:    req.Color,
		IsActive: true,
	}
	if req.Description != nil {
		c.Description = *req.Description
	}
	if req.DisplayOrder != nil {
		c.DisplayOrder = *req.DisplayOrder
	}
	if req.IsActive != nil {
		c.IsActive = *req.IsActive
	}

	id, err := s.repo.Insert(ctx, &c)
	if err != nil {
		return dto.CategoryDTO{}, err
	}
	c.ID = id
	return dto.NewCategoryDTO(c), nil
}

func (s *CategoryService) Update(ctx context.Context, idHex string, req dto.UpdateCategoryRequest) (dto.CategoryDTO, error) {
	id, err := primitive.ObjectIDFromHex(idHex)
	if err != nil {
		return dto.CategoryDTO{}, fmt.Errorf("%w: %s", ErrInvalidID, idHex)
	}

	set := bson.M{}
	if req.Name != nil {
		if req.Name.IsEmpty() {
			return dto.CategoryDTO{}, fmt.Errorf("%w: name cannot be empty", ErrValidation)
		}
		set["name"] = *req.Name
	}
	if req.Description != nil {
		set["description"] = *req.Description
	}
	if req.Value != nil {
		if *req.Value == "" {
			return dto.CategoryDTO{}, fmt.Errorf("%w: value cannot be empty", ErrValidation)
		}
		taken, err := s.repo.ExistsByValue(ctx, *req.Value, id)
		if err != nil {
			return dto.CategoryDTO{}, err
		}
		if taken {
			return dto.CategoryDTO{}, fmt.Errorf("%w: category value %q", ErrConflict, *req.Value)
		}
		set["value"] = *req.Value
	}
	if req.Color != nil {
		set["color"] = *req.Color
	}
	if req.DisplayOrder != nil {
		set["display_order"] = *req.DisplayOrder
	}
	if req.IsActive != nil {
		set["is_active"] = *req.IsActive
	}
	if len(set) == 0 {
		return dto.CategoryDTO{}, fmt.Errorf("%w: no fields to update", ErrValidation)
	}

	if err := s.repo.Update(ctx, id, set); err != nil {
		if err == repositories.ErrNotFound {
			return dto.CategoryDTO{}, ErrNotFound
		}
		return dto.CategoryDTO{}, err
	}

	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return dto.CategoryDTO{}, err
	}
	return dto.NewCategoryDTO(*c), nil
}

// Delete refuses to remove a category that still has articles referencing it.
func (s *CategoryService) Delete(ctx context.Context, idHex string) error {
	id, err := primitive.ObjectIDFromHex(idHex)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidID, idHex)
	}

	inUse, err := s.articles.CountByCategory(ctx, id)
	if err != nil {
		return err
	}
	if inUse > 0 {
		return fmt.Errorf("%w: category is referenced by %d articles", ErrConflict, inUse)
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
