package services

import (
	"context"
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"news-cms/cmd/api/dto"
	"news-cms/models"
	"news-cms/repositories"
)

func TestCategoryCreateRefusesTakenValue(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("conflict", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "newscms.categories", mtest.FirstBatch, bson.D{{Key: "n", Value: 1}}))

		svc := NewCategoryService(repositories.NewCategoryRepository(mt.DB), repositories.NewArticleRepository(mt.DB))
		name := models.LocalizedText{Zh: "模型发布", En: "Model Release"}
		_, err := svc.Create(context.Background(), dto.CreateCategoryRequest{Name: &name})
		if !errors.Is(err, ErrConflict) {
			mt.Fatalf("expected ErrConflict, got %v", err)
		}
	})
}

func TestCategoryDeleteRefusedWhileReferenced(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("articles still point at it", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "newscms.articles", mtest.FirstBatch, bson.D{{Key: "n", Value: 3}}))

		svc := NewCategoryService(repositories.NewCategoryRepository(mt.DB), repositories.NewArticleRepository(mt.DB))
		err := svc.Delete(context.Background(), primitive.NewObjectID().Hex())
		if !errors.Is(err, ErrConflict) {
			mt.Fatalf("expected ErrConflict, got %v", err)
		}
	})

	mt.Run("unreferenced and unknown is not found", func(mt *mtest.T) {
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, "newscms.articles", mtest.FirstBatch),
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}),
		)

		svc := NewCategoryService(repositories.NewCategoryRepository(mt.DB), repositories.NewArticleRepository(mt.DB))
		err := svc.Delete(context.Background(), primitive.NewObjectID().Hex())
		if !errors.Is(err, ErrNotFound) {
			mt.Fatalf("expected ErrNotFound, got %v", err)
		}
	})
}
