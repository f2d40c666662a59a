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

func TestTagValueConflicts(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("create refuses a taken value", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "newscms.tags", mtest.FirstBatch, bson.D{{Key: "n", Value: 1}}))

		svc := NewTagService(repositories.NewTagRepository(mt.DB), nil)
		name := models.LocalizedText{Zh: "机器学习", En: "Machine Learning"}
		_, err := svc.Create(context.Background(), dto.CreateTagRequest{Name: &name})
		if !errors.Is(err, ErrConflict) {
			mt.Fatalf("expected ErrConflict, got %v", err)
		}
	})

	mt.Run("update refuses a value owned by another tag", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "newscms.tags", mtest.FirstBatch, bson.D{{Key: "n", Value: 1}}))

		svc := NewTagService(repositories.NewTagRepository(mt.DB), nil)
		value := "machine-learning"
		_, err := svc.Update(context.Background(), primitive.NewObjectID().Hex(), dto.UpdateTagRequest{Value: &value})
		if !errors.Is(err, ErrConflict) {
			mt.Fatalf("expected ErrConflict, got %v", err)
		}
	})
}

func TestTagDeleteMissing(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("unknown id is not found", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}))

		svc := NewTagService(repositories.NewTagRepository(mt.DB), nil)
		err := svc.Delete(context.Background(), primitive.NewObjectID().Hex())
		if !errors.Is(err, ErrNotFound) {
			mt.Fatalf("expected ErrNotFound, got %v", err)
		}
	})
}
