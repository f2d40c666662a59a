package services

import (
	"context"
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"news-cms/models"
	"news-cms/repositories"
)

func newMockArticleService(mt *mtest.T) *ArticleService {
	return NewArticleService(
		repositories.NewArticleRepository(mt.DB),
		repositories.NewCategoryRepository(mt.DB),
		repositories.NewTagRepository(mt.DB),
		repositories.NewUserRepository(mt.DB),
		0,
	)
}

func TestArticleGetCountsView(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("read bumps views once", func(mt *mtest.T) {
		id := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "value", Value: bson.D{
				{Key: "_id", Value: id},
				{Key: "status", Value: models.StatusPublished},
				{Key: "views", Value: int64(9)},
			}},
			bson.E{Key: "lastErrorObject", Value: bson.D{
				{Key: "n", Value: 1},
				{Key: "updatedExisting", Value: true},
			}},
		))

		svc := newMockArticleService(mt)
		a, err := svc.Get(context.Background(), id.Hex(), true, true)
		if err != nil {
			mt.Fatalf("Get: %v", err)
		}
		if a.Views != 9 {
			mt.Fatalf("views = %d, want the post-increment value 9", a.Views)
		}

		evt := mt.GetStartedEvent()
		if evt == nil || evt.CommandName != "findAndModify" {
			mt.Fatalf("expected a findAndModify command, got %+v", evt)
		}
		if inc, ok := evt.Command.Lookup("update", "$inc", "views").AsInt64OK(); !ok || inc != 1 {
			mt.Fatalf("$inc views = %d (ok=%v), want 1", inc, ok)
		}
	})

	mt.Run("admin read leaves views alone", func(mt *mtest.T) {
		id := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "newscms.articles", mtest.FirstBatch, bson.D{
			{Key: "_id", Value: id},
			{Key: "status", Value: models.StatusDraft},
			{Key: "views", Value: int64(9)},
		}))

		svc := newMockArticleService(mt)
		if _, err := svc.Get(context.Background(), id.Hex(), false, false); err != nil {
			mt.Fatalf("Get: %v", err)
		}

		evt := mt.GetStartedEvent()
		if evt == nil || evt.CommandName != "find" {
			mt.Fatalf("expected a plain find command, got %+v", evt)
		}
	})
}

func TestArticleDeleteMissing(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("unknown id is not found", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "newscms.articles", mtest.FirstBatch))

		svc := newMockArticleService(mt)
		err := svc.Delete(context.Background(), primitive.NewObjectID().Hex())
		if !errors.Is(err, ErrNotFound) {
			mt.Fatalf("expected ErrNotFound, got %v", err)
		}
	})
}
