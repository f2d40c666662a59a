package repositories

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"news-cms/models"
)

type TagRepository struct {
	col *mongo.Collection
}

func NewTagRepository(db *mongo.Database) *TagRepository {
	return &TagRepository{col: db.Collection("tags")}
}

func (r *TagRepository) List(ctx context.Context, activeOnly bool) ([]models.Tag, error) {
	filter := bson.M{}
	if activeOnly {
		filter["is_active"] = true
	}
	cur, err := r.col.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	items := make([]models.Tag, 0)
	if err := cur.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *TagRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Tag, error) {
	var t models.Tag
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&t); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &t, nil
}

// ExistsByValue checks slug uniqueness, optionally excluding the document
// being updated.
func (r *TagRepository) ExistsByValue(ctx context.Context, value string, excludeID primitive.ObjectID) (bool, error) {
	filter := bson.M{"value": value}
	if !excludeID.IsZero() {
		filter["_id"] = bson.M{"$ne": excludeID}
	}
	count, err := r.col.CountDocuments(ctx, filter, options.Count().SetLimit(1))
	return count > 0, err
}

func (r *TagRepository) Insert(ctx context.Context, t *models.Tag) (primitive.ObjectID, error) {
	now := time.Now()
	if t.CreatedAt.IsZero() {
		t.CreatedAt = now
	}
	t.UpdatedAt = now
	res, err := r.col.InsertOne(ctx, t)
	if err != nil {
		return primitive.NilObjectID, err
	}
	id, _ := res.InsertedID.(primitive.ObjectID)
	t.ID = id
	return id, nil
}

func (r *TagRepository) Update(ctx context.Context, id primitive.ObjectID, set bson.M) error {
	set["updated_at"] = time.Now()
	res, err := r.col.UpdateByID(ctx, id, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *TagRepository) Delete(ctx context.Context, id primitive.ObjectID) (bool, error) {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

// IncArticleCount adjusts the denormalized counter with $inc only.
func (r *TagRepository) IncArticleCount(ctx context.Context, id primitive.ObjectID, delta int) error {
	_, err := r.col.UpdateByID(ctx, id, bson.M{
		"$inc": bson.M{"article_count": delta},
		"$set": bson.M{"updated_at": time.Now()},
	})
	return err
}

// SetArticleCount overwrites the counter with a recomputed value.
func (r *TagRepository) SetArticleCount(ctx context.Context, id primitive.ObjectID, count int64) error {
	_, err := r.col.UpdateByID(ctx, id, bson.M{
		"$set": bson.M{"article_count": count, "updated_at": time.Now()},
	})
	return err
}
