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

type CategoryRepository struct {
	col *mongo.Collection
}

func NewCategoryRepository(db *mongo.Database) *CategoryRepository {
	return &CategoryRepository{col: db.Collection("categories")}
}

// List returns every category ordered by display_order. An absent
// collection yields an empty slice.
func (r *CategoryRepository) List(ctx context.Context, activeOnly bool) ([]models.Category, error) {
	filter := bson.M{}
	if activeOnly {
		filter["is_active"] = true
	}
	cur, err := r.col.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "display_order", Value: 1}, {Key: "created_at", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	items := make([]models.Category, 0)
	if err := cur.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *CategoryRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Category, error) {
	var c models.Category
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&c); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *CategoryRepository) ExistsByValue(ctx context.Context, value string, excludeID primitive.ObjectID) (bool, error) {
	filter := bson.M{"value": value}
	if !excludeID.IsZero() {
		filter["_id"] = bson.M{"$ne": excludeID}
	}
	count, err := r.col.CountDocuments(ctx, filter, options.Count().SetLimit(1))
	return count > 0, err
}

func (r *CategoryRepository) Insert(ctx context.Context, c *models.Category) (primitive.ObjectID, error) {
	now := time.Now()
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now
	}
	c.UpdatedAt = now
	res, err := r.col.InsertOne(ctx, c)
	if err != nil {
		return primitive.NilObjectID, err
	}
	id, _ := res.InsertedID.(primitive.ObjectID)
	c.ID = id
	return id, nil
}

func (r *CategoryRepository) Update(ctx context.Context, id primitive.ObjectID, set bson.M) error {
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

func (r *CategoryRepository) Delete(ctx context.Context, id primitive.ObjectID) (bool, error) {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

// IncArticleCount adjusts the denormalized article counter with $inc only.
// Cross-entity consistency stays best-effort; there is no transaction tying
// this to the article write that triggered it.
func (r *CategoryRepository) IncArticleCount(ctx context.Context, id primitive.ObjectID, delta int) error {
	_, err := r.col.UpdateByID(ctx, id, bson.M{
		"$inc": bson.M{"article_count": delta},
		"$set": bson.M{"updated_at": time.Now()},
	})
	return err
}

// SetArticleCount overwrites the counter with a recomputed value.
func (r *CategoryRepository) SetArticleCount(ctx context.Context, id primitive.ObjectID, count int64) error {
	_, err := r.col.UpdateByID(ctx, id, bson.M{
		"$set": bson.M{"article_count": count, "updated_at": time.Now()},
	})
	return err
}
