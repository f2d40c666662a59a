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

type ArticleRepository struct {
	col *mongo.Collection
}

func NewArticleRepository(db *mongo.Database) *ArticleRepository {
	return &ArticleRepository{col: db.Collection("articles")}
}

type ListArticlesOptions struct {
	Page        int
	PageSize    int
	Category    primitive.ObjectID
	Tag         primitive.ObjectID
	Status      string
	Search      string
	IsHot       *bool
	IsImportant *bool
	IsCritical  *bool
}

// Normalize clamps paging to the served range: page is 1-based, page size
// runs 1..100 and defaults to 10. List applies it; callers echoing paging
// back to the client must use the normalized values so both agree.
func (o ListArticlesOptions) Normalize() ListArticlesOptions {
	if o.Page < 1 {
		o.Page = 1
	}
	if o.PageSize < 1 {
		o.PageSize = 10
	}
	if o.PageSize > 100 {
		o.PageSize = 100
	}
	return o
}

func (o ListArticlesOptions) filter() bson.M {
	filter := bson.M{}
	if !o.Category.IsZero() {
		filter["category"] = o.Category
	}
	if !o.Tag.IsZero() {
		filter["tags"] = o.Tag
	}
	if o.Status != "" {
		filter["status"] = o.Status
	}
	if o.Search != "" {
		filter["$text"] = bson.M{"$search": o.Search}
	}
	if o.IsHot != nil {
		filter["is_hot"] = *o.IsHot
	}
	if o.IsImportant != nil {
		filter["is_important"] = *o.IsImportant
	}
	if o.IsCritical != nil {
		filter["is_critical"] = *o.IsCritical
	}
	return filter
}

func (r *ArticleRepository) List(ctx context.Context, opts ListArticlesOptions) ([]models.Article, int64, error) {
	opts = opts.Normalize()

	filter := opts.filter()
	findOpts := options.Find().
		SetSort(bson.D{{Key: "published_at", Value: -1}, {Key: "created_at", Value: -1}}).
		SetSkip(int64((opts.Page - 1) * opts.PageSize)).
		SetLimit(int64(opts.PageSize))

	cur, err := r.col.Find(ctx, filter, findOpts)
	if err != nil {
		return nil, 0, err
	}
	defer cur.Close(ctx)

	items := make([]models.Article, 0, opts.PageSize)
	if err := cur.All(ctx, &items); err != nil {
		return nil, 0, err
	}

	total, err := r.col.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (r *ArticleRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Article, error) {
	var a models.Article
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&a); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}

// FindByIDAndIncrementViews atomically bumps the view counter by one and
// returns the updated document. Reads race-free under concurrency because
// the increment happens server-side, never read-modify-write.
func (r *ArticleRepository) FindByIDAndIncrementViews(ctx context.Context, id primitive.ObjectID) (*models.Article, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var a models.Article
	err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$inc": bson.M{"views": 1}}, opts).Decode(&a)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}

func (r *ArticleRepository) ExistsBySemanticID(ctx context.Context, semanticID string, excludeID primitive.ObjectID) (bool, error) {
	filter := bson.M{"semantic_id": semanticID}
	if !excludeID.IsZero() {
		filter["_id"] = bson.M{"$ne": excludeID}
	}
	count, err := r.col.CountDocuments(ctx, filter, options.Count().SetLimit(1))
	return count > 0, err
}

func (r *ArticleRepository) Insert(ctx context.Context, a *models.Article) (primitive.ObjectID, error) {
	now := time.Now()
	if a.CreatedAt.IsZero() {
		a.CreatedAt = now
	}
	a.UpdatedAt = now
	res, err := r.col.InsertOne(ctx, a)
	if err != nil {
		return primitive.NilObjectID, err
	}
	id, _ := res.InsertedID.(primitive.ObjectID)
	a.ID = id
	return id, nil
}

func (r *ArticleRepository) Update(ctx context.Context, id primitive.ObjectID, set bson.M) error {
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

func (r *ArticleRepository) Delete(ctx context.Context, id primitive.ObjectID) (bool, error) {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

// CountByCategory recomputes the true number of articles referencing a
// category, for reconciling the denormalized counter.
func (r *ArticleRepository) CountByCategory(ctx context.Context, categoryID primitive.ObjectID) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{"category": categoryID})
}

// CountByTag recomputes the true number of articles referencing a tag.
func (r *ArticleRepository) CountByTag(ctx context.Context, tagID primitive.ObjectID) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{"tags": tagID})
}
