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

type NewsRepository struct {
	col *mongo.Collection
}

func NewNewsRepository(db *mongo.Database) *NewsRepository {
	return &NewsRepository{col: db.Collection("news")}
}

// ListNewsOptions narrows and pages the news listing.
type ListNewsOptions struct {
	Page     int
	PageSize int
	Category string
	Status   string
	Tag      string
	Search   string
}

// Normalize clamps paging to the served range: page is 1-based, page size
// runs 1..100 and defaults to 20. List applies it; callers echoing paging
// back to the client must use the normalized values so both agree.
func (o ListNewsOptions) Normalize() ListNewsOptions {
	if o.Page < 1 {
		o.Page = 1
	}
	if o.PageSize < 1 {
		o.PageSize = 20
	}
	if o.PageSize > 100 {
		o.PageSize = 100
	}
	return o
}

func (o ListNewsOptions) filter() bson.M {
	filter := bson.M{}
	if o.Category != "" {
		filter["category"] = o.Category
	}
	if o.Status != "" {
		filter["status"] = o.Status
	}
	if o.Tag != "" {
		filter["tags"] = o.Tag
	}
	if o.Search != "" {
		filter["$text"] = bson.M{"$search": o.Search}
	}
	return filter
}

// List returns a page of news plus the total match count. Querying a
// collection that does not exist yet yields an empty page, not an error.
func (r *NewsRepository) List(ctx context.Context, opts ListNewsOptions) ([]models.News, int64, error) {
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

	items := make([]models.News, 0, opts.PageSize)
	if err := cur.All(ctx, &items); err != nil {
		return nil, 0, err
	}

	total, err := r.col.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (r *NewsRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.News, error) {
	var n models.News
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&n); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &n, nil
}

func (r *NewsRepository) FindBySemanticID(ctx context.Context, semanticID string) (*models.News, error) {
	var n models.News
	if err := r.col.FindOne(ctx, bson.M{"semantic_id": semanticID}).Decode(&n); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &n, nil
}

// ExistsBySemanticID reports whether another document already claims the
// semantic ID. excludeID may be the zero ObjectID for create checks.
func (r *NewsRepository) ExistsBySemanticID(ctx context.Context, semanticID string, excludeID primitive.ObjectID) (bool, error) {
	filter := bson.M{"semantic_id": semanticID}
	if !excludeID.IsZero() {
		filter["_id"] = bson.M{"$ne": excludeID}
	}
	count, err := r.col.CountDocuments(ctx, filter, options.Count().SetLimit(1))
	return count > 0, err
}

func (r *NewsRepository) ExistsBySlug(ctx context.Context, slug string, excludeID primitive.ObjectID) (bool, error) {
	filter := bson.M{"slug": slug}
	if !excludeID.IsZero() {
		filter["_id"] = bson.M{"$ne": excludeID}
	}
	count, err := r.col.CountDocuments(ctx, filter, options.Count().SetLimit(1))
	return count > 0, err
}

// Insert stores a new document with server-assigned timestamps.
func (r *NewsRepository) Insert(ctx context.Context, n *models.News) (primitive.ObjectID, error) {
	now := time.Now()
	if n.CreatedAt.IsZero() {
		n.CreatedAt = now
	}
	n.UpdatedAt = now
	res, err := r.col.InsertOne(ctx, n)
	if err != nil {
		return primitive.NilObjectID, err
	}
	id, _ := res.InsertedID.(primitive.ObjectID)
	n.ID = id
	return id, nil
}

// Update merges the given fields into the document and refreshes
// updated_at. Missing documents surface as ErrNotFound.
func (r *NewsRepository) Update(ctx context.Context, id primitive.ObjectID, set bson.M) error {
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

// Delete hard-deletes and reports whether a document was actually removed.
func (r *NewsRepository) Delete(ctx context.Context, id primitive.ObjectID) (bool, error) {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

// UpsertBySemanticID inserts or replaces the mutable fields of a news item
// identified by its semantic ID. Used by the batch import commands.
func (r *NewsRepository) UpsertBySemanticID(ctx context.Context, n *models.News) (*mongo.UpdateResult, error) {
	now := time.Now()
	if n.CreatedAt.IsZero() {
		n.CreatedAt = now
	}
	n.UpdatedAt = now

	filter := bson.M{"semantic_id": n.SemanticID}
	update := bson.M{
		"$setOnInsert": bson.M{
			"created_at": n.CreatedAt,
			"views":      n.Views,
		},
		"$set": bson.M{
			"updated_at":   n.UpdatedAt,
			"slug":         n.Slug,
			"title":        n.Title,
			"summary":      n.Summary,
			"content":      n.Content,
			"category":     n.Category,
			"tags":         n.Tags,
			"author":       n.Author,
			"status":       n.Status,
			"read_time":    n.ReadTime,
			"is_hot":       n.IsHot,
			"is_important": n.IsImportant,
			"is_critical":  n.IsCritical,
			"image_url":    n.ImageURL,
			"external_url": n.ExternalURL,
			"published_at": n.PublishedAt,
		},
	}
	opts := options.Update().SetUpsert(true)
	return r.col.UpdateOne(ctx, filter, update, opts)
}
