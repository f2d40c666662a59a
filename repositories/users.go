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

type UserRepository struct {
	col *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{col: db.Collection("adminuser")}
}

// FindActiveByLogin looks up an active account by username or email.
func (r *UserRepository) FindActiveByLogin(ctx context.Context, login string) (*models.AdminUser, error) {
	filter := bson.M{
		"$or":       bson.A{bson.M{"username": login}, bson.M{"email": login}},
		"is_active": true,
	}
	var u models.AdminUser
	if err := r.col.FindOne(ctx, filter).Decode(&u); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.AdminUser, error) {
	var u models.AdminUser
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&u); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) List(ctx context.Context) ([]models.AdminUser, error) {
	cur, err := r.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	items := make([]models.AdminUser, 0)
	if err := cur.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.col.UpdateByID(ctx, id, bson.M{"$set": bson.M{"last_login": time.Now()}})
	return err
}

// UpsertByUsername creates or refreshes an account. Used by the seeding
// command; the password must already be hashed.
func (r *UserRepository) UpsertByUsername(ctx context.Context, u *models.AdminUser) (*mongo.UpdateResult, error) {
	now := time.Now()
	if u.CreatedAt.IsZero() {
		u.CreatedAt = now
	}
	u.UpdatedAt = now

	filter := bson.M{"username": u.Username}
	update := bson.M{
		"$setOnInsert": bson.M{
			"created_at": u.CreatedAt,
		},
		"$set": bson.M{
			"updated_at": u.UpdatedAt,
			"email":      u.Email,
			"password":   u.Password,
			"role":       u.Role,
			"is_active":  u.IsActive,
		},
	}
	opts := options.Update().SetUpsert(true)
	return r.col.UpdateOne(ctx, filter, update, opts)
}
