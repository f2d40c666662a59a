package services

import (
	"context"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"news-cms/repositories"
)

func TestListUsersStripsPasswordHashes(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("lists every account", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "newscms.adminuser", mtest.FirstBatch,
			bson.D{
				{Key: "_id", Value: primitive.NewObjectID()},
				{Key: "username", Value: "root"},
				{Key: "email", Value: "root@example.com"},
				{Key: "password", Value: "$2a$10$abcdefghijklmnopqrstuv"},
				{Key: "role", Value: "admin"},
				{Key: "is_active", Value: true},
			},
			bson.D{
				{Key: "_id", Value: primitive.NewObjectID()},
				{Key: "username", Value: "editor"},
				{Key: "email", Value: "editor@example.com"},
				{Key: "password", Value: "$2a$10$abcdefghijklmnopqrstuv"},
				{Key: "role", Value: "editor"},
				{Key: "is_active", Value: false},
			},
		))

		svc := NewAuthService(repositories.NewUserRepository(mt.DB), nil)
		users, err := svc.ListUsers(context.Background())
		if err != nil {
			mt.Fatalf("ListUsers: %v", err)
		}
		if len(users) != 2 {
			mt.Fatalf("got %d users, want 2", len(users))
		}
		if users[0].Username != "root" || users[0].Role != "admin" {
			mt.Fatalf("first user = %+v", users[0])
		}
		if users[1].Username != "editor" || users[1].IsActive {
			mt.Fatalf("second user = %+v", users[1])
		}
	})
}
