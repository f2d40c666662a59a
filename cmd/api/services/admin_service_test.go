package services

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"news-cms/fieldnotes"
)

func TestApplyFieldOperationRejectsUnknownCollection(t *testing.T) {
	svc := NewAdminService(nil, fieldnotes.NewStore(filepath.Join(t.TempDir(), "fc.json")))

	_, err := svc.ApplyFieldOperation(context.Background(), "system.users", FieldOperation{Op: "add", Field: "x"})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestApplyFieldOperationValidation(t *testing.T) {
	svc := NewAdminService(nil, fieldnotes.NewStore(filepath.Join(t.TempDir(), "fc.json")))
	ctx := context.Background()

	testCases := []struct {
		name       string
		collection string
		op         FieldOperation
	}{
		{name: "empty field", collection: "news", op: FieldOperation{Op: "add"}},
		{name: "protected _id", collection: "news", op: FieldOperation{Op: "remove", Field: "_id"}},
		{name: "protected password", collection: "adminuser", op: FieldOperation{Op: "remove", Field: "password"}},
		{name: "rename without new name", collection: "news", op: FieldOperation{Op: "rename", Field: "weekday"}},
		{name: "rename to _id", collection: "news", op: FieldOperation{Op: "rename", Field: "weekday", NewName: "_id"}},
		{name: "unknown op", collection: "news", op: FieldOperation{Op: "upsert", Field: "weekday"}},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			_, err := svc.ApplyFieldOperation(ctx, testCase.collection, testCase.op)
			if !errors.Is(err, ErrValidation) {
				t.Fatalf("expected ErrValidation, got %v", err)
			}
		})
	}
}

func TestApplyFieldOperationRejectsMalformedItemID(t *testing.T) {
	svc := NewAdminService(nil, fieldnotes.NewStore(filepath.Join(t.TempDir(), "fc.json")))

	_, err := svc.ApplyFieldOperation(context.Background(), "news", FieldOperation{
		Op:     "remove",
		Field:  "weekday",
		ItemID: "not-a-hex-id",
	})
	if !errors.Is(err, ErrInvalidID) {
		t.Fatalf("expected ErrInvalidID, got %v", err)
	}
}

func TestSetFieldCommentRoundTrip(t *testing.T) {
	svc := NewAdminService(nil, fieldnotes.NewStore(filepath.Join(t.TempDir(), "fc.json")))

	comments, err := svc.SetFieldComment("weekday", "day of week the item was scraped")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if comments["weekday"] == "" {
		t.Fatalf("expected the comment to be stored")
	}

	loaded, err := svc.FieldComments()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if loaded["weekday"] != "day of week the item was scraped" {
		t.Fatalf("expected comment to round trip, got %q", loaded["weekday"])
	}

	// empty comment deletes the entry
	comments, err = svc.SetFieldComment("weekday", "  ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := comments["weekday"]; ok {
		t.Fatalf("expected the comment to be removed")
	}
}

func TestSetFieldCommentRequiresField(t *testing.T) {
	svc := NewAdminService(nil, fieldnotes.NewStore(filepath.Join(t.TempDir(), "fc.json")))

	_, err := svc.SetFieldComment("   ", "comment")
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}
