package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"news-cms/fieldnotes"
	"news-cms/models"
)

// browsableCollections is the allow-list for the database browser. Anything
// else answers 404 so the endpoint cannot be used to walk system
// collections.
var browsableCollections = map[string]bool{
	"news":       true,
	"articles":   true,
	"categories": true,
	"tags":       true,
	"adminuser":  true,
}

const browseMaxItems = 500

// bilingualFields are the top-level fields canonicalized to {zh, en} before
// leaving the browser, whatever legacy shape the document holds.
var bilingualFields = map[string]bool{
	"title":       true,
	"summary":     true,
	"content":     true,
	"name":        true,
	"description": true,
}

type AdminService struct {
	db    *mongo.Database
	notes *fieldnotes.Store
}

func NewAdminService(db *mongo.Database, notes *fieldnotes.Store) *AdminService {
	return &AdminService{db: db, notes: notes}
}

// CollectionData is the browser payload: the raw documents plus the union
// of field names seen across them.
type CollectionData struct {
	Collection string   `json:"collection"`
	Total      int64    `json:"total"`
	Fields     []string `json:"fields"`
	Items      []bson.M `json:"items"`
}

// FieldOperation mutates a field across a collection.
// Op is one of "add", "remove", "rename".
type FieldOperation struct {
	Op       string      `json:"op"`
	Field    string      `json:"field"`
	NewName  string      `json:"new_name,omitempty"`
	Default  interface{} `json:"default,omitempty"`
	ItemID   string      `json:"item_id,omitempty"`
	Language string      `json:"language,omitempty"`
}

// FieldOperationResult reports how many documents an operation touched.
type FieldOperationResult struct {
	Op       string `json:"op"`
	Field    string `json:"field"`
	Matched  int64  `json:"matched"`
	Modified int64  `json:"modified"`
}

// Browse loads up to browseMaxItems documents of a collection along with
// the union of their top-level field names. Bilingual values are
// canonicalized so the browser always sees {zh, en} objects, and password
// hashes never leave the server.
func (s *AdminService) Browse(ctx context.Context, collection string) (*CollectionData, error) {
	if !browsableCollections[collection] {
		return nil, fmt.Errorf("%w: collection %q", ErrNotFound, collection)
	}

	col := s.db.Collection(collection)
	total, err := col.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, err
	}

	findOpts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(browseMaxItems)
	cur, err := col.Find(ctx, bson.M{}, findOpts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	items := make([]bson.M, 0)
	if err := cur.All(ctx, &items); err != nil {
		return nil, err
	}

	fieldSet := map[string]bool{}
	for i, item := range items {
		if collection == "adminuser" {
			delete(item, "password")
		}
		for k, v := range item {
			fieldSet[k] = true
			if bilingualFields[k] {
				item[k] = models.Localize(v)
			}
		}
		items[i] = item
	}

	fields := make([]string, 0, len(fieldSet))
	for f := range fieldSet {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	return &CollectionData{
		Collection: collection,
		Total:      total,
		Fields:     fields,
		Items:      items,
	}, nil
}

// ApplyFieldOperation runs an add/remove/rename against a collection,
// optionally scoped to a single document.
func (s *AdminService) ApplyFieldOperation(ctx context.Context, collection string, op FieldOperation) (*FieldOperationResult, error) {
	if !browsableCollections[collection] {
		return nil, fmt.Errorf("%w: collection %q", ErrNotFound, collection)
	}
	field := strings.TrimSpace(op.Field)
	if field == "" {
		return nil, fmt.Errorf("%w: field is required", ErrValidation)
	}
	if field == "_id" || (collection == "adminuser" && field == "password") {
		return nil, fmt.Errorf("%w: field %q is protected", ErrValidation, field)
	}

	filter := bson.M{}
	if op.ItemID != "" {
		id, err := primitive.ObjectIDFromHex(op.ItemID)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrInvalidID, op.ItemID)
		}
		filter["_id"] = id
	}

	var update bson.M
	switch op.Op {
	case "add":
		// Only documents missing the field get the default, so re-running
		// the operation never clobbers data.
		filter[field] = bson.M{"$exists": false}
		value := op.Default
		if value == nil {
			value = ""
		}
		update = bson.M{"$set": bson.M{field: value}}
	case "remove":
		update = bson.M{"$unset": bson.M{field: ""}}
	case "rename":
		newName := strings.TrimSpace(op.NewName)
		if newName == "" {
			return nil, fmt.Errorf("%w: new_name is required for rename", ErrValidation)
		}
		if newName == "_id" {
			return nil, fmt.Errorf("%w: cannot rename to _id", ErrValidation)
		}
		update = bson.M{"$rename": bson.M{field: newName}}
	default:
		return nil, fmt.Errorf("%w: unknown op %q", ErrValidation, op.Op)
	}

	res, err := s.db.Collection(collection).UpdateMany(ctx, filter, update)
	if err != nil {
		return nil, err
	}
	return &FieldOperationResult{
		Op:       op.Op,
		Field:    field,
		Matched:  res.MatchedCount,
		Modified: res.ModifiedCount,
	}, nil
}

// FieldComments returns the side-file annotations.
func (s *AdminService) FieldComments() (map[string]string, error) {
	return s.notes.Load()
}

// SetFieldComment stores or clears the annotation for one field. An empty
// comment deletes the entry.
func (s *AdminService) SetFieldComment(field, comment string) (map[string]string, error) {
	field = strings.TrimSpace(field)
	if field == "" {
		return nil, fmt.Errorf("%w: field is required", ErrValidation)
	}

	comments, err := s.notes.Load()
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(comment) == "" {
		delete(comments, field)
	} else {
		comments[field] = comment
	}
	if err := s.notes.Save(comments); err != nil {
		return nil, err
	}
	return comments, nil
}
