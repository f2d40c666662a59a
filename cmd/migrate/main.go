package main

import (
	"context"
	"log"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"news-cms/cmd/internal/logger"
	"news-cms/config"
	"news-cms/db"
	"news-cms/models"
)

// bilingual fields per collection that legacy documents may hold as bare
// strings or JSON-encoded strings instead of {zh, en} documents.
var migrations = map[string][]string{
	"news":       {"title", "summary", "content"},
	"articles":   {"title", "summary", "content"},
	"categories": {"name", "description"},
	"tags":       {"name", "description"},
}

// migrate rewrites legacy bilingual fields into the canonical {zh, en}
// shape. Documents already canonical are left untouched, so the command can
// run any number of times.
func main() {
	config.InitApp()
	logger.InitFromEnv("LOG_LEVEL")

	ctx := context.Background()
	if err := db.Init(ctx); err != nil {
		log.Fatal("failed to initialize MongoDB:", err)
	}

	var totalScanned, totalUpdated int
	for collection, fields := range migrations {
		scanned, updated, err := migrateCollection(ctx, db.Database().Collection(collection), fields)
		if err != nil {
			log.Fatalf("migrate %s: %v", collection, err)
		}
		totalScanned += scanned
		totalUpdated += updated
		logger.InfoWithFields("collection migrated", logger.Fields{
			"collection": collection,
			"scanned":    scanned,
			"updated":    updated,
		})
	}

	logger.InfoWithFields("migration finished", logger.Fields{
		"scanned": totalScanned,
		"updated": totalUpdated,
	})
}

func migrateCollection(ctx context.Context, col *mongo.Collection, fields []string) (int, int, error) {
	cur, err := col.Find(ctx, bson.M{})
	if err != nil {
		return 0, 0, err
	}
	defer cur.Close(ctx)

	var scanned, updated int
	for cur.Next(ctx) {
		var doc bson.M
		if err := cur.Decode(&doc); err != nil {
			return scanned, updated, err
		}
		scanned++

		set := bson.M{}
		for _, field := range fields {
			v, ok := doc[field]
			if !ok || isCanonical(v) {
				continue
			}
			set[field] = models.Localize(v)
		}
		if len(set) == 0 {
			continue
		}

		if _, err := col.UpdateByID(ctx, doc["_id"], bson.M{"$set": set}); err != nil {
			return scanned, updated, err
		}
		updated++
	}
	return scanned, updated, cur.Err()
}

// isCanonical reports whether a stored value is already a {zh, en}
// sub-document with string values.
func isCanonical(v interface{}) bool {
	var m map[string]interface{}
	switch val := v.(type) {
	case bson.M:
		m = val
	case bson.D:
		m = make(map[string]interface{}, len(val))
		for _, e := range val {
			m[e.Key] = e.Value
		}
	default:
		return false
	}
	if len(m) != 2 {
		return false
	}
	_, zhOK := m["zh"].(string)
	_, enOK := m["en"].(string)
	return zhOK && enOK
}
