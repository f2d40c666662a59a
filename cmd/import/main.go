package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"
	"time"

	"github.com/google/uuid"

	"news-cms/cmd/internal/logger"
	"news-cms/config"
	"news-cms/db"
	"news-cms/models"
	"news-cms/repositories"
	"news-cms/sanitizer"
	"news-cms/semanticid"
)

// importRecord is one entry of the dump file. Bilingual fields accept the
// canonical {zh,en} object, a JSON-encoded string, or a bare string.
type importRecord struct {
	SemanticID  string               `json:"semanticId"`
	Slug        string               `json:"slug"`
	Title       models.LocalizedText `json:"title"`
	Summary     models.LocalizedText `json:"summary"`
	Content     models.LocalizedText `json:"content"`
	Category    string               `json:"category"`
	Tags        []string             `json:"tags"`
	Author      string               `json:"author"`
	Status      string               `json:"status"`
	Views       int64                `json:"views"`
	ImageURL    string               `json:"imageUrl"`
	ExternalURL string               `json:"externalUrl"`
	PublishedAt *time.Time           `json:"publishedAt"`
}

// import reads a JSON dump and upserts every record by semantic ID. A bad
// record is logged and skipped; there is no rollback.
func main() {
	file := flag.String("file", "", "path to the JSON dump (array of news records)")
	flag.Parse()
	if *file == "" {
		log.Fatal("usage: import -file <dump.json>")
	}

	config.InitApp()
	logger.InitFromEnv("LOG_LEVEL")

	ctx := context.Background()
	if err := db.Init(ctx); err != nil {
		log.Fatal("failed to initialize MongoDB:", err)
	}

	data, err := os.ReadFile(*file)
	if err != nil {
		log.Fatal("read dump:", err)
	}
	var records []importRecord
	if err := json.Unmarshal(data, &records); err != nil {
		log.Fatal("parse dump:", err)
	}

	batchID := uuid.NewString()
	logger.InfoWithFields("import started", logger.Fields{
		"batch_id": batchID,
		"file":     *file,
		"records":  len(records),
	})

	cfg := config.GetConfig()
	newsRepo := repositories.NewNewsRepository(db.Database())

	var stored, skipped int
	dateCounts := map[string]int{}
	for i, rec := range records {
		if rec.Title.IsEmpty() {
			logger.Log.Warnf("batch %s record %d: missing title, skipped", batchID, i)
			skipped++
			continue
		}

		semanticID := rec.SemanticID
		if semanticID == "" {
			published := time.Now()
			if rec.PublishedAt != nil {
				published = *rec.PublishedAt
			}
			date := published.Format("20060102")
			dateCounts[date]++
			semanticID = semanticid.Generate(rec.Title.In("en"), date, dateCounts[date], "", "")
		}

		status := rec.Status
		if status == "" {
			status = models.StatusDraft
		}
		if !models.ValidStatus(status) {
			logger.Log.Warnf("batch %s record %d: unknown status %q, skipped", batchID, i, rec.Status)
			skipped++
			continue
		}

		slug := rec.Slug
		if slug == "" {
			slug = semanticID
		}

		content := sanitizer.SanitizeLocalized(rec.Content)
		n := models.News{
			SemanticID:  semanticID,
			Slug:        slug,
			Title:       rec.Title,
			Summary:     sanitizer.SanitizeLocalized(rec.Summary),
			Content:     content,
			Category:    rec.Category,
			Tags:        rec.Tags,
			Author:      rec.Author,
			Status:      status,
			Views:       rec.Views,
			ReadTime:    sanitizer.LocalizedReadTime(content, cfg.Content.ReadingSpeed),
			ImageURL:    rec.ImageURL,
			ExternalURL: rec.ExternalURL,
			PublishedAt: rec.PublishedAt,
		}
		if _, err := newsRepo.UpsertBySemanticID(ctx, &n); err != nil {
			logger.Log.Errorf("batch %s record %d (%s): %v", batchID, i, semanticID, err)
			skipped++
			continue
		}
		stored++
	}

	logger.InfoWithFields("import finished", logger.Fields{
		"batch_id": batchID,
		"stored":   stored,
		"skipped":  skipped,
	})
}
