package main

import (
	"context"
	"flag"
	"log"
	"time"

	"news-cms/cmd/internal/logger"
	"news-cms/config"
	"news-cms/db"
	"news-cms/feeder"
	"news-cms/models"
	"news-cms/repositories"
	"news-cms/sanitizer"
	"news-cms/semanticid"
)

// feedimport pulls the configured RSS sources and stores each entry as a
// draft news item, keyed by semantic ID so reruns update instead of
// duplicating.
func main() {
	limit := flag.Int("limit", 20, "max items per feed")
	flag.Parse()

	config.InitApp()
	logger.InitFromEnv("LOG_LEVEL")

	ctx := context.Background()
	if err := db.Init(ctx); err != nil {
		log.Fatal("failed to initialize MongoDB:", err)
	}

	cfg := config.GetConfig()
	if len(cfg.Feeds) == 0 {
		log.Fatal("no feeds configured; add a feeds section to config.yaml")
	}

	newsRepo := repositories.NewNewsRepository(db.Database())

	var fetched, stored, failed int
	for _, src := range cfg.Feeds {
		items, err := feeder.FetchRssFeeds(src.RSSURL, *limit)
		if err != nil {
			logger.Log.Errorf("fetch %s (%s): %v", src.Name, src.RSSURL, err)
			failed++
			continue
		}
		fetched += len(items)

		batch := make([]semanticid.Item, 0, len(items))
		for _, item := range items {
			published := item.PublishedAt
			if published.IsZero() {
				published = time.Now()
			}
			batch = append(batch, semanticid.Item{
				Title: item.Title,
				Date:  published.Format("20060102"),
			})
		}
		ids := semanticid.GenerateBatch(batch, nil)

		for i, item := range items {
			published := item.PublishedAt
			if published.IsZero() {
				published = time.Now()
			}

			body := item.Content
			if body == "" {
				body = item.Description
			}
			content := sanitizer.SanitizeLocalized(models.LocalizedText{En: body})

			n := models.News{
				SemanticID:  ids[i],
				Slug:        ids[i],
				Title:       models.LocalizedText{En: item.Title},
				Summary:     sanitizer.SanitizeLocalized(models.LocalizedText{En: item.Description}),
				Content:     content,
				Category:    src.Category,
				Author:      src.Name,
				Status:      models.StatusDraft,
				ReadTime:    sanitizer.LocalizedReadTime(content, cfg.Content.ReadingSpeed),
				ExternalURL: item.Link,
				PublishedAt: &published,
			}
			if _, err := newsRepo.UpsertBySemanticID(ctx, &n); err != nil {
				logger.Log.Errorf("upsert %s: %v", ids[i], err)
				failed++
				continue
			}
			stored++
		}
		logger.InfoWithFields("feed imported", logger.Fields{
			"source": src.Name,
			"items":  len(items),
		})
	}

	logger.InfoWithFields("feed import finished", logger.Fields{
		"fetched": fetched,
		"stored":  stored,
		"failed":  failed,
	})
}
