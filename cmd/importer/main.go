package main

import (
	"context"
	"flag"
	"time"

	"github.com/sirupsen/logrus"

	"movienuts/internal/cache"
	"movienuts/internal/config"
	"movienuts/internal/db"
	"movienuts/internal/repository"
	"movienuts/internal/service"
	"movienuts/internal/tmdb"
)

func main() {
	start := flag.Int("start", 1, "first TMDB page to import")
	pages := flag.Int("pages", 5, "number of pages to import")
	flag.Parse()

	log := logrus.New()

	cfg := config.Load()
	if cfg.TMDBAccessToken == "" {
		log.Fatal("TMDB_ACCESS_TOKEN is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	database, err := db.NewMongo(ctx, cfg.MongoURI, cfg.MongoDatabase)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}
	if err := db.EnsureIndexes(ctx, database); err != nil {
		log.Fatalf("ensure indexes: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	movieRepo := repository.NewMovieRepository(database)
	tmdbClient := tmdb.New(cfg.TMDBBaseURL, cfg.TMDBAccessToken, log.WithField("component", "tmdb"))
	movieService := service.NewMovieService(movieRepo, tmdbClient, cacheClient, log.WithField("component", "importer"))

	var total int64
	for page := *start; page < *start+*pages; page++ {
		imported, err := movieService.ImportPopular(ctx, page)
		if err != nil {
			log.WithError(err).Fatalf("import page %d", page)
		}
		if imported == 0 {
			log.WithField("page", page).Info("no more results, stopping")
			break
		}
		total += imported

		// Stay under TMDB's rate limit.
		time.Sleep(250 * time.Millisecond)
	}

	log.WithField("total", total).Info("catalog import finished")
}
