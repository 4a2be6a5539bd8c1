package service

import (
	"context"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"movienuts/internal/cache"
	"movienuts/internal/model"
	"movienuts/internal/repository"
	"movienuts/internal/tmdb"
)

const (
	movieListCacheKey = "movies:all"
	movieListCacheTTL = 5 * time.Minute
	genreListCacheKey = "movies:genres"
	genreListCacheTTL = time.Hour
	searchResultLimit = 10
)

// MovieService serves the locally cached catalog and runs imports from
// the upstream catalog.
type MovieService interface {
	List(ctx context.Context) ([]model.Movie, error)
	Genres(ctx context.Context) ([]string, error)
	Search(ctx context.Context, query string) ([]model.MovieSummary, error)
	ImportPopular(ctx context.Context, page int) (int64, error)
}

type movieService struct {
	movieRepo repository.MovieRepository
	tmdb      *tmdb.Client
	cache     *cache.Client
	log       *logrus.Entry
}

// NewMovieService creates a new movie service.
func NewMovieService(movieRepo repository.MovieRepository, tmdbClient *tmdb.Client, cacheClient *cache.Client, log *logrus.Entry) MovieService {
	return &movieService{
		movieRepo: movieRepo,
		tmdb:      tmdbClient,
		cache:     cacheClient,
		log:       log,
	}
}

// List returns the whole local catalog, redis-cached.
func (s *movieService) List(ctx context.Context) ([]model.Movie, error) {
	var cached []model.Movie
	if hit, _ := s.cache.GetJSON(ctx, movieListCacheKey, &cached); hit {
		return cached, nil
	}

	movies, err := s.movieRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	_ = s.cache.SetJSON(ctx, movieListCacheKey, movies, movieListCacheTTL)
	return movies, nil
}

// Genres returns every distinct genre name, sorted, redis-cached.
func (s *movieService) Genres(ctx context.Context) ([]string, error) {
	var cached []string
	if hit, _ := s.cache.GetJSON(ctx, genreListCacheKey, &cached); hit {
		return cached, nil
	}

	genres, err := s.movieRepo.Genres(ctx)
	if err != nil {
		return nil, err
	}

	_ = s.cache.SetJSON(ctx, genreListCacheKey, genres, genreListCacheTTL)
	return genres, nil
}

// Search matches local titles case-insensitively. An empty query returns
// an empty result instead of the whole catalog.
func (s *movieService) Search(ctx context.Context, query string) ([]model.MovieSummary, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []model.MovieSummary{}, nil
	}
	return s.movieRepo.SearchByTitle(ctx, query, searchResultLimit)
}

// ImportPopular fetches one page of TMDB's popular listing and upserts it
// into the local catalog keyed on tmdbId.
func (s *movieService) ImportPopular(ctx context.Context, page int) (int64, error) {
	if page < 1 {
		page = 1
	}

	genreMap, err := s.tmdb.Genres(ctx)
	if err != nil {
		return 0, err
	}

	results, err := s.tmdb.Popular(ctx, page)
	if err != nil {
		return 0, err
	}
	if len(results) == 0 {
		return 0, nil
	}

	movies := make([]model.Movie, 0, len(results))
	for _, m := range results {
		genres := make([]string, 0, len(m.GenreIDs))
		for _, id := range m.GenreIDs {
			if name, ok := genreMap[id]; ok {
				genres = append(genres, name)
			}
		}
		movies = append(movies, model.Movie{
			TMDBID:       m.ID,
			Title:        m.Title,
			Overview:     m.Overview,
			ReleaseDate:  m.ReleaseDate,
			PosterPath:   m.PosterPath,
			BackdropPath: m.BackdropPath,
			Rating:       m.VoteAverage,
			Genres:       genres,
		})
	}

	imported, err := s.movieRepo.BulkUpsert(ctx, movies)
	if err != nil {
		return 0, err
	}

	// Imported data invalidates the cached listings.
	_ = s.cache.Delete(ctx, movieListCacheKey)
	_ = s.cache.Delete(ctx, genreListCacheKey)

	s.log.WithFields(logrus.Fields{"page": page, "imported": imported}).Info("catalog import complete")
	return imported, nil
}
