package tmdb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"

	apperrors "movienuts/internal/errors"
)

// Movie is one entry from a TMDB listing response.
type Movie struct {
	ID           int64   `json:"id"`
	Title        string  `json:"title"`
	Overview     string  `json:"overview"`
	ReleaseDate  string  `json:"release_date"`
	PosterPath   string  `json:"poster_path"`
	BackdropPath string  `json:"backdrop_path"`
	VoteAverage  float64 `json:"vote_average"`
	GenreIDs     []int64 `json:"genre_ids"`
}

type listResponse struct {
	Page    int     `json:"page"`
	Results []Movie `json:"results"`
}

type genreResponse struct {
	Genres []struct {
		ID   int64  `json:"id"`
		Name string `json:"name"`
	} `json:"genres"`
}

// Client talks to the TMDB REST API. All calls go through a circuit
// breaker so a flapping upstream trips fast instead of stalling imports.
type Client struct {
	baseURL     string
	accessToken string
	httpClient  *http.Client
	breaker     *gobreaker.CircuitBreaker
	log         *logrus.Entry
}

// New creates a TMDB client authenticating with the given bearer token.
func New(baseURL, accessToken string, log *logrus.Entry) *Client {
	settings := gobreaker.Settings{
		Name:        "tmdb",
		MaxRequests: 3,
		Interval:    10 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.Requests >= 5 && float64(counts.TotalFailures)/float64(counts.Requests) >= 0.5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warnf("tmdb circuit breaker %s -> %s", from, to)
		},
	}

	return &Client{
		baseURL:     baseURL,
		accessToken: accessToken,
		httpClient:  &http.Client{Timeout: 15 * time.Second},
		breaker:     gobreaker.NewCircuitBreaker(settings),
		log:         log,
	}
}

// Popular fetches one page of TMDB's popular-movies listing.
func (c *Client) Popular(ctx context.Context, page int) ([]Movie, error) {
	params := url.Values{"page": {strconv.Itoa(page)}}
	var resp listResponse
	if err := c.get(ctx, "/movie/popular", params, &resp); err != nil {
		return nil, err
	}
	return resp.Results, nil
}

// Genres fetches the TMDB genre list as an id -> name map.
func (c *Client) Genres(ctx context.Context) (map[int64]string, error) {
	var resp genreResponse
	if err := c.get(ctx, "/genre/movie/list", nil, &resp); err != nil {
		return nil, err
	}

	genres := make(map[int64]string, len(resp.Genres))
	for _, g := range resp.Genres {
		genres[g.ID] = g.Name
	}
	return genres, nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values, dest interface{}) error {
	body, err := c.breaker.Execute(func() (interface{}, error) {
		return c.doGet(ctx, path, params)
	})
	if err != nil {
		if err == gobreaker.ErrOpenState || err == gobreaker.ErrTooManyRequests {
			return apperrors.ErrCatalogUnavailable
		}
		c.log.WithError(err).WithField("path", path).Warn("tmdb request failed")
		return fmt.Errorf("%w: %v", apperrors.ErrCatalogUnavailable, err)
	}

	if err := json.Unmarshal(body.([]byte), dest); err != nil {
		return fmt.Errorf("decode tmdb response: %w", err)
	}
	return nil
}

func (c *Client) doGet(ctx context.Context, path string, params url.Values) ([]byte, error) {
	reqURL := c.baseURL + path
	if len(params) > 0 {
		reqURL += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.accessToken)
	req.Header.Set("Accept", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("tmdb status %d", res.StatusCode)
	}

	return io.ReadAll(res.Body)
}
