package services

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/Isaacjdv/futbolapp-backend/metrics"
	"github.com/Isaacjdv/futbolapp-backend/pkg/logger"
)

// CatalogProduct is the shaped jersey the API serves, whatever the
// upstream store's own schema looks like.
type CatalogProduct struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
	Category    string  `json:"category"`
}

const catalogCacheKey = "catalog:products"

type CatalogService struct {
	client   *http.Client
	base     string
	limit    int
	cache    *redis.Client // nil when no Redis is configured
	cacheTTL time.Duration
}

func NewCatalogService(base string, timeout time.Duration, limit int, cache *redis.Client) *CatalogService {
	return &CatalogService{
		client:   &http.Client{Timeout: timeout},
		base:     strings.TrimRight(base, "/"),
		limit:    limit,
		cache:    cache,
		cacheTTL: 5 * time.Minute,
	}
}

// storeProduct mirrors the external store's response shape.
type storeProduct struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Image       string  `json:"image"`
}

// Products serves the catalog listing. Order of preference: cache,
// upstream, built-in fallback. The listing is never empty and never an
// error; a dead upstream degrades to the fallback set.
func (s *CatalogService) Products(ctx context.Context) []CatalogProduct {
	if cached := s.fromCache(ctx); cached != nil {
		return cached
	}

	shaped, err := s.fetch(ctx)
	if err != nil || len(shaped) == 0 {
		if err != nil {
			logger.L().Warn("catalog upstream failed, serving fallback", zap.Error(err))
		}
		metrics.UpstreamFallbacks.WithLabelValues("store").Inc()
		return fallbackJerseys
	}

	s.toCache(ctx, shaped)
	return shaped
}

func (s *CatalogService) fetch(ctx context.Context) ([]CatalogProduct, error) {
	url := fmt.Sprintf("%s/products?limit=%d", s.base, s.limit)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	res, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", ErrUpstream, res.StatusCode)
	}

	var raw []storeProduct
	if err := json.NewDecoder(res.Body).Decode(&raw); err != nil {
		return nil, err
	}

	shaped := make([]CatalogProduct, 0, len(raw))
	for _, p := range raw {
		shaped = append(shaped, CatalogProduct{
			ID:          fmt.Sprintf("store-%d", p.ID),
			Name:        composeName(p.Category, p.Title),
			Description: p.Description,
			Price:       math.Round(p.Price*100) / 100,
			Image:       p.Image,
			Category:    p.Category,
		})
	}
	return shaped, nil
}

// composeName builds a display name from the upstream category plus a
// bounded fragment of its title.
func composeName(category, title string) string {
	title = strings.TrimSpace(title)
	if len(title) > 40 {
		if i := strings.LastIndex(title[:40], " "); i > 0 {
			title = title[:i]
		} else {
			title = title[:40]
		}
	}
	category = strings.TrimSpace(category)
	if category == "" {
		return title
	}
	return strings.ToUpper(category[:1]) + category[1:] + " " + title
}

func (s *CatalogService) fromCache(ctx context.Context) []CatalogProduct {
	if s.cache == nil {
		return nil
	}
	raw, err := s.cache.Get(ctx, catalogCacheKey).Bytes()
	if err != nil {
		return nil
	}
	var products []CatalogProduct
	if err := json.Unmarshal(raw, &products); err != nil || len(products) == 0 {
		return nil
	}
	return products
}

func (s *CatalogService) toCache(ctx context.Context, products []CatalogProduct) {
	if s.cache == nil {
		return
	}
	raw, err := json.Marshal(products)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, catalogCacheKey, raw, s.cacheTTL).Err(); err != nil {
		logger.L().Warn("catalog cache write failed", zap.Error(err))
	}
}

// fallbackJerseys keeps the catalog endpoint alive when the store API is
// down or empty.
var fallbackJerseys = []CatalogProduct{
	{ID: "local-1", Name: "Camiseta Argentina Titular 2024", Description: "Camiseta oficial de local", Price: 89.99, Image: "https://example.com/jerseys/arg-home.png", Category: "jerseys"},
	{ID: "local-2", Name: "Camiseta Brasil Titular 2024", Description: "Camiseta oficial de local", Price: 84.99, Image: "https://example.com/jerseys/bra-home.png", Category: "jerseys"},
	{ID: "local-3", Name: "Camiseta Ecuador Titular 2024", Description: "Camiseta oficial de local", Price: 69.99, Image: "https://example.com/jerseys/ecu-home.png", Category: "jerseys"},
	{ID: "local-4", Name: "Camiseta España Alternativa 2024", Description: "Camiseta oficial de visitante", Price: 79.99, Image: "https://example.com/jerseys/esp-away.png", Category: "jerseys"},
	{ID: "local-5", Name: "Camiseta Francia Titular 2024", Description: "Camiseta oficial de local", Price: 89.99, Image: "https://example.com/jerseys/fra-home.png", Category: "jerseys"},
	{ID: "local-6", Name: "Camiseta Alemania Titular 2024", Description: "Camiseta oficial de local", Price: 84.99, Image: "https://example.com/jerseys/ger-home.png", Category: "jerseys"},
}
