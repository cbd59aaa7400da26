package services_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Isaacjdv/futbolapp-backend/services"
)

const storeBody = `[
	{"id":1,"title":"Mens Casual Premium Slim Fit T-Shirts for the modern wardrobe","price":22.3,"description":"Slim fit","category":"men's clothing","image":"https://example.com/1.png"},
	{"id":2,"title":"Fjallraven Backpack","price":109.955,"description":"Backpack","category":"","image":"https://example.com/2.png"}
]`

func TestCatalogShapesUpstream(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/products", r.URL.Path)
		assert.Equal(t, "20", r.URL.Query().Get("limit"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(storeBody))
	}))
	defer upstream.Close()

	svc := services.NewCatalogService(upstream.URL, time.Second, 20, nil)
	products := svc.Products(context.Background())
	require.Len(t, products, 2)

	assert.Equal(t, "store-1", products[0].ID)
	// composed from capitalized category + a bounded title fragment
	assert.Equal(t, "Men's clothing Mens Casual Premium Slim Fit T-Shirts", products[0].Name)
	assert.InDelta(t, 22.3, products[0].Price, 0.001)

	// empty category falls back to the bare title; price rounds to 2 decimals
	assert.Equal(t, "Fjallraven Backpack", products[1].Name)
	assert.InDelta(t, 109.96, products[1].Price, 0.001)
}

func TestCatalogFallbackOnUpstreamFailure(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer upstream.Close()

	svc := services.NewCatalogService(upstream.URL, time.Second, 20, nil)
	products := svc.Products(context.Background())
	assert.NotEmpty(t, products, "catalog must never be empty")
}

func TestCatalogFallbackOnEmptyUpstream(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer upstream.Close()

	svc := services.NewCatalogService(upstream.URL, time.Second, 20, nil)
	assert.NotEmpty(t, svc.Products(context.Background()))
}

func TestCatalogFallbackOnDeadUpstream(t *testing.T) {
	// nothing listens here
	svc := services.NewCatalogService("http://127.0.0.1:1", 200*time.Millisecond, 20, nil)
	assert.NotEmpty(t, svc.Products(context.Background()))
}

func TestCatalogServesFromCache(t *testing.T) {
	var hits atomic.Int32
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Write([]byte(storeBody))
	}))
	defer upstream.Close()

	mr := miniredis.RunT(t)
	cache := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	svc := services.NewCatalogService(upstream.URL, time.Second, 20, cache)

	first := svc.Products(context.Background())
	second := svc.Products(context.Background())

	assert.Equal(t, first, second)
	assert.EqualValues(t, 1, hits.Load(), "second call should be served from cache")
}
