package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/sony/gobreaker/v2"
	"golang.org/x/sync/singleflight"

	"github.com/myaseir/circuit-sphere-ecommerce/internal/domain"
	"github.com/myaseir/circuit-sphere-ecommerce/internal/store"
)

var ErrProductNotFound = errors.New("product not found")

// Client reads the catalog API and serves normalized products. Reads go
// cache-aside through Redis when a cache is configured, are coalesced with
// singleflight so concurrent misses for the same product fetch once, and the
// upstream call sits behind a circuit breaker.
type Client struct {
	baseURL    string
	httpClient *http.Client
	cache      ProductCache // may be nil
	sfg        singleflight.Group
	breaker    *gobreaker.CircuitBreaker[*domain.Product]
}

func NewClient(baseURL string, cache ProductCache) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 10 * time.Second},
		cache:      cache,
		breaker: gobreaker.NewCircuitBreaker[*domain.Product](gobreaker.Settings{
			Name:    "catalog",
			Timeout: 30 * time.Second,
		}),
	}
}

// GetProduct returns the normalized product for id, from cache when possible.
func (c *Client) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	// Coalesce concurrent misses for the same product into one upstream call
	v, err, _ := c.sfg.Do(id, func() (interface{}, error) {
		if c.cache != nil {
			product, errGet := c.cache.Get(ctx, id)
			if errGet == nil {
				return product, nil
			}
			if !errors.Is(errGet, ErrCacheMiss) {
				log.Printf("product cache get error: %v", errGet)
			}
		}

		product, errFetch := c.breaker.Execute(func() (*domain.Product, error) {
			return c.fetchProduct(ctx, id)
		})
		if errFetch != nil {
			return nil, errFetch
		}

		if c.cache != nil {
			if errSet := c.cache.Set(ctx, product); errSet != nil {
				log.Printf("product cache set error: %v", errSet)
			}
		}

		return product, nil
	})
	if err != nil {
		return nil, err
	}

	return v.(*domain.Product), nil
}

// ListProducts fetches the full catalog. Lists are not cached; the backend
// owns pagination and ordering.
func (c *Client) ListProducts(ctx context.Context) ([]domain.Product, error) {
	body, err := c.get(ctx, c.baseURL+"/kits/")
	if err != nil {
		return nil, err
	}

	var records []kitRecord
	if err := json.Unmarshal(body, &records); err != nil {
		return nil, fmt.Errorf("decode catalog list failed: %w", err)
	}

	products := make([]domain.Product, 0, len(records))
	for _, rec := range records {
		products = append(products, normalize(rec))
	}
	return products, nil
}

// AddToCart resolves a product and merges it into the cart, capturing the
// current price fields on the line.
func (c *Client) AddToCart(ctx context.Context, cart *store.CartStore, id string, quantity int) error {
	product, err := c.GetProduct(ctx, id)
	if err != nil {
		return err
	}
	return cart.AddItem(LineItemFor(product), quantity)
}

func (c *Client) fetchProduct(ctx context.Context, id string) (*domain.Product, error) {
	body, err := c.get(ctx, c.baseURL+"/kits/"+id)
	if err != nil {
		return nil, err
	}

	var rec kitRecord
	if err := json.Unmarshal(body, &rec); err != nil {
		return nil, fmt.Errorf("decode catalog record failed: %w", err)
	}

	product := normalize(rec)
	return &product, nil
}

func (c *Client) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build catalog request failed: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("catalog request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrProductNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("catalog responded with status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read catalog response failed: %w", err)
	}
	return body, nil
}
