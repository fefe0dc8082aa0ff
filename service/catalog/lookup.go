package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"erp.GO/config"
	catalogRepo "erp.GO/model/repository/catalog"
)

// Lookup fetches full product detail (variants and vendor costs included)
// for a product ID. The PO form engine depends on this and nothing else.
type Lookup interface {
	Detail(ctx context.Context, productID uint) (*Entry, error)
}

// DefaultLookup builds the detail chain the APIs and the PO form engine use:
// the remote commerce platform when COMMERCE_URL is set, the local catalog
// tables otherwise, wrapped in the redis read-through when redis is up.
func DefaultLookup(db *gorm.DB) Lookup {
	url := os.Getenv("COMMERCE_URL")
	if config.AppConfig != nil && config.AppConfig.CommerceURL != "" {
		url = config.AppConfig.CommerceURL
	}
	var lookup Lookup
	if url != "" {
		lookup = NewClient(url, os.Getenv("COMMERCE_API_KEY"))
	} else {
		lookup = NewDBLookup(db)
	}
	if config.RedisClient != nil {
		lookup = NewCachedLookup(lookup, config.RedisClient, 0)
	}
	return lookup
}

// DBLookup serves product detail from the local catalog tables.
type DBLookup struct {
	repo *catalogRepo.CatalogRepository
}

func NewDBLookup(db *gorm.DB) *DBLookup {
	return &DBLookup{repo: catalogRepo.NewCatalogRepository(db)}
}

func (l *DBLookup) Detail(ctx context.Context, productID uint) (*Entry, error) {
	p, err := l.repo.FindWithVariants(productID)
	if err != nil {
		return nil, fmt.Errorf("catalog detail %d: %w", productID, err)
	}
	return EntryFromEntity(p), nil
}

// CachedLookup is a Redis read-through in front of another Lookup.
// Misses and Redis failures fall through to the inner lookup.
type CachedLookup struct {
	next Lookup
	rdb  *redis.Client
	ttl  time.Duration
}

func NewCachedLookup(next Lookup, rdb *redis.Client, ttl time.Duration) *CachedLookup {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &CachedLookup{next: next, rdb: rdb, ttl: ttl}
}

func cacheKey(productID uint) string {
	return fmt.Sprintf("catalog:detail:%d", productID)
}

func (l *CachedLookup) Detail(ctx context.Context, productID uint) (*Entry, error) {
	if l.rdb != nil {
		if data, err := l.rdb.Get(ctx, cacheKey(productID)).Bytes(); err == nil {
			var entry Entry
			if json.Unmarshal(data, &entry) == nil {
				return &entry, nil
			}
		}
	}
	entry, err := l.next.Detail(ctx, productID)
	if err != nil {
		return nil, err
	}
	if l.rdb != nil {
		if data, err := json.Marshal(entry); err == nil {
			l.rdb.Set(ctx, cacheKey(productID), data, l.ttl)
		}
	}
	return entry, nil
}

// Invalidate drops the cached detail for a product (call after catalog writes).
func (l *CachedLookup) Invalidate(ctx context.Context, productID uint) {
	if l.rdb != nil {
		l.rdb.Del(ctx, cacheKey(productID))
	}
}
