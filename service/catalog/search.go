package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/mitchellh/mapstructure"
)

var (
	searchServiceInstance *SearchService
	searchServiceOnce     sync.Once
)

// GetSearchService returns singleton SearchService.
func GetSearchService() *SearchService {
	searchServiceOnce.Do(func() {
		searchServiceInstance = NewSearchService()
	})
	return searchServiceInstance
}

type SearchService struct {
	client *elasticsearch.Client
	index  string
}

func NewSearchService() *SearchService {
	host := os.Getenv("ELASTICSEARCH_HOST")
	if host == "" {
		host = "http://localhost:9200"
	}
	index := os.Getenv("ELASTICSEARCH_INDEX")
	if index == "" {
		index = "erp_catalog_product"
	}

	cfg := elasticsearch.Config{
		Addresses: []string{host},
	}
	client, err := elasticsearch.NewClient(cfg)
	if err != nil {
		return &SearchService{index: index}
	}

	return &SearchService{client: client, index: index}
}

// Enabled reports whether an ES client was constructed. When false the
// catalog API falls back to a LIKE query on the DB.
func (s *SearchService) Enabled() bool {
	return s.client != nil
}

// ProductDoc is a product document in the search index.
type ProductDoc struct {
	ProductID uint     `json:"product_id" mapstructure:"product_id"`
	SKU       string   `json:"sku" mapstructure:"sku"`
	Name      string   `json:"name" mapstructure:"name"`
	BasePrice *float64 `json:"base_price,omitempty" mapstructure:"base_price"`
	Currency  *string  `json:"currency,omitempty" mapstructure:"currency"`
}

// Search queries the product index by name/sku match.
func (s *SearchService) Search(ctx context.Context, query string, pageSize, currentPage int) ([]ProductDoc, int, error) {
	if s.client == nil {
		return nil, 0, fmt.Errorf("elasticsearch not configured")
	}
	if pageSize <= 0 {
		pageSize = 20
	}
	if currentPage <= 0 {
		currentPage = 1
	}

	body := map[string]interface{}{
		"from": (currentPage - 1) * pageSize,
		"size": pageSize,
		"query": map[string]interface{}{
			"multi_match": map[string]interface{}{
				"query":  query,
				"fields": []string{"name^2", "sku"},
			},
		},
	}
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(body); err != nil {
		return nil, 0, err
	}

	res, err := s.client.Search(
		s.client.Search.WithContext(ctx),
		s.client.Search.WithIndex(s.index),
		s.client.Search.WithBody(&buf),
	)
	if err != nil {
		return nil, 0, fmt.Errorf("search: %w", err)
	}
	defer res.Body.Close()
	if res.IsError() {
		return nil, 0, fmt.Errorf("search: %s", res.Status())
	}

	var parsed struct {
		Hits struct {
			Total struct {
				Value int `json:"value"`
			} `json:"total"`
			Hits []struct {
				Source map[string]interface{} `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, 0, fmt.Errorf("search: decode: %w", err)
	}

	docs := make([]ProductDoc, 0, len(parsed.Hits.Hits))
	for _, hit := range parsed.Hits.Hits {
		var doc ProductDoc
		if err := mapstructure.WeakDecode(hit.Source, &doc); err != nil {
			continue
		}
		docs = append(docs, doc)
	}
	return docs, parsed.Hits.Total.Value, nil
}
