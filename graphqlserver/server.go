package graphqlserver

import (
	"context"
	"encoding/json"
	"errors"
	"sort"

	gql "github.com/graph-gophers/graphql-go"
	"github.com/graph-gophers/graphql-go/relay"
	"gorm.io/gorm"

	"erp.GO/api/dashboard"
	"erp.GO/graphql"
	"erp.GO/graphql/registry"
	catalogRepo "erp.GO/model/repository/catalog"
	catalogService "erp.GO/service/catalog"
)

// RootResolver is the root for graphql-go.
type RootResolver struct {
	DB *gorm.DB
}

// Query returns the query resolver.
func (r *RootResolver) Query() *QueryResolver {
	return &QueryResolver{db: r.DB}
}

// QueryResolver implements Query fields.
type QueryResolver struct {
	db *gorm.DB
}

// --- models (graphql-go field resolvers; Int! maps to int32) ---

type Product struct {
	ProductID int32
	SKU       string
	Name      string
	BasePrice float64
	Currency  string
	Variants  []Variant
}

type Variant struct {
	VariantID   int32
	SKU         string
	Name        string
	Price       *float64
	VendorCosts []VendorCost
}

type VendorCost struct {
	VendorID int32
	Cost     *float64
}

type ProductSearchResult struct {
	Items      []Product
	TotalCount int32
}

type Dashboard struct {
	Products           int32
	Vendors            int32
	Warehouses         int32
	Customers          int32
	Orders             int32
	OutstandingBalance float64
	PurchaseOrders     []StatusCount
}

type StatusCount struct {
	Status string
	Count  int32
}

func productFromEntry(entry *catalogService.Entry) *Product {
	p := &Product{
		ProductID: int32(entry.ProductID),
		SKU:       entry.SKU,
		Name:      entry.Name,
		BasePrice: entry.BasePrice,
		Currency:  entry.Currency,
		Variants:  make([]Variant, 0, len(entry.Variants)),
	}
	for _, v := range entry.Variants {
		variant := Variant{
			VariantID:   int32(v.VariantID),
			SKU:         v.SKU,
			Name:        v.Name,
			Price:       v.Price,
			VendorCosts: make([]VendorCost, 0, len(v.VendorCosts)),
		}
		for _, c := range v.VendorCosts {
			variant.VendorCosts = append(variant.VendorCosts, VendorCost{VendorID: int32(c.VendorID), Cost: c.Cost})
		}
		p.Variants = append(p.Variants, variant)
	}
	return p
}

// ProductArgs matches the product query arguments.
type ProductArgs struct {
	ID int32
}

func (r *QueryResolver) Product(ctx context.Context, args ProductArgs) (*Product, error) {
	entry, err := catalogService.NewDBLookup(r.db).Detail(ctx, uint(args.ID))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return productFromEntry(entry), nil
}

// SearchArgs matches the searchProducts query arguments (defaults in schema: pageSize=20, currentPage=1).
type SearchArgs struct {
	Query       string
	PageSize    int32
	CurrentPage int32
}

func (r *QueryResolver) SearchProducts(ctx context.Context, args SearchArgs) (*ProductSearchResult, error) {
	ps, cp := int(args.PageSize), int(args.CurrentPage)
	if ps <= 0 {
		ps = 20
	}
	if cp <= 0 {
		cp = 1
	}

	if search := catalogService.GetSearchService(); search.Enabled() {
		docs, total, err := search.Search(ctx, args.Query, ps, cp)
		if err == nil {
			result := &ProductSearchResult{TotalCount: int32(total), Items: make([]Product, 0, len(docs))}
			for _, doc := range docs {
				p := Product{ProductID: int32(doc.ProductID), SKU: doc.SKU, Name: doc.Name, Variants: []Variant{}}
				if doc.BasePrice != nil {
					p.BasePrice = *doc.BasePrice
				}
				if doc.Currency != nil {
					p.Currency = *doc.Currency
				}
				result.Items = append(result.Items, p)
			}
			return result, nil
		}
		// ES down: fall back to the DB below
	}

	products, err := catalogRepo.GetCatalogRepository(r.db).SearchByName(args.Query, ps)
	if err != nil {
		return nil, err
	}
	result := &ProductSearchResult{TotalCount: int32(len(products)), Items: make([]Product, 0, len(products))}
	for i := range products {
		result.Items = append(result.Items, *productFromEntry(catalogService.EntryFromEntity(&products[i])))
	}
	return result, nil
}

func (r *QueryResolver) Dashboard(ctx context.Context) (*Dashboard, error) {
	snap, err := dashboard.BuildSnapshot(r.db)
	if err != nil {
		return nil, err
	}
	d := &Dashboard{
		Products:           int32(snap.Products),
		Vendors:            int32(snap.Vendors),
		Warehouses:         int32(snap.Warehouses),
		Customers:          int32(snap.Customers),
		Orders:             int32(snap.Orders),
		OutstandingBalance: snap.OutstandingBalance,
	}
	statuses := make([]string, 0, len(snap.PurchaseOrders))
	for status := range snap.PurchaseOrders {
		statuses = append(statuses, status)
	}
	sort.Strings(statuses)
	for _, status := range statuses {
		d.PurchaseOrders = append(d.PurchaseOrders, StatusCount{Status: status, Count: int32(snap.PurchaseOrders[status])})
	}
	return d, nil
}

// ExtensionArgs for _extension(name, args).
type ExtensionArgs struct {
	Name string
	Args *string
}

func (r *QueryResolver) Extension(ctx context.Context, args ExtensionArgs) (*string, error) {
	var m map[string]interface{}
	if args.Args != nil && *args.Args != "" {
		_ = json.Unmarshal([]byte(*args.Args), &m)
	}
	if m == nil {
		m = make(map[string]interface{})
	}
	out, err := registry.Resolve(ctx, args.Name, m)
	if err != nil {
		return nil, err
	}
	b, err := json.Marshal(out)
	if err != nil {
		return nil, err
	}
	s := string(b)
	return &s, nil
}

// NewSchema parses the schema and returns a graphql-go Schema.
func NewSchema(db *gorm.DB) (*gql.Schema, error) {
	return gql.ParseSchema(graphql.Schema(), &RootResolver{DB: db}, gql.UseFieldResolvers())
}

// Handler returns an http.Handler for GraphQL (relay format).
func Handler(schema *gql.Schema) *relay.Handler {
	return &relay.Handler{Schema: schema}
}
