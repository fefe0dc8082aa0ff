package modeltest

import (
	"testing"

	catalogEntity "erp.GO/model/entity/catalog"
	catalogRepo "erp.GO/model/repository/catalog"
	catalogService "erp.GO/service/catalog"
)

func seedProduct(t *testing.T, repo *catalogRepo.CatalogRepository) *catalogEntity.Product {
	t.Helper()
	p := &catalogEntity.Product{
		SKU:       "BOOT-001",
		Name:      "Hiking Boot",
		BasePrice: 80,
		Currency:  "USD",
		Variants: []catalogEntity.Variant{
			{SKU: "BOOT-001-41", Name: "Size 41", Position: 2},
			{SKU: "BOOT-001-40", Name: "Size 40", Price: fp(85), Position: 1},
		},
	}
	if err := repo.Create(p); err != nil {
		t.Fatalf("create product: %v", err)
	}
	return p
}

func TestCatalogRepository_CreateAndFindBySKU(t *testing.T) {
	repo := catalogRepo.NewCatalogRepository(testDB(t))
	p := seedProduct(t, repo)
	if p.ProductID == 0 {
		t.Fatal("ProductID not set after create")
	}

	found, err := repo.FindBySKU("BOOT-001")
	if err != nil {
		t.Fatalf("FindBySKU: %v", err)
	}
	if found.Name != "Hiking Boot" {
		t.Errorf("Name = %q, want Hiking Boot", found.Name)
	}
}

func TestCatalogRepository_FindWithVariants_OrdersByPosition(t *testing.T) {
	repo := catalogRepo.NewCatalogRepository(testDB(t))
	p := seedProduct(t, repo)

	found, err := repo.FindWithVariants(p.ProductID)
	if err != nil {
		t.Fatalf("FindWithVariants: %v", err)
	}
	if len(found.Variants) != 2 {
		t.Fatalf("got %d variants, want 2", len(found.Variants))
	}
	if found.Variants[0].SKU != "BOOT-001-40" {
		t.Errorf("first variant = %s, want BOOT-001-40 (position order)", found.Variants[0].SKU)
	}
}

func TestCatalogRepository_VendorCostRoundTrip(t *testing.T) {
	repo := catalogRepo.NewCatalogRepository(testDB(t))
	p := seedProduct(t, repo)
	variantID := p.Variants[0].VariantID

	cost := &catalogEntity.VariantVendorCost{VariantID: variantID, VendorID: 3, Cost: fp(61)}
	if err := repo.UpsertVendorCost(cost); err != nil {
		t.Fatalf("upsert cost: %v", err)
	}
	// Upsert again with a new cost; must overwrite, not duplicate.
	if err := repo.UpsertVendorCost(&catalogEntity.VariantVendorCost{VariantID: variantID, VendorID: 3, Cost: fp(59)}); err != nil {
		t.Fatalf("upsert cost again: %v", err)
	}

	found, err := repo.FindWithVariants(p.ProductID)
	if err != nil {
		t.Fatalf("FindWithVariants: %v", err)
	}
	var costs []catalogEntity.VariantVendorCost
	for _, v := range found.Variants {
		if v.VariantID == variantID {
			costs = v.VendorCosts
		}
	}
	if len(costs) != 1 {
		t.Fatalf("got %d costs, want 1 after upsert", len(costs))
	}
	if costs[0].Cost == nil || *costs[0].Cost != 59 {
		t.Errorf("cost = %v, want 59", costs[0].Cost)
	}
}

func TestCatalogRepository_SearchByName(t *testing.T) {
	repo := catalogRepo.NewCatalogRepository(testDB(t))
	seedProduct(t, repo)

	hits, err := repo.SearchByName("hik", 10)
	if err != nil {
		t.Fatalf("SearchByName: %v", err)
	}
	if len(hits) != 1 || hits[0].SKU != "BOOT-001" {
		t.Errorf("hits = %+v, want one BOOT-001", hits)
	}
}

func TestEntryFromEntity(t *testing.T) {
	repo := catalogRepo.NewCatalogRepository(testDB(t))
	p := seedProduct(t, repo)

	found, err := repo.FindWithVariants(p.ProductID)
	if err != nil {
		t.Fatalf("FindWithVariants: %v", err)
	}
	entry := catalogService.EntryFromEntity(found)
	if entry.ProductID != p.ProductID || entry.BasePrice != 80 {
		t.Errorf("entry = %+v", entry)
	}
	if !entry.HasVariants() {
		t.Error("entry should report variants")
	}
	if v := entry.FindVariant(found.Variants[0].VariantID); v == nil {
		t.Error("FindVariant returned nil for existing variant")
	}
}
