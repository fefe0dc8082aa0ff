package catalog

import (
	"sync"

	"gorm.io/gorm"

	catalogEntity "erp.GO/model/entity/catalog"
)

type CatalogRepository struct {
	db *gorm.DB
}

var (
	instance *CatalogRepository
	once     sync.Once
)

// GetCatalogRepository returns a singleton repository for the given DB.
func GetCatalogRepository(db *gorm.DB) *CatalogRepository {
	once.Do(func() {
		instance = NewCatalogRepository(db)
	})
	return instance
}

func NewCatalogRepository(db *gorm.DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

// FindAll returns a page of products plus the total count.
func (r *CatalogRepository) FindAll(limit, offset int) ([]catalogEntity.Product, int64, error) {
	var products []catalogEntity.Product
	var count int64
	if err := r.db.Model(&catalogEntity.Product{}).Count(&count).Error; err != nil {
		return nil, 0, err
	}
	err := r.db.Limit(limit).Offset(offset).Order("product_id").Find(&products).Error
	return products, count, err
}

func (r *CatalogRepository) FindByID(id uint) (*catalogEntity.Product, error) {
	var p catalogEntity.Product
	if err := r.db.First(&p, "product_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *CatalogRepository) FindBySKU(sku string) (*catalogEntity.Product, error) {
	var p catalogEntity.Product
	if err := r.db.First(&p, "sku = ?", sku).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// FindWithVariants returns the product with variants (ordered by position)
// and their vendor costs preloaded. This is the source of the catalog
// detail contract served to the PO form.
func (r *CatalogRepository) FindWithVariants(id uint) (*catalogEntity.Product, error) {
	var p catalogEntity.Product
	err := r.db.
		Preload("Variants", func(db *gorm.DB) *gorm.DB {
			return db.Order("position, variant_id")
		}).
		Preload("Variants.VendorCosts").
		First(&p, "product_id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *CatalogRepository) Create(p *catalogEntity.Product) error {
	return r.db.Create(p).Error
}

func (r *CatalogRepository) Update(p *catalogEntity.Product) error {
	return r.db.Save(p).Error
}

func (r *CatalogRepository) Delete(id uint) error {
	if err := r.db.Where("variant_id IN (?)",
		r.db.Model(&catalogEntity.Variant{}).Select("variant_id").Where("product_id = ?", id),
	).Delete(&catalogEntity.VariantVendorCost{}).Error; err != nil {
		return err
	}
	if err := r.db.Where("product_id = ?", id).Delete(&catalogEntity.Variant{}).Error; err != nil {
		return err
	}
	return r.db.Delete(&catalogEntity.Product{}, "product_id = ?", id).Error
}

// SearchByName is the DB fallback when Elasticsearch is not configured.
func (r *CatalogRepository) SearchByName(query string, limit int) ([]catalogEntity.Product, error) {
	var products []catalogEntity.Product
	err := r.db.
		Where("name LIKE ? OR sku LIKE ?", "%"+query+"%", "%"+query+"%").
		Limit(limit).
		Order("product_id").
		Find(&products).Error
	return products, err
}

func (r *CatalogRepository) CreateVariant(v *catalogEntity.Variant) error {
	return r.db.Create(v).Error
}

func (r *CatalogRepository) UpsertVendorCost(c *catalogEntity.VariantVendorCost) error {
	var existing catalogEntity.VariantVendorCost
	err := r.db.First(&existing, "variant_id = ? AND vendor_id = ?", c.VariantID, c.VendorID).Error
	if err == gorm.ErrRecordNotFound {
		return r.db.Create(c).Error
	}
	if err != nil {
		return err
	}
	existing.Cost = c.Cost
	return r.db.Save(&existing).Error
}
