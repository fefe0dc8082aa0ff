package catalog

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"erp.GO/api"
	"erp.GO/config"
	catalogEntity "erp.GO/model/entity/catalog"
	catalogRepo "erp.GO/model/repository/catalog"
	catalogService "erp.GO/service/catalog"
)

func init() {
	api.RegisterModule(RegisterCatalogRoutes)
}

func pagination(c echo.Context) (limit, offset int) {
	limit, _ = strconv.Atoi(c.QueryParam("limit"))
	if limit <= 0 || limit > 500 {
		limit = 20
	}
	page, _ := strconv.Atoi(c.QueryParam("page"))
	if page < 1 {
		page = 1
	}
	return limit, (page - 1) * limit
}

func RegisterCatalogRoutes(apiGroup *echo.Group, db *gorm.DB) {
	repo := catalogRepo.GetCatalogRepository(db)
	g := apiGroup.Group("/catalog")

	// GET /api/catalog/products – paginated product list
	g.GET("/products", func(c echo.Context) error {
		limit, offset := pagination(c)
		products, total, err := repo.FindAll(limit, offset)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, echo.Map{"items": products, "total": total})
	})

	// GET /api/catalog/products/:id – product with variants and vendor costs
	g.GET("/products/:id", func(c echo.Context) error {
		id, err := strconv.ParseUint(c.Param("id"), 10, 32)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid product id"})
		}
		product, err := repo.FindWithVariants(uint(id))
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "product not found"})
		}
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, product)
	})

	// GET /api/catalog/products/:id/detail – the form-facing detail contract
	// (product, ordered variants, per-vendor costs). Public via auth skipper.
	g.GET("/products/:id/detail", func(c echo.Context) error {
		id, err := strconv.ParseUint(c.Param("id"), 10, 32)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid product id"})
		}
		entry, err := catalogService.DefaultLookup(db).Detail(c.Request().Context(), uint(id))
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "product not found"})
		}
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, entry)
	})

	// GET /api/catalog/search?q= – Elasticsearch when configured, DB fallback
	g.GET("/search", func(c echo.Context) error {
		query := c.QueryParam("q")
		if query == "" {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "q parameter is required"})
		}
		limit, _ := pagination(c)

		if search := catalogService.GetSearchService(); search.Enabled() {
			page, _ := strconv.Atoi(c.QueryParam("page"))
			if page < 1 {
				page = 1
			}
			docs, total, err := search.Search(c.Request().Context(), query, limit, page)
			if err == nil {
				return c.JSON(http.StatusOK, echo.Map{"items": docs, "total": total, "engine": "elasticsearch"})
			}
			// fall back to the DB on ES errors
		}
		products, err := repo.SearchByName(query, limit)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, echo.Map{"items": products, "total": len(products), "engine": "db"})
	})

	// POST /api/catalog/products
	g.POST("/products", func(c echo.Context) error {
		var p catalogEntity.Product
		if err := c.Bind(&p); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		if p.SKU == "" || p.Name == "" {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "sku and name are required"})
		}
		if err := repo.Create(&p); err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusCreated, p)
	})

	// PUT /api/catalog/products/:id
	g.PUT("/products/:id", func(c echo.Context) error {
		id, err := strconv.ParseUint(c.Param("id"), 10, 32)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid product id"})
		}
		var p catalogEntity.Product
		if err := c.Bind(&p); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		p.ProductID = uint(id)
		if err := repo.Update(&p); err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		invalidateDetail(c, uint(id))
		return c.JSON(http.StatusOK, p)
	})

	// DELETE /api/catalog/products/:id
	g.DELETE("/products/:id", func(c echo.Context) error {
		id, err := strconv.ParseUint(c.Param("id"), 10, 32)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid product id"})
		}
		if err := repo.Delete(uint(id)); err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		invalidateDetail(c, uint(id))
		return c.NoContent(http.StatusNoContent)
	})

	// POST /api/catalog/products/:id/variants
	g.POST("/products/:id/variants", func(c echo.Context) error {
		id, err := strconv.ParseUint(c.Param("id"), 10, 32)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid product id"})
		}
		var v catalogEntity.Variant
		if err := c.Bind(&v); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		v.ProductID = uint(id)
		if err := repo.CreateVariant(&v); err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		invalidateDetail(c, uint(id))
		return c.JSON(http.StatusCreated, v)
	})

	// PUT /api/catalog/vendor-costs – upsert one variant/vendor cost
	g.PUT("/vendor-costs", func(c echo.Context) error {
		var cost catalogEntity.VariantVendorCost
		if err := c.Bind(&cost); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		if cost.VariantID == 0 || cost.VendorID == 0 {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "variant_id and vendor_id are required"})
		}
		if err := repo.UpsertVendorCost(&cost); err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, cost)
	})
}

func invalidateDetail(c echo.Context, productID uint) {
	if config.RedisClient == nil {
		return
	}
	cached := catalogService.NewCachedLookup(nil, config.RedisClient, 0)
	cached.Invalidate(c.Request().Context(), productID)
}
