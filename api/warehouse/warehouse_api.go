package warehouse

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"erp.GO/api"
	warehouseEntity "erp.GO/model/entity/warehouse"
	warehouseRepo "erp.GO/model/repository/warehouse"
)

func init() {
	api.RegisterModule(RegisterWarehouseRoutes)
}

func RegisterWarehouseRoutes(apiGroup *echo.Group, db *gorm.DB) {
	repo := warehouseRepo.NewWarehouseRepository(db)
	g := apiGroup.Group("/warehouses")

	g.GET("", func(c echo.Context) error {
		warehouses, err := repo.FindAll()
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, echo.Map{"items": warehouses, "total": len(warehouses)})
	})

	g.GET("/:id", func(c echo.Context) error {
		id, err := strconv.ParseUint(c.Param("id"), 10, 32)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid warehouse id"})
		}
		w, err := repo.FindByID(uint(id))
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "warehouse not found"})
		}
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, w)
	})

	g.POST("", func(c echo.Context) error {
		var w warehouseEntity.Warehouse
		if err := c.Bind(&w); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		if w.Code == "" || w.Name == "" {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "code and name are required"})
		}
		if err := repo.Create(&w); err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusCreated, w)
	})

	g.PUT("/:id", func(c echo.Context) error {
		id, err := strconv.ParseUint(c.Param("id"), 10, 32)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid warehouse id"})
		}
		var w warehouseEntity.Warehouse
		if err := c.Bind(&w); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		w.WarehouseID = uint(id)
		if err := repo.Update(&w); err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, w)
	})

	g.DELETE("/:id", func(c echo.Context) error {
		id, err := strconv.ParseUint(c.Param("id"), 10, 32)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid warehouse id"})
		}
		if err := repo.Delete(uint(id)); err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		return c.NoContent(http.StatusNoContent)
	})
}
