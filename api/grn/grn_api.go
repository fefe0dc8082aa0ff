package grn

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"erp.GO/api"
	grnEntity "erp.GO/model/entity/grn"
	grnRepo "erp.GO/model/repository/grn"
)

func init() {
	api.RegisterModule(RegisterGrnRoutes)
}

func RegisterGrnRoutes(apiGroup *echo.Group, db *gorm.DB) {
	repo := grnRepo.NewGrnRepository(db)
	g := apiGroup.Group("/grns")

	// GET /api/grns?purchase_order_id=&page=&limit=
	g.GET("", func(c echo.Context) error {
		limit, _ := strconv.Atoi(c.QueryParam("limit"))
		if limit <= 0 || limit > 500 {
			limit = 20
		}
		page, _ := strconv.Atoi(c.QueryParam("page"))
		if page < 1 {
			page = 1
		}
		poID, _ := strconv.ParseUint(c.QueryParam("purchase_order_id"), 10, 32)
		receipts, total, err := repo.FindAll(uint(poID), limit, (page-1)*limit)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, echo.Map{"items": receipts, "total": total})
	})

	// GET /api/grns/:id
	g.GET("/:id", func(c echo.Context) error {
		id, err := strconv.ParseUint(c.Param("id"), 10, 32)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid receipt id"})
		}
		receipt, err := repo.FindByID(uint(id))
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "goods receipt not found"})
		}
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, receipt)
	})

	// POST /api/grns – receive against a PO; updates received quantities and
	// flips the PO to partial/received.
	g.POST("", func(c echo.Context) error {
		var receipt grnEntity.GoodsReceipt
		if err := c.Bind(&receipt); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		if receipt.PurchaseOrderID == 0 {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "purchase_order_id is required"})
		}
		if len(receipt.Items) == 0 {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "items are required"})
		}
		for _, item := range receipt.Items {
			if item.Quantity <= 0 {
				return c.JSON(http.StatusBadRequest, echo.Map{"error": "item quantities must be positive"})
			}
		}
		if receipt.GrnNo == "" {
			grnNo, err := repo.NextGrnNo()
			if err != nil {
				return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
			}
			receipt.GrnNo = grnNo
		}
		if err := repo.Receive(&receipt); err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusCreated, receipt)
	})
}
