package purchase

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"erp.GO/api"
	purchaseEntity "erp.GO/model/entity/purchase"
	purchaseRepo "erp.GO/model/repository/purchase"
	catalogService "erp.GO/service/catalog"
	purchaseService "erp.GO/service/purchase"
)

func init() {
	api.RegisterModule(RegisterPurchaseRoutes)
}

// lineInput is one posted form row.
type lineInput struct {
	ProductID uint     `json:"product_id"`
	VariantID uint     `json:"variant_id"`
	Quantity  int      `json:"quantity"`
	UnitPrice *float64 `json:"unit_price,omitempty"` // manual override
	Notes     string   `json:"notes"`
}

type orderInput struct {
	VendorID    uint                           `json:"vendor_id"`
	WarehouseID uint                           `json:"warehouse_id"`
	MiscAmount  float64                        `json:"misc_amount"`
	LineItems   []lineInput                    `json:"line_items"`
	Payments    []purchaseService.PaymentInput `json:"payments"`
	Notes       string                         `json:"notes"`
}

func RegisterPurchaseRoutes(apiGroup *echo.Group, db *gorm.DB) {
	repo := purchaseRepo.NewPurchaseRepository(db)
	g := apiGroup.Group("/purchase-orders")

	// GET /api/purchase-orders?status=&page=&limit=
	g.GET("", func(c echo.Context) error {
		limit, _ := strconv.Atoi(c.QueryParam("limit"))
		if limit <= 0 || limit > 500 {
			limit = 20
		}
		page, _ := strconv.Atoi(c.QueryParam("page"))
		if page < 1 {
			page = 1
		}
		orders, total, err := repo.FindAll(c.QueryParam("status"), limit, (page-1)*limit)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, echo.Map{"items": orders, "total": total})
	})

	// GET /api/purchase-orders/:id – with items and payments
	g.GET("/:id", func(c echo.Context) error {
		id, err := strconv.ParseUint(c.Param("id"), 10, 32)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid purchase order id"})
		}
		po, err := repo.FindByID(uint(id))
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "purchase order not found"})
		}
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, po)
	})

	// POST /api/purchase-orders/quote – price a draft form without persisting.
	// Drives a pricing session over the posted rows and returns resolved
	// prices, display groups, and running totals.
	g.POST("/quote", func(c echo.Context) error {
		var body orderInput
		if err := c.Bind(&body); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		session, err := driveSession(c, db, &body)
		if err != nil {
			return quoteError(c, err)
		}
		rows := session.Rows()
		orderTotal := session.OrderTotal(body.MiscAmount)
		paymentsTotal := purchaseService.PaymentsTotal(body.Payments)
		return c.JSON(http.StatusOK, echo.Map{
			"rows":           rows,
			"groups":         session.Groups(),
			"order_total":    orderTotal,
			"payments_total": paymentsTotal,
			"balance":        purchaseService.Balance(orderTotal, paymentsTotal),
		})
	})

	// POST /api/purchase-orders – validate, filter, and persist
	g.POST("", func(c echo.Context) error {
		var body orderInput
		if err := c.Bind(&body); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		session, err := driveSession(c, db, &body)
		if err != nil {
			return quoteError(c, err)
		}
		sub, err := purchaseService.BuildSubmission(session, body.Payments, body.MiscAmount)
		if err != nil {
			return quoteError(c, err)
		}

		orderNo, err := repo.NextOrderNo()
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		po := submissionToEntity(sub, orderNo, &body)
		if err := repo.Create(po); err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusCreated, echo.Map{
			"purchase_order": po,
			"order_total":    sub.OrderTotal,
			"payments_total": sub.PaymentsTotal,
			"balance":        sub.Balance,
		})
	})

	// PUT /api/purchase-orders/:id/status
	g.PUT("/:id/status", func(c echo.Context) error {
		id, err := strconv.ParseUint(c.Param("id"), 10, 32)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid purchase order id"})
		}
		var body struct {
			Status string `json:"status"`
		}
		if err := c.Bind(&body); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		switch body.Status {
		case purchaseEntity.StatusDraft, purchaseEntity.StatusOrdered,
			purchaseEntity.StatusPartial, purchaseEntity.StatusReceived,
			purchaseEntity.StatusCancelled:
		default:
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown status " + body.Status})
		}
		if err := repo.UpdateStatus(uint(id), body.Status); err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, echo.Map{"purchase_order_id": id, "status": body.Status})
	})

	// DELETE /api/purchase-orders/:id
	g.DELETE("/:id", func(c echo.Context) error {
		id, err := strconv.ParseUint(c.Param("id"), 10, 32)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid purchase order id"})
		}
		if err := repo.Delete(uint(id)); err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		return c.NoContent(http.StatusNoContent)
	})
}

// driveSession replays the posted rows through a pricing session so prices,
// variant checks, and vendor costs resolve server-side exactly as on the form.
func driveSession(c echo.Context, db *gorm.DB, body *orderInput) (*purchaseService.Session, error) {
	session := purchaseService.NewSession(purchaseService.NewCache(catalogService.DefaultLookup(db)))
	session.SetVendor(body.VendorID)

	ctx := c.Request().Context()
	for i, line := range body.LineItems {
		if i > 0 {
			if err := session.AddBlank(i); err != nil {
				return nil, err
			}
		}
		if line.ProductID != 0 {
			if err := session.SetProduct(ctx, i, line.ProductID); err != nil {
				return nil, err
			}
		}
		if line.VariantID != 0 {
			if err := session.SetVariant(i, line.VariantID); err != nil {
				return nil, err
			}
		}
		if line.Quantity != 0 {
			if err := session.SetQuantity(i, line.Quantity); err != nil {
				return nil, err
			}
		}
		if line.UnitPrice != nil {
			if err := session.SetUnitPrice(i, *line.UnitPrice); err != nil {
				return nil, err
			}
		}
		if line.Notes != "" {
			if err := session.SetNotes(i, line.Notes); err != nil {
				return nil, err
			}
		}
	}
	return session, nil
}

func quoteError(c echo.Context, err error) error {
	var verr *purchaseService.ValidationError
	if errors.As(err, &verr) {
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{"error": verr.Msg, "field": verr.Field})
	}
	var lerr *purchaseService.CatalogLookupError
	if errors.As(err, &lerr) {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusUnprocessableEntity, echo.Map{
				"error": "product not found", "product_id": lerr.ProductID,
			})
		}
		return c.JSON(http.StatusBadGateway, echo.Map{"error": lerr.Error()})
	}
	return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
}

func submissionToEntity(sub *purchaseService.Submission, orderNo string, body *orderInput) *purchaseEntity.PurchaseOrder {
	po := &purchaseEntity.PurchaseOrder{
		OrderNo:     orderNo,
		VendorID:    sub.VendorID,
		WarehouseID: body.WarehouseID,
		Status:      purchaseEntity.StatusDraft,
		OrderDate:   time.Now(),
		MiscAmount:  sub.MiscAmount,
		TotalAmount: sub.OrderTotal,
	}
	if body.Notes != "" {
		notes := body.Notes
		po.Notes = &notes
	}
	for _, item := range sub.LineItems {
		poItem := purchaseEntity.PurchaseOrderItem{
			ProductID: item.ProductID,
			VariantID: item.VariantID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		}
		if item.Notes != "" {
			notes := item.Notes
			poItem.Notes = &notes
		}
		po.Items = append(po.Items, poItem)
	}
	for _, p := range sub.Payments {
		payment := purchaseEntity.Payment{
			Amount:      p.Amount,
			Type:        p.Type,
			PaymentDate: datatypes.Date(p.PaymentDate),
		}
		if p.Notes != "" {
			notes := p.Notes
			payment.Notes = &notes
		}
		po.Payments = append(po.Payments, payment)
	}
	return po
}
