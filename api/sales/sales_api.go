package sales

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"erp.GO/api"
	salesEntity "erp.GO/model/entity/sales"
	salesRepo "erp.GO/model/repository/sales"
	orderService "erp.GO/service/order"
)

func init() {
	api.RegisterModule(RegisterSalesRoutes)
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

func RegisterSalesRoutes(apiGroup *echo.Group, db *gorm.DB) {
	repo := salesRepo.NewSalesRepository(db)

	orders := apiGroup.Group("/orders")

	// GET /api/orders?status=&sort=&dir=&customer=
	orders.GET("", func(c echo.Context) error {
		limit, offset := pagination(c)
		list, total, err := repo.FindAllOrders(c.QueryParam("status"), limit, offset)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		rows := orderService.Project(list)
		rows = orderService.Filter{Customer: c.QueryParam("customer")}.Apply(rows)
		if sortCol := c.QueryParam("sort"); sortCol != "" {
			orderService.Sort(rows, sortCol, c.QueryParam("dir") == "desc")
		}
		return c.JSON(http.StatusOK, echo.Map{"items": rows, "total": total})
	})

	// GET /api/orders/export.csv – filtered, sorted CSV download
	orders.GET("/export.csv", func(c echo.Context) error {
		rows, err := ExportRows(repo, ExportOptions{
			Status:   c.QueryParam("status"),
			Customer: c.QueryParam("customer"),
			Sort:     c.QueryParam("sort"),
			Desc:     c.QueryParam("dir") == "desc",
		})
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		c.Response().Header().Set(echo.HeaderContentType, "text/csv")
		c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="orders-`+time.Now().Format("2006-01-02")+`.csv"`)
		c.Response().WriteHeader(http.StatusOK)
		return orderService.WriteCSV(c.Response(), rows)
	})

	orders.GET("/:id", func(c echo.Context) error {
		id, err := strconv.ParseUint(c.Param("id"), 10, 32)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid order id"})
		}
		o, err := repo.FindOrderByID(uint(id))
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "order not found"})
		}
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, o)
	})

	orders.POST("", func(c echo.Context) error {
		var o salesEntity.Order
		if err := c.Bind(&o); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		if o.OrderNo == "" || o.CustomerID == 0 {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "order_no and customer_id are required"})
		}
		if err := repo.CreateOrder(&o); err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusCreated, o)
	})

	orders.PUT("/:id/status", func(c echo.Context) error {
		id, err := strconv.ParseUint(c.Param("id"), 10, 32)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid order id"})
		}
		var body struct {
			Status string `json:"status"`
		}
		if err := c.Bind(&body); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		if err := repo.UpdateOrderStatus(uint(id), body.Status); err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, echo.Map{"order_id": id, "status": body.Status})
	})

	customers := apiGroup.Group("/customers")

	customers.GET("", func(c echo.Context) error {
		limit, offset := pagination(c)
		list, total, err := repo.FindAllCustomers(limit, offset)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, echo.Map{"items": list, "total": total})
	})

	customers.GET("/:id", func(c echo.Context) error {
		id, err := strconv.ParseUint(c.Param("id"), 10, 32)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid customer id"})
		}
		customer, err := repo.FindCustomerByID(uint(id))
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "customer not found"})
		}
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, customer)
	})

	customers.POST("", func(c echo.Context) error {
		var customer salesEntity.Customer
		if err := c.Bind(&customer); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		if customer.Email == "" {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "email is required"})
		}
		if err := repo.CreateCustomer(&customer); err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusCreated, customer)
	})

	customers.PUT("/:id", func(c echo.Context) error {
		id, err := strconv.ParseUint(c.Param("id"), 10, 32)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid customer id"})
		}
		var customer salesEntity.Customer
		if err := c.Bind(&customer); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		customer.CustomerID = uint(id)
		if err := repo.UpdateCustomer(&customer); err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, customer)
	})
}

type ExportOptions struct {
	Status   string
	Customer string
	Sort     string
	Desc     bool
}

// ExportRows loads every matching order (no pagination) and prepares the
// projection rows for CSV output. Shared with the orders:export CLI command.
func ExportRows(repo *salesRepo.SalesRepository, opts ExportOptions) ([]orderService.Projection, error) {
	list, _, err := repo.FindAllOrders(opts.Status, 0, 0)
	if err != nil {
		return nil, err
	}
	rows := orderService.Project(list)
	rows = orderService.Filter{Customer: opts.Customer}.Apply(rows)
	sortCol := opts.Sort
	if sortCol == "" {
		sortCol = "created_at"
	}
	orderService.Sort(rows, sortCol, opts.Desc)
	return rows, nil
}
