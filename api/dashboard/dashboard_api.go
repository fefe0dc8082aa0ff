package dashboard

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"erp.GO/api"
	"erp.GO/config"
	coreCache "erp.GO/core/cache"
	"erp.GO/cron/jobs"
	catalogEntity "erp.GO/model/entity/catalog"
	salesEntity "erp.GO/model/entity/sales"
	vendorEntity "erp.GO/model/entity/vendor"
	warehouseEntity "erp.GO/model/entity/warehouse"
	purchaseRepo "erp.GO/model/repository/purchase"
)

const (
	snapshotKey = "dashboard:snapshot"
	snapshotTTL = 300 // seconds
)

func init() {
	api.RegisterModule(RegisterDashboardRoutes)
	jobs.RegisterDashboardWarmer(Warm)
}

// Snapshot is the console landing-page summary.
type Snapshot struct {
	Products           int64            `json:"products"`
	Vendors            int64            `json:"vendors"`
	Warehouses         int64            `json:"warehouses"`
	Customers          int64            `json:"customers"`
	Orders             int64            `json:"orders"`
	PurchaseOrders     map[string]int64 `json:"purchase_orders"`
	OutstandingBalance float64          `json:"outstanding_balance"`
	GeneratedAt        time.Time        `json:"generated_at"`
}

func RegisterDashboardRoutes(apiGroup *echo.Group, db *gorm.DB) {
	apiGroup.GET("/dashboard", func(c echo.Context) error {
		if snap, ok := cachedSnapshot(c); ok {
			return c.JSON(http.StatusOK, snap)
		}
		snap, err := BuildSnapshot(db)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		storeSnapshot(c, snap)
		return c.JSON(http.StatusOK, snap)
	})
}

// BuildSnapshot runs the summary queries in parallel.
func BuildSnapshot(db *gorm.DB) (*Snapshot, error) {
	snap := &Snapshot{GeneratedAt: time.Now()}
	var g errgroup.Group

	count := func(model interface{}, dest *int64) func() error {
		return func() error {
			return db.Model(model).Count(dest).Error
		}
	}
	g.Go(count(&catalogEntity.Product{}, &snap.Products))
	g.Go(count(&vendorEntity.Vendor{}, &snap.Vendors))
	g.Go(count(&warehouseEntity.Warehouse{}, &snap.Warehouses))
	g.Go(count(&salesEntity.Customer{}, &snap.Customers))
	g.Go(count(&salesEntity.Order{}, &snap.Orders))
	g.Go(func() error {
		byStatus, err := purchaseRepo.NewPurchaseRepository(db).CountByStatus()
		if err != nil {
			return err
		}
		snap.PurchaseOrders = byStatus
		return nil
	})
	g.Go(func() error {
		balance, err := purchaseRepo.NewPurchaseRepository(db).OutstandingBalance()
		if err != nil {
			return err
		}
		snap.OutstandingBalance = balance
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return snap, nil
}

// Warm refreshes the cached snapshot; wired into the cron scheduler.
func Warm(db *gorm.DB) error {
	snap, err := BuildSnapshot(db)
	if err != nil {
		return err
	}
	if config.RedisClient != nil {
		payload, err := json.Marshal(snap)
		if err != nil {
			return err
		}
		return config.RedisClient.Set(config.RedisCtx(), snapshotKey, payload, snapshotTTL*time.Second).Err()
	}
	coreCache.GetInstance().Set(snapshotKey, snap, snapshotTTL, []string{"dashboard"})
	return nil
}

func cachedSnapshot(c echo.Context) (*Snapshot, bool) {
	if config.RedisClient != nil {
		payload, err := config.RedisClient.Get(c.Request().Context(), snapshotKey).Bytes()
		if err != nil {
			return nil, false
		}
		var snap Snapshot
		if err := json.Unmarshal(payload, &snap); err != nil {
			return nil, false
		}
		return &snap, true
	}
	if v, ok := coreCache.GetInstance().Get(snapshotKey); ok {
		if snap, ok := v.(*Snapshot); ok {
			return snap, true
		}
	}
	return nil, false
}

func storeSnapshot(c echo.Context, snap *Snapshot) {
	if config.RedisClient != nil {
		if payload, err := json.Marshal(snap); err == nil {
			config.RedisClient.Set(c.Request().Context(), snapshotKey, payload, snapshotTTL*time.Second)
		}
		return
	}
	coreCache.GetInstance().Set(snapshotKey, snap, snapshotTTL, []string{"dashboard"})
}
