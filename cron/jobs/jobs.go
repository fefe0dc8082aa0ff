package jobs

import (
	"log"
	"os"
	"strconv"
	"sync"
	"time"

	"gorm.io/gorm"
)

var (
	mu sync.RWMutex
	db *gorm.DB
)

// Init hands the shared DB handle to the job package. Call once at startup
// before the scheduler runs.
func Init(d *gorm.DB) {
	mu.Lock()
	db = d
	mu.Unlock()
}

func getDB() *gorm.DB {
	mu.RLock()
	defer mu.RUnlock()
	return db
}

// PoExpireJob cancels draft purchase orders older than PO_DRAFT_TTL_DAYS (default 30).
func PoExpireJob(args ...string) {
	d := getDB()
	if d == nil {
		log.Println("poexpirejob: no DB configured, skipping")
		return
	}
	days := 30
	if v, err := strconv.Atoi(os.Getenv("PO_DRAFT_TTL_DAYS")); err == nil && v > 0 {
		days = v
	}
	cutoff := time.Now().AddDate(0, 0, -days)
	res := d.Table("purchase_order").
		Where("status = ? AND updated_at < ?", "draft", cutoff).
		Update("status", "cancelled")
	if res.Error != nil {
		log.Printf("poexpirejob: %v", res.Error)
		return
	}
	if res.RowsAffected > 0 {
		log.Printf("poexpirejob: cancelled %d stale draft POs", res.RowsAffected)
	}
}

// DashboardSnapshotJob pre-warms the dashboard counters so the first console
// hit after a cache expiry stays fast.
func DashboardSnapshotJob(args ...string) {
	d := getDB()
	if d == nil {
		log.Println("dashboardsnapshotjob: no DB configured, skipping")
		return
	}
	if warm := warmFunc(); warm != nil {
		if err := warm(d); err != nil {
			log.Printf("dashboardsnapshotjob: %v", err)
		}
	}
}

var (
	warmMu sync.RWMutex
	warm   func(*gorm.DB) error
)

// RegisterDashboardWarmer is set by the dashboard API module so the job can
// refresh its snapshot without an import cycle.
func RegisterDashboardWarmer(fn func(*gorm.DB) error) {
	warmMu.Lock()
	warm = fn
	warmMu.Unlock()
}

func warmFunc() func(*gorm.DB) error {
	warmMu.RLock()
	defer warmMu.RUnlock()
	return warm
}
