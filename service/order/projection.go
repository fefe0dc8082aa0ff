package order

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"time"

	salesEntity "erp.GO/model/entity/sales"
)

// Projection is the flat, display-ready shape of a sales order used by the
// console's order table and the CSV export.
type Projection struct {
	OrderID   uint      `json:"order_id"`
	OrderNo   string    `json:"order_no"`
	Customer  string    `json:"customer"`
	Status    string    `json:"status"`
	ItemCount int       `json:"item_count"`
	Total     float64   `json:"total"`
	CreatedAt time.Time `json:"created_at"`
}

// Project flattens orders into projections. Customer names collapse to the
// email when no name parts are set.
func Project(orders []salesEntity.Order) []Projection {
	out := make([]Projection, len(orders))
	for i, o := range orders {
		out[i] = Projection{
			OrderID:   o.OrderID,
			OrderNo:   o.OrderNo,
			Customer:  customerLabel(o.Customer),
			Status:    o.Status,
			ItemCount: len(o.Items),
			Total:     o.TotalAmount,
			CreatedAt: o.CreatedAt,
		}
	}
	return out
}

func customerLabel(c *salesEntity.Customer) string {
	if c == nil {
		return ""
	}
	var parts []string
	if c.Firstname != nil && *c.Firstname != "" {
		parts = append(parts, *c.Firstname)
	}
	if c.Lastname != nil && *c.Lastname != "" {
		parts = append(parts, *c.Lastname)
	}
	if len(parts) == 0 {
		return c.Email
	}
	return strings.Join(parts, " ")
}

// Filter narrows projections. Zero-valued fields match everything.
type Filter struct {
	Status   string
	Customer string // case-insensitive substring
	From     time.Time
	To       time.Time
}

func (f Filter) Apply(rows []Projection) []Projection {
	out := make([]Projection, 0, len(rows))
	needle := strings.ToLower(f.Customer)
	for _, r := range rows {
		if f.Status != "" && r.Status != f.Status {
			continue
		}
		if needle != "" && !strings.Contains(strings.ToLower(r.Customer), needle) {
			continue
		}
		if !f.From.IsZero() && r.CreatedAt.Before(f.From) {
			continue
		}
		if !f.To.IsZero() && r.CreatedAt.After(f.To) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// Sort orders projections by column name ("order_no", "customer", "status",
// "total", "created_at"; anything else sorts by order id). The sort is
// stable so ties keep their incoming order.
func Sort(rows []Projection, column string, desc bool) {
	var less func(a, b Projection) bool
	switch column {
	case "order_no":
		less = func(a, b Projection) bool { return a.OrderNo < b.OrderNo }
	case "customer":
		less = func(a, b Projection) bool { return a.Customer < b.Customer }
	case "status":
		less = func(a, b Projection) bool { return a.Status < b.Status }
	case "total":
		less = func(a, b Projection) bool { return a.Total < b.Total }
	case "created_at":
		less = func(a, b Projection) bool { return a.CreatedAt.Before(b.CreatedAt) }
	default:
		less = func(a, b Projection) bool { return a.OrderID < b.OrderID }
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if desc {
			return less(rows[j], rows[i])
		}
		return less(rows[i], rows[j])
	})
}

// WriteCSV streams projections as CSV with a header row.
func WriteCSV(w io.Writer, rows []Projection) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"order_no", "customer", "status", "items", "total", "created_at"}); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, r := range rows {
		record := []string{
			r.OrderNo,
			r.Customer,
			r.Status,
			strconv.Itoa(r.ItemCount),
			strconv.FormatFloat(r.Total, 'f', 2, 64),
			r.CreatedAt.Format(time.RFC3339),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write csv row %s: %w", r.OrderNo, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
