package order

import (
	"strings"
	"testing"
	"time"

	salesEntity "erp.GO/model/entity/sales"
)

func sp(s string) *string { return &s }

func fixtureOrders() []salesEntity.Order {
	t0 := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	return []salesEntity.Order{
		{
			OrderID: 1, OrderNo: "SO-000001", Status: salesEntity.StatusPaid,
			TotalAmount: 120, CreatedAt: t0,
			Items:    []salesEntity.OrderItem{{SKU: "A"}, {SKU: "B"}},
			Customer: &salesEntity.Customer{Firstname: sp("Ada"), Lastname: sp("Okafor"), Email: "ada@example.com"},
		},
		{
			OrderID: 2, OrderNo: "SO-000002", Status: salesEntity.StatusPending,
			TotalAmount: 45.5, CreatedAt: t0.Add(24 * time.Hour),
			Customer:    &salesEntity.Customer{Email: "nameless@example.com"},
		},
		{
			OrderID: 3, OrderNo: "SO-000003", Status: salesEntity.StatusPaid,
			TotalAmount: 80, CreatedAt: t0.Add(48 * time.Hour),
			Customer:    &salesEntity.Customer{Firstname: sp("Bo"), Email: "bo@example.com"},
		},
	}
}

func TestProject(t *testing.T) {
	rows := Project(fixtureOrders())
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want 3", len(rows))
	}
	if rows[0].Customer != "Ada Okafor" || rows[0].ItemCount != 2 {
		t.Errorf("row 0 = %+v, want full name with 2 items", rows[0])
	}
	if rows[1].Customer != "nameless@example.com" {
		t.Errorf("row 1 customer = %q, want email fallback", rows[1].Customer)
	}
}

func TestFilter(t *testing.T) {
	rows := Project(fixtureOrders())

	paid := Filter{Status: salesEntity.StatusPaid}.Apply(rows)
	if len(paid) != 2 {
		t.Errorf("status filter kept %d rows, want 2", len(paid))
	}

	ada := Filter{Customer: "ada"}.Apply(rows)
	if len(ada) != 1 || ada[0].OrderNo != "SO-000001" {
		t.Errorf("customer filter = %+v, want only SO-000001", ada)
	}

	from := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	recent := Filter{From: from}.Apply(rows)
	if len(recent) != 2 {
		t.Errorf("from filter kept %d rows, want 2", len(recent))
	}
}

func TestSort(t *testing.T) {
	rows := Project(fixtureOrders())

	Sort(rows, "total", false)
	if rows[0].Total != 45.5 || rows[2].Total != 120 {
		t.Errorf("total asc = %v, %v, %v", rows[0].Total, rows[1].Total, rows[2].Total)
	}

	Sort(rows, "created_at", true)
	if rows[0].OrderNo != "SO-000003" {
		t.Errorf("created_at desc first = %s, want SO-000003", rows[0].OrderNo)
	}

	Sort(rows, "bogus", false)
	if rows[0].OrderID != 1 {
		t.Errorf("unknown column should sort by order id, got %d first", rows[0].OrderID)
	}
}

func TestWriteCSV(t *testing.T) {
	rows := Project(fixtureOrders()[:1])
	var buf strings.Builder
	if err := WriteCSV(&buf, rows); err != nil {
		t.Fatalf("write csv: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want header + 1 row", len(lines))
	}
	if lines[0] != "order_no,customer,status,items,total,created_at" {
		t.Errorf("header = %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "SO-000001,Ada Okafor,paid,2,120.00,") {
		t.Errorf("row = %q", lines[1])
	}
}
