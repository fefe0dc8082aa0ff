package purchase

import "testing"

func TestOrderTotal(t *testing.T) {
	rows := []RowView{
		{ProductID: 1, Quantity: 3, UnitPrice: 10},
		{ProductID: 2, Quantity: 1, UnitPrice: 4.5},
		{Quantity: 1}, // unselected row contributes zero
	}
	if got := OrderTotal(rows, 5); got != 39.5 {
		t.Errorf("order total = %v, want 39.5", got)
	}
	if got := OrderTotal(nil, 0); got != 0 {
		t.Errorf("empty order total = %v, want 0", got)
	}
}

func TestBalance(t *testing.T) {
	payments := []PaymentInput{{Amount: 20, Type: 1}, {Amount: 4.5, Type: 2}}
	orderTotal := OrderTotal([]RowView{{ProductID: 1, Quantity: 3, UnitPrice: 10}}, 5)
	if got := Balance(orderTotal, PaymentsTotal(payments)); got != 10.5 {
		t.Errorf("balance = %v, want 10.5", got)
	}
}
