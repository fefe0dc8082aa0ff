package purchase

// Totals are pure and recomputed on every read so they can never drift from
// the current row/payment state.

func LineTotal(quantity int, unitPrice float64) float64 {
	return float64(quantity) * unitPrice
}

func OrderTotal(rows []RowView, miscAmount float64) float64 {
	total := miscAmount
	for _, r := range rows {
		total += LineTotal(r.Quantity, r.UnitPrice)
	}
	return total
}

func PaymentsTotal(payments []PaymentInput) float64 {
	var total float64
	for _, p := range payments {
		total += p.Amount
	}
	return total
}

func Balance(orderTotal, paymentsTotal float64) float64 {
	return orderTotal - paymentsTotal
}
