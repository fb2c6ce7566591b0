package services

// Pricing constants. Amounts are in rupees; GST is a flat 18%, shipping is
// tiered on the taxed total, and cash-on-delivery carries a 2% handling charge.
const (
	GSTRate           = 0.18
	ShippingThreshold = 10000
	ShippingBelow     = 1000
	ShippingAbove     = 5000
	PostpaidRate      = 0.02
)

// Quote is the monetary breakdown of one checkout.
type Quote struct {
	TotalPrice      float64
	GSTAmount       float64
	ShippingFee     float64
	Discount        float64
	FinalPrice      float64
	PostpaidCharges float64
}

// ShippingFee returns the shipping tier for a taxed order total.
func ShippingFee(taxedTotal float64) float64 {
	if taxedTotal < ShippingThreshold {
		return ShippingBelow
	}
	return ShippingAbove
}

// ComputeQuote prices an order: unit price times quantity, 18% GST, tiered
// shipping, minus the coupon discount. The postpaid charge is computed on the
// final price but not folded into it; it is persisted and shown on invoices
// for cash-on-delivery handling.
func ComputeQuote(unitPrice float64, quantity int, discount float64) Quote {
	if quantity < 0 {
		quantity = 0
	}
	if discount < 0 {
		discount = 0
	}

	total := unitPrice * float64(quantity)
	gst := total * GSTRate
	shipping := ShippingFee(total + gst)
	final := total + gst + shipping - discount

	return Quote{
		TotalPrice:      total,
		GSTAmount:       gst,
		ShippingFee:     shipping,
		Discount:        discount,
		FinalPrice:      final,
		PostpaidCharges: final * PostpaidRate,
	}
}

// PaymentSplit is the initial online/COD division of a quote's final price.
// Online amounts accrue later, as Razorpay captures payments.
type PaymentSplit struct {
	OnlinePaidAmount float64
	CODAmount        float64
}

// SplitPayment assigns the payable amount by payment method. Prepaid orders owe
// everything online; COD and partial orders start fully on delivery and move to
// the online column as captures land.
func SplitPayment(q Quote, paymentMethod string) PaymentSplit {
	switch paymentMethod {
	case "prepaid":
		return PaymentSplit{OnlinePaidAmount: 0, CODAmount: 0}
	default:
		return PaymentSplit{OnlinePaidAmount: 0, CODAmount: q.FinalPrice}
	}
}
