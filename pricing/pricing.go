// Package pricing computes order totals. Quote is pure: it reads the
// current catalog through a lookup function and never mutates anything.
package pricing

import (
	"sharee/cart"
	"sharee/models"
	"sharee/shipping"
)

// ProductLookup resolves a product id to its current catalog entry.
type ProductLookup func(productID string) (models.Product, bool)

// Totals is the displayed price breakdown.
type Totals struct {
	Subtotal    float64 `json:"subtotal"`
	ShippingFee float64 `json:"shippingFee"`
	Total       float64 `json:"total"`
}

// Quote prices the selection at current offer prices plus the flat zone
// fee. Lines whose product has vanished from the catalog are skipped so a
// concurrent admin delete cannot poison the quote.
func Quote(lines []cart.Line, lookup ProductLookup, zone shipping.Zone, rates shipping.RateTable) (Totals, error) {
	fee, err := rates.Fee(zone)
	if err != nil {
		return Totals{}, err
	}

	var subtotal float64
	for _, l := range lines {
		p, ok := lookup(l.ProductID)
		if !ok {
			continue
		}
		subtotal += p.OfferPrice * float64(l.Quantity)
	}

	return Totals{
		Subtotal:    subtotal,
		ShippingFee: fee,
		Total:       subtotal + fee,
	}, nil
}
