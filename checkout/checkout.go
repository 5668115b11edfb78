// Package checkout validates and assembles a submittable order from the
// current cart selection and contact fields, then hands it to the order
// store.
package checkout

import (
	"context"
	"fmt"
	"strings"
	"time"

	"sharee/cart"
	"sharee/models"
	"sharee/pricing"
	"sharee/shipping"
	"sharee/store"
	"sharee/utils"
)

// ValidationError is a user-correctable input problem, detected before any
// external call is made.
type ValidationError struct {
	Reason string // "empty_cart" or "missing_contact_field"
	Field  string // set for missing_contact_field
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed: %s (%s)", e.Reason, e.Field)
	}
	return "validation failed: " + e.Reason
}

// SubmissionError means the order passed validation but persistence failed.
// The cart is left intact so the customer can retry.
type SubmissionError struct {
	Cause error
}

func (e *SubmissionError) Error() string { return "order submission failed: " + e.Cause.Error() }
func (e *SubmissionError) Unwrap() error { return e.Cause }

// Contact is the customer-supplied delivery information.
type Contact struct {
	CustomerName string `json:"customerName"`
	Phone        string `json:"phone"`
	Address      string `json:"address"`
}

// Builder assembles and persists order submissions.
type Builder struct {
	Orders store.OrderStore
	Rates  shipping.RateTable
}

// Submit validates the selection and contact fields, snapshots the selected
// products at their current offer prices, prices the order, and creates it
// with status pending. On success the selection is cleared; on any failure
// it is left untouched. Submit is not idempotent: calling it twice with the
// same data creates two orders.
func (b *Builder) Submit(ctx context.Context, sel *cart.Selection, lookup pricing.ProductLookup, zone shipping.Zone, contact Contact) (models.Order, error) {
	if sel.IsEmpty() {
		return models.Order{}, &ValidationError{Reason: "empty_cart"}
	}
	for _, f := range []struct {
		name  string
		value string
	}{
		{"customerName", contact.CustomerName},
		{"phone", contact.Phone},
		{"address", contact.Address},
	} {
		if strings.TrimSpace(f.value) == "" {
			return models.Order{}, &ValidationError{Reason: "missing_contact_field", Field: f.name}
		}
	}

	lines := sel.Lines()
	totals, err := pricing.Quote(lines, lookup, zone, b.Rates)
	if err != nil {
		return models.Order{}, err
	}

	items := make([]models.OrderItem, 0, len(lines))
	for _, l := range lines {
		p, ok := lookup(l.ProductID)
		if !ok {
			continue
		}
		items = append(items, models.OrderItem{
			ProductID: p.ProductID,
			Name:      p.Name,
			Price:     p.OfferPrice,
			ImageURL:  p.ImageURL,
			Quantity:  l.Quantity,
		})
	}

	now := time.Now()
	order := models.Order{
		OrderID:      utils.GetUUID(),
		CustomerName: strings.TrimSpace(contact.CustomerName),
		Phone:        strings.TrimSpace(contact.Phone),
		Address:      strings.TrimSpace(contact.Address),
		Shipping:     zone,
		Items:        items,
		TotalPrice:   totals.Total,
		Status:       models.StatusPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := b.Orders.Create(ctx, order); err != nil {
		return models.Order{}, &SubmissionError{Cause: err}
	}

	sel.Clear()
	return order, nil
}
