// Package store defines the persistence contracts the rest of the server
// is written against, plus their MongoDB implementations.
package store

import (
	"context"
	"errors"

	"sharee/models"
)

// ErrNotFound is returned when a referenced document does not exist.
var ErrNotFound = errors.New("not found")

// ErrNoVideo is returned by Latest when no promo video has been set.
var ErrNoVideo = errors.New("no video set")

type ProductStore interface {
	Create(ctx context.Context, p models.Product) error
	List(ctx context.Context) ([]models.Product, error)
	FindByID(ctx context.Context, id string) (models.Product, error)
	Delete(ctx context.Context, id string) error
}

type OrderStore interface {
	Create(ctx context.Context, o models.Order) error
	// List returns all orders, newest first.
	List(ctx context.Context) ([]models.Order, error)
	FindByID(ctx context.Context, id string) (models.Order, error)
	// UpdateStatus sets the status unconditionally and returns the updated
	// order. Last write wins; no transition rules.
	UpdateStatus(ctx context.Context, id string, status models.OrderStatus) (models.Order, error)
	Delete(ctx context.Context, id string) error
}

type VideoStore interface {
	// Replace removes any existing video before inserting the new one, so
	// at most one is ever active.
	Replace(ctx context.Context, v models.Video) error
	Latest(ctx context.Context) (models.Video, error)
}
