package models

import (
	"time"

	"sharee/shipping"
)

// Product is a catalog entry. The image lives on the external media host;
// ImageID is the opaque handle needed to delete it there.
type Product struct {
	ProductID    string    `json:"productid" bson:"productid"`
	Name         string    `json:"name" bson:"name"`
	OfferPrice   float64   `json:"offerPrice" bson:"offerPrice"`
	RegularPrice float64   `json:"regularPrice" bson:"regularPrice"` // strikethrough price, expected >= OfferPrice
	Details      string    `json:"details" bson:"details"`
	ImageURL     string    `json:"imageURL" bson:"imageURL"`
	ImageID      string    `json:"imageID" bson:"imageID"`
	CreatedAt    time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt" bson:"updatedAt"`
}

// OrderItem is a snapshot of a product taken at submission time. Later
// catalog edits or deletions must not alter historical orders.
type OrderItem struct {
	ProductID string  `json:"productId" bson:"productId"`
	Name      string  `json:"name" bson:"name"`
	Price     float64 `json:"price" bson:"price"` // offer price when the order was placed
	ImageURL  string  `json:"imageURL,omitempty" bson:"imageURL,omitempty"`
	Quantity  int     `json:"quantity" bson:"quantity"`
}

// Order is a finalized customer order.
type Order struct {
	OrderID      string        `json:"orderId" bson:"orderId"`
	CustomerName string        `json:"customerName" bson:"customerName"`
	Phone        string        `json:"phone" bson:"phone"`
	Address      string        `json:"address" bson:"address"`
	Shipping     shipping.Zone `json:"shipping" bson:"shipping"`
	Items        []OrderItem   `json:"products" bson:"products"`
	TotalPrice   float64       `json:"totalPrice" bson:"totalPrice"` // stored fact, never recomputed
	Status       OrderStatus   `json:"status" bson:"status"`
	CreatedAt    time.Time     `json:"createdAt" bson:"createdAt"`
	UpdatedAt    time.Time     `json:"updatedAt" bson:"updatedAt"`
}

// Video is the single promotional embed. The store keeps at most one.
type Video struct {
	VideoID   string    `json:"videoid" bson:"videoid"`
	URL       string    `json:"url" bson:"url"`
	Title     string    `json:"title,omitempty" bson:"title,omitempty"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
}
