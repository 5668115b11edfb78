// Package db owns the MongoDB connection and the collection handles the
// stores are built on.
package db

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type DB struct {
	Client *mongo.Client

	ProductsCollection *mongo.Collection
	OrdersCollection   *mongo.Collection
	VideosCollection   *mongo.Collection
}

// Connect dials MongoDB and resolves the collections. Connection failure
// is fatal at startup, not recoverable per request.
func Connect(ctx context.Context, uri, dbName string) (*DB, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, nil); err != nil {
		return nil, err
	}

	database := client.Database(dbName)
	return &DB{
		Client:             client,
		ProductsCollection: database.Collection("products"),
		OrdersCollection:   database.Collection("orders"),
		VideosCollection:   database.Collection("videos"),
	}, nil
}

func (d *DB) Close(ctx context.Context) error {
	return d.Client.Disconnect(ctx)
}
