package store

import (
	"context"
	"time"

	"sharee/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoProductStore persists products in a single collection.
type MongoProductStore struct {
	col *mongo.Collection
}

func NewMongoProductStore(col *mongo.Collection) *MongoProductStore {
	return &MongoProductStore{col: col}
}

func (s *MongoProductStore) Create(ctx context.Context, p models.Product) error {
	_, err := s.col.InsertOne(ctx, p)
	return err
}

func (s *MongoProductStore) List(ctx context.Context) ([]models.Product, error) {
	cursor, err := s.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var products []models.Product
	if err := cursor.All(ctx, &products); err != nil {
		return nil, err
	}
	if products == nil {
		products = []models.Product{}
	}
	return products, nil
}

func (s *MongoProductStore) FindByID(ctx context.Context, id string) (models.Product, error) {
	var p models.Product
	err := s.col.FindOne(ctx, bson.M{"productid": id}).Decode(&p)
	if err == mongo.ErrNoDocuments {
		return models.Product{}, ErrNotFound
	}
	return p, err
}

func (s *MongoProductStore) Delete(ctx context.Context, id string) error {
	res, err := s.col.DeleteOne(ctx, bson.M{"productid": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// MongoOrderStore persists orders.
type MongoOrderStore struct {
	col *mongo.Collection
}

func NewMongoOrderStore(col *mongo.Collection) *MongoOrderStore {
	return &MongoOrderStore{col: col}
}

func (s *MongoOrderStore) Create(ctx context.Context, o models.Order) error {
	_, err := s.col.InsertOne(ctx, o)
	return err
}

func (s *MongoOrderStore) List(ctx context.Context) ([]models.Order, error) {
	opts := options.Find().SetSort(bson.M{"createdAt": -1})
	cursor, err := s.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var orders []models.Order
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, err
	}
	if orders == nil {
		orders = []models.Order{}
	}
	return orders, nil
}

func (s *MongoOrderStore) FindByID(ctx context.Context, id string) (models.Order, error) {
	var o models.Order
	err := s.col.FindOne(ctx, bson.M{"orderId": id}).Decode(&o)
	if err == mongo.ErrNoDocuments {
		return models.Order{}, ErrNotFound
	}
	return o, err
}

func (s *MongoOrderStore) UpdateStatus(ctx context.Context, id string, status models.OrderStatus) (models.Order, error) {
	update := bson.M{"$set": bson.M{"status": status, "updatedAt": time.Now()}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var o models.Order
	err := s.col.FindOneAndUpdate(ctx, bson.M{"orderId": id}, update, opts).Decode(&o)
	if err == mongo.ErrNoDocuments {
		return models.Order{}, ErrNotFound
	}
	return o, err
}

func (s *MongoOrderStore) Delete(ctx context.Context, id string) error {
	res, err := s.col.DeleteOne(ctx, bson.M{"orderId": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// MongoVideoStore keeps the single promo video.
type MongoVideoStore struct {
	col *mongo.Collection
}

func NewMongoVideoStore(col *mongo.Collection) *MongoVideoStore {
	return &MongoVideoStore{col: col}
}

func (s *MongoVideoStore) Replace(ctx context.Context, v models.Video) error {
	if _, err := s.col.DeleteMany(ctx, bson.M{}); err != nil {
		return err
	}
	_, err := s.col.InsertOne(ctx, v)
	return err
}

func (s *MongoVideoStore) Latest(ctx context.Context) (models.Video, error) {
	opts := options.FindOne().SetSort(bson.M{"createdAt": -1})

	var v models.Video
	err := s.col.FindOne(ctx, bson.M{}, opts).Decode(&v)
	if err == mongo.ErrNoDocuments {
		return models.Video{}, ErrNoVideo
	}
	return v, err
}
