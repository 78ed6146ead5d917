package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	mongoDatabase   = "tillbook"
	mongoCollection = "blobs"
)

// documents is the subset of *mongo.Collection used by Mongo.
type documents interface {
	FindOne(ctx context.Context, filter interface{}, opts ...*options.FindOneOptions) *mongo.SingleResult
	UpdateOne(ctx context.Context, filter interface{}, update interface{}, opts ...*options.UpdateOptions) (*mongo.UpdateResult, error)
}

// blob is the document stored per key.
type blob struct {
	Key   string `bson:"_id"`
	Value []byte `bson:"value"`
}

// Mongo is a Store keeping one document per key in a mongodb collection.
type Mongo struct {
	client *mongo.Client
	docs   documents
}

// OpenMongo connects to the mongodb server at uri.
func OpenMongo(ctx context.Context, uri string, log logrus.FieldLogger) (*Mongo, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		client.Disconnect(ctx)
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}
	log.WithField("database", mongoDatabase).Debug("connect-mongodb")
	return &Mongo{client: client, docs: client.Database(mongoDatabase).Collection(mongoCollection)}, nil
}

func (m *Mongo) Get(ctx context.Context, key string) ([]byte, error) {
	var b blob
	err := m.docs.FindOne(ctx, bson.M{"_id": key}).Decode(&b)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read %q: %w", key, err)
	}
	return b.Value, nil
}

func (m *Mongo) Put(ctx context.Context, key string, value []byte) error {
	_, err := m.docs.UpdateOne(ctx,
		bson.M{"_id": key},
		bson.M{"$set": bson.M{"value": value}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("cannot write %q: %w", key, err)
	}
	return nil
}

func (m *Mongo) Close() error {
	if m.client == nil {
		return nil
	}
	return m.client.Disconnect(context.Background())
}
