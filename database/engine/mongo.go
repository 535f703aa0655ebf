package engine

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const snapshotCollection = "snapshots"

type snapshotDoc struct {
	Key      string `bson:"_id"`
	Value    []byte `bson:"value"`
	Revision int64  `bson:"revision"`
}

// Mongo stores one document per key in the "snapshots" collection.
type Mongo struct {
	client *mongo.Client
	coll   *mongo.Collection
}

func NewMongo(client *mongo.Client, database string) *Mongo {
	return &Mongo{
		client: client,
		coll:   client.Database(database).Collection(snapshotCollection),
	}
}

func (m *Mongo) Name() string { return "mongo" }

func (m *Mongo) Get(ctx context.Context, key string) (Entry, bool, error) {
	var doc snapshotDoc
	err := m.coll.FindOne(ctx, bson.M{"_id": key}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return Entry{}, false, nil
	}
	if err != nil {
		return Entry{}, false, fmt.Errorf("find %s: %w", key, err)
	}
	return Entry{Value: doc.Value, Revision: doc.Revision}, true, nil
}

func (m *Mongo) Put(ctx context.Context, key string, value []byte, expected int64) (int64, error) {
	next := expected + 1

	if expected == 0 {
		_, err := m.coll.InsertOne(ctx, snapshotDoc{Key: key, Value: value, Revision: next})
		if mongo.IsDuplicateKeyError(err) {
			return 0, ErrRevisionMismatch
		}
		if err != nil {
			return 0, fmt.Errorf("insert %s: %w", key, err)
		}
		return next, nil
	}

	res, err := m.coll.UpdateOne(ctx,
		bson.M{"_id": key, "revision": expected},
		bson.M{"$set": bson.M{"value": value, "revision": next}},
	)
	if err != nil {
		return 0, fmt.Errorf("update %s: %w", key, err)
	}
	if res.MatchedCount == 0 {
		return 0, ErrRevisionMismatch
	}
	return next, nil
}

func (m *Mongo) Delete(ctx context.Context, key string) error {
	if _, err := m.coll.DeleteOne(ctx, bson.M{"_id": key}); err != nil {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return nil
}

func (m *Mongo) Ping(ctx context.Context) error {
	return m.client.Ping(ctx, nil)
}

func (m *Mongo) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}
