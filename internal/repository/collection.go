package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Filter is an exact-match equality filter over one or more document fields,
// e.g. {"email": "a@b.c"} or {"status": "approved"}.
type Filter map[string]any

// InsertResult reports the outcome of an insert, shaped like the raw driver
// acknowledgement the API has always returned to clients.
type InsertResult struct {
	Acknowledged bool   `json:"acknowledged"`
	InsertedID   string `json:"insertedId"`
}

// UpdateResult reports how many documents an update matched and modified.
type UpdateResult struct {
	Acknowledged  bool  `json:"acknowledged"`
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
}

// DeleteResult reports how many documents a delete removed.
type DeleteResult struct {
	Acknowledged bool  `json:"acknowledged"`
	DeletedCount int64 `json:"deletedCount"`
}

// Collection is the store abstraction every typed repo is built on: simple
// query/insert/update/delete operations keyed by equality filters or ids.
// It provides no cross-document transactions; multi-document consistency is
// the caller's responsibility. Find and FindOne return raw BSON so typed
// decoding stays in the repos.
type Collection interface {
	Find(ctx context.Context, filter Filter) ([]bson.Raw, error)
	FindOne(ctx context.Context, filter Filter) (bson.Raw, error)
	InsertOne(ctx context.Context, doc any) (InsertResult, error)
	UpdateByID(ctx context.Context, id string, set Filter) (UpdateResult, error)
	IncByID(ctx context.Context, id string, field string, delta int) (UpdateResult, error)
	DeleteByID(ctx context.Context, id string) (DeleteResult, error)
}

// MongoCollection implements Collection on top of a driver collection.
type MongoCollection struct {
	col *mongo.Collection
}

// NewMongoCollection wraps a driver collection.
func NewMongoCollection(col *mongo.Collection) *MongoCollection {
	return &MongoCollection{col: col}
}

func (m *MongoCollection) Find(ctx context.Context, filter Filter) ([]bson.Raw, error) {
	cur, err := m.col.Find(ctx, toBSON(filter))
	if err != nil {
		return nil, err
	}
	var docs []bson.Raw
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

func (m *MongoCollection) FindOne(ctx context.Context, filter Filter) (bson.Raw, error) {
	var doc bson.Raw
	err := m.col.FindOne(ctx, toBSON(filter)).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return doc, nil
}

func (m *MongoCollection) InsertOne(ctx context.Context, doc any) (InsertResult, error) {
	res, err := m.col.InsertOne(ctx, doc)
	if err != nil {
		return InsertResult{}, err
	}
	id := ""
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		id = oid.Hex()
	}
	return InsertResult{Acknowledged: true, InsertedID: id}, nil
}

func (m *MongoCollection) UpdateByID(ctx context.Context, id string, set Filter) (UpdateResult, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return UpdateResult{}, ErrInvalidID
	}
	res, err := m.col.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": toBSON(set)})
	if err != nil {
		return UpdateResult{}, err
	}
	return UpdateResult{Acknowledged: true, MatchedCount: res.MatchedCount, ModifiedCount: res.ModifiedCount}, nil
}

func (m *MongoCollection) IncByID(ctx context.Context, id string, field string, delta int) (UpdateResult, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return UpdateResult{}, ErrInvalidID
	}
	res, err := m.col.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$inc": bson.M{field: delta}})
	if err != nil {
		return UpdateResult{}, err
	}
	return UpdateResult{Acknowledged: true, MatchedCount: res.MatchedCount, ModifiedCount: res.ModifiedCount}, nil
}

func (m *MongoCollection) DeleteByID(ctx context.Context, id string) (DeleteResult, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return DeleteResult{}, ErrInvalidID
	}
	res, err := m.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return DeleteResult{}, err
	}
	return DeleteResult{Acknowledged: true, DeletedCount: res.DeletedCount}, nil
}

func toBSON(f Filter) bson.M {
	m := make(bson.M, len(f))
	for k, v := range f {
		m[k] = v
	}
	return m
}
