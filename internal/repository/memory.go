package repository

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryCollection is an in-process Collection used by the test suite. It
// normalizes every document through BSON so equality filtering and decoding
// behave the way the real store behaves.
type MemoryCollection struct {
	mu   sync.Mutex
	docs map[primitive.ObjectID]bson.M
	// FailNext, when set, makes the next write operation return the error
	// and clears itself. Used to exercise partial-failure paths.
	FailNext error
}

// NewMemoryCollection returns an empty in-memory collection.
func NewMemoryCollection() *MemoryCollection {
	return &MemoryCollection{docs: make(map[primitive.ObjectID]bson.M)}
}

func (m *MemoryCollection) takeFailure() error {
	err := m.FailNext
	m.FailNext = nil
	return err
}

func (m *MemoryCollection) Find(_ context.Context, filter Filter) ([]bson.Raw, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []bson.Raw
	for _, doc := range m.docs {
		if matches(doc, filter) {
			raw, err := bson.Marshal(doc)
			if err != nil {
				return nil, err
			}
			out = append(out, raw)
		}
	}
	return out, nil
}

func (m *MemoryCollection) FindOne(_ context.Context, filter Filter) (bson.Raw, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, doc := range m.docs {
		if matches(doc, filter) {
			return bson.Marshal(doc)
		}
	}
	return nil, ErrNotFound
}

func (m *MemoryCollection) InsertOne(_ context.Context, doc any) (InsertResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.takeFailure(); err != nil {
		return InsertResult{}, err
	}
	raw, err := bson.Marshal(doc)
	if err != nil {
		return InsertResult{}, err
	}
	var d bson.M
	if err := bson.Unmarshal(raw, &d); err != nil {
		return InsertResult{}, err
	}
	id, ok := d["_id"].(primitive.ObjectID)
	if !ok || id.IsZero() {
		id = primitive.NewObjectID()
		d["_id"] = id
	}
	m.docs[id] = d
	return InsertResult{Acknowledged: true, InsertedID: id.Hex()}, nil
}

func (m *MemoryCollection) UpdateByID(_ context.Context, id string, set Filter) (UpdateResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.takeFailure(); err != nil {
		return UpdateResult{}, err
	}
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return UpdateResult{}, ErrInvalidID
	}
	doc, ok := m.docs[oid]
	if !ok {
		return UpdateResult{Acknowledged: true}, nil
	}
	modified := int64(0)
	for k, v := range set {
		if doc[k] != v {
			doc[k] = v
			modified = 1
		}
	}
	return UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: modified}, nil
}

func (m *MemoryCollection) IncByID(_ context.Context, id string, field string, delta int) (UpdateResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.takeFailure(); err != nil {
		return UpdateResult{}, err
	}
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return UpdateResult{}, ErrInvalidID
	}
	doc, ok := m.docs[oid]
	if !ok {
		return UpdateResult{Acknowledged: true}, nil
	}
	doc[field] = asInt(doc[field]) + delta
	return UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil
}

func (m *MemoryCollection) DeleteByID(_ context.Context, id string) (DeleteResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.takeFailure(); err != nil {
		return DeleteResult{}, err
	}
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return DeleteResult{}, ErrInvalidID
	}
	if _, ok := m.docs[oid]; !ok {
		return DeleteResult{Acknowledged: true}, nil
	}
	delete(m.docs, oid)
	return DeleteResult{Acknowledged: true, DeletedCount: 1}, nil
}

// matches reports whether a stored document satisfies every field of the
// equality filter.
func matches(doc bson.M, filter Filter) bool {
	for k, want := range filter {
		got, ok := doc[k]
		if !ok {
			return false
		}
		if oid, isOID := want.(primitive.ObjectID); isOID {
			if g, isG := got.(primitive.ObjectID); !isG || g != oid {
				return false
			}
			continue
		}
		if asComparable(got) != asComparable(want) {
			return false
		}
	}
	return true
}

// asComparable collapses the integer widths BSON round-trips produce so a
// filter built with Go ints still matches stored int32/int64 values.
func asComparable(v any) any {
	switch n := v.(type) {
	case int:
		return int64(n)
	case int32:
		return int64(n)
	case int64:
		return n
	default:
		return v
	}
}

func asInt(v any) int {
	switch n := v.(type) {
	case int:
		return n
	case int32:
		return int(n)
	case int64:
		return int(n)
	case float64:
		return int(n)
	default:
		return 0
	}
}
