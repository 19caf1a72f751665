package store

import (
	"context"
	"fmt"
	"time"

	"auction-backend/internal/auctionerrors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// MongoStore implements DocumentStore against a MongoDB database
type MongoStore struct {
	client *mongo.Client
	db     *mongo.Database
}

// NewMongoStore connects to the given MongoDB endpoint and verifies the
// connection with a ping. The caller owns the store and must Close it on
// shutdown.
func NewMongoStore(ctx context.Context, uri, database string) (*MongoStore, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("store: connect to %s: %v: %w", uri, err, auctionerrors.ErrStoreUnavailable)
	}
	s := &MongoStore{client: client, db: client.Database(database)}
	if err := s.Ping(ctx); err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}
	return s, nil
}

// Close releases the underlying client connections
func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// Ping probes the primary
func (s *MongoStore) Ping(ctx context.Context) error {
	if err := s.client.Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("store: ping: %v: %w", err, auctionerrors.ErrStoreUnavailable)
	}
	return nil
}

// Create inserts fields with fresh timestamps and returns the stored document
func (s *MongoStore) Create(ctx context.Context, collection string, fields map[string]any) (map[string]any, error) {
	now := time.Now().UTC()
	doc := make(bson.M, len(fields)+2)
	for k, v := range fields {
		doc[k] = v
	}
	doc["created_at"] = now
	doc["updated_at"] = now

	res, err := s.db.Collection(collection).InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("store: insert into %s: %v: %w", collection, err, auctionerrors.ErrStoreUnavailable)
	}

	var stored bson.M
	if err := s.db.Collection(collection).FindOne(ctx, bson.M{"_id": res.InsertedID}).Decode(&stored); err != nil {
		return nil, fmt.Errorf("store: read back inserted %s document: %v: %w", collection, err, auctionerrors.ErrStoreUnavailable)
	}
	return normalizeDoc(stored), nil
}

// List returns up to limit documents matching the filter
func (s *MongoStore) List(ctx context.Context, collection string, filter map[string]any, limit int64) ([]map[string]any, error) {
	query := make(bson.M, len(filter))
	for k, v := range filter {
		if k == "id" {
			id, _ := v.(string)
			oid, err := primitive.ObjectIDFromHex(id)
			if err != nil {
				// A malformed id cannot match any stored document.
				return []map[string]any{}, nil
			}
			query["_id"] = oid
			continue
		}
		query[k] = v
	}

	cur, err := s.db.Collection(collection).Find(ctx, query, options.Find().SetLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("store: find in %s: %v: %w", collection, err, auctionerrors.ErrStoreUnavailable)
	}
	defer cur.Close(ctx)

	docs := []map[string]any{}
	for cur.Next(ctx) {
		var doc bson.M
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("store: decode %s document: %v: %w", collection, err, auctionerrors.ErrStoreUnavailable)
		}
		docs = append(docs, normalizeDoc(doc))
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("store: iterate %s cursor: %v: %w", collection, err, auctionerrors.ErrStoreUnavailable)
	}
	return docs, nil
}

// Update merges fields into the identified document, re-stamping updated_at.
// Returns (nil, nil) when no document has the given id.
func (s *MongoStore) Update(ctx context.Context, collection string, id string, fields map[string]any) (map[string]any, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("store: update %s/%s: %w", collection, id, auctionerrors.ErrMalformedID)
	}

	set := make(bson.M, len(fields)+1)
	for k, v := range fields {
		set[k] = v
	}
	set["updated_at"] = time.Now().UTC()

	res, err := s.db.Collection(collection).UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": set})
	if err != nil {
		return nil, fmt.Errorf("store: update %s/%s: %v: %w", collection, id, err, auctionerrors.ErrStoreUnavailable)
	}
	if res.MatchedCount == 0 {
		return nil, nil
	}

	var updated bson.M
	if err := s.db.Collection(collection).FindOne(ctx, bson.M{"_id": oid}).Decode(&updated); err != nil {
		return nil, fmt.Errorf("store: read back updated %s/%s: %v: %w", collection, id, err, auctionerrors.ErrStoreUnavailable)
	}
	return normalizeDoc(updated), nil
}

// Delete removes the one document with the given id
func (s *MongoStore) Delete(ctx context.Context, collection string, id string) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, fmt.Errorf("store: delete %s/%s: %w", collection, id, auctionerrors.ErrMalformedID)
	}
	res, err := s.db.Collection(collection).DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return false, fmt.Errorf("store: delete %s/%s: %v: %w", collection, id, err, auctionerrors.ErrStoreUnavailable)
	}
	return res.DeletedCount == 1, nil
}

// normalizeDoc rewrites the native _id into a string "id" field and converts
// BSON container/date types into their plain Go equivalents, so callers see
// the same document shapes regardless of the backing store.
func normalizeDoc(doc bson.M) map[string]any {
	out := make(map[string]any, len(doc))
	for k, v := range doc {
		if k == "_id" {
			if oid, ok := v.(primitive.ObjectID); ok {
				out["id"] = oid.Hex()
			} else {
				out["id"] = fmt.Sprint(v)
			}
			continue
		}
		out[k] = normalizeValue(v)
	}
	return out
}

func normalizeValue(v any) any {
	switch t := v.(type) {
	case primitive.DateTime:
		return t.Time().UTC()
	case bson.M:
		nested := make(map[string]any, len(t))
		for k, item := range t {
			nested[k] = normalizeValue(item)
		}
		return nested
	case map[string]any:
		nested := make(map[string]any, len(t))
		for k, item := range t {
			nested[k] = normalizeValue(item)
		}
		return nested
	case primitive.A:
		list := make([]any, 0, len(t))
		for _, item := range t {
			list = append(list, normalizeValue(item))
		}
		return list
	case []any:
		list := make([]any, 0, len(t))
		for _, item := range t {
			list = append(list, normalizeValue(item))
		}
		return list
	default:
		return v
	}
}
