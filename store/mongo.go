package store

import (
	"context"

	db "github.com/KanapuramVaishnavi/Core/config/db"
	"go.mongodb.org/mongo-driver/bson"
)

// MongoStore keeps each collection key as a Mongo collection on the
// Core-managed database. Records are stored with their "id" field as the
// lookup key; Mongo's own _id stays internal.
type MongoStore struct{}

func NewMongoStore() *MongoStore {
	return &MongoStore{}
}

func (s *MongoStore) GetAll(ctx context.Context, key string, out interface{}) error {
	cursor, err := db.DB.Collection(key).Find(ctx, bson.M{})
	if err != nil {
		return err
	}
	return cursor.All(ctx, out)
}

func (s *MongoStore) Append(ctx context.Context, key string, record interface{}) error {
	_, err := db.DB.Collection(key).InsertOne(ctx, record)
	return err
}

func (s *MongoStore) ReplaceAll(ctx context.Context, key string, records []interface{}) error {
	if err := s.Clear(ctx, key); err != nil {
		return err
	}
	if len(records) == 0 {
		return nil
	}
	_, err := db.DB.Collection(key).InsertMany(ctx, records)
	return err
}

func (s *MongoStore) UpdateByID(ctx context.Context, key, id string, record interface{}) error {
	result, err := db.DB.Collection(key).ReplaceOne(ctx, bson.M{"id": id}, record)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MongoStore) UpdateVersioned(ctx context.Context, key, id string, expected int64, record interface{}) error {
	filter := bson.M{"id": id, "version": expected}
	result, err := db.DB.Collection(key).ReplaceOne(ctx, filter, record)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		// Distinguish a missing record from a lost race.
		count, err := db.DB.Collection(key).CountDocuments(ctx, bson.M{"id": id})
		if err != nil {
			return err
		}
		if count == 0 {
			return ErrNotFound
		}
		return ErrVersionConflict
	}
	return nil
}

func (s *MongoStore) DeleteVersioned(ctx context.Context, key, id string, expected int64) error {
	result, err := db.DB.Collection(key).DeleteOne(ctx, bson.M{"id": id, "version": expected})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		count, err := db.DB.Collection(key).CountDocuments(ctx, bson.M{"id": id})
		if err != nil {
			return err
		}
		if count == 0 {
			return ErrNotFound
		}
		return ErrVersionConflict
	}
	return nil
}

func (s *MongoStore) DeleteByID(ctx context.Context, key, id string) error {
	result, err := db.DB.Collection(key).DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MongoStore) Clear(ctx context.Context, key string) error {
	_, err := db.DB.Collection(key).DeleteMany(ctx, bson.M{})
	return err
}
