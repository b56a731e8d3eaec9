package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoStore[T any] struct {
	collection *mongo.Collection
}

func NewMongoStore[T any](collection *mongo.Collection) *MongoStore[T] {
	return &MongoStore[T]{collection: collection}
}

func (s *MongoStore[T]) Create(ctx context.Context, item *T) error {
	_, err := s.collection.InsertOne(ctx, item)
	return translateMongoError(err)
}

func (s *MongoStore[T]) FindByID(ctx context.Context, id string) (*T, error) {
	var item T
	if err := s.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&item); err != nil {
		return nil, translateMongoError(err)
	}
	return &item, nil
}

func (s *MongoStore[T]) FindAll(ctx context.Context, q Query) ([]T, error) {
	opts := options.Find()
	if q.SortField != "" {
		order := 1
		if q.SortDesc {
			order = -1
		}
		opts.SetSort(bson.D{{Key: q.SortField, Value: order}})
	}
	if q.Limit > 0 {
		opts.SetLimit(int64(q.Limit))
	}
	if q.Skip > 0 {
		opts.SetSkip(int64(q.Skip))
	}

	cursor, err := s.collection.Find(ctx, mongoFilter(q.Conditions), opts)
	if err != nil {
		return nil, translateMongoError(err)
	}
	defer cursor.Close(ctx)

	items := []T{}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, translateMongoError(err)
	}
	return items, nil
}

func (s *MongoStore[T]) Update(ctx context.Context, id string, fields map[string]any) (*T, error) {
	if len(fields) > 0 {
		res, err := s.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": fields})
		if err != nil {
			return nil, translateMongoError(err)
		}
		if res.MatchedCount == 0 {
			return nil, ErrNotFound
		}
	}
	return s.FindByID(ctx, id)
}

func (s *MongoStore[T]) Delete(ctx context.Context, id string) error {
	res, err := s.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return translateMongoError(err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// mongoFilter folds conditions on the same field into one sub-document,
// e.g. {date: {$gte: a, $lte: b}}.
func mongoFilter(conditions []Condition) bson.M {
	filter := bson.M{}
	for _, c := range conditions {
		if c.Op == Eq {
			filter[c.Field] = c.Value
			continue
		}
		sub, ok := filter[c.Field].(bson.M)
		if !ok {
			sub = bson.M{}
			filter[c.Field] = sub
		}
		switch c.Op {
		case Gte:
			sub["$gte"] = c.Value
		case Lte:
			sub["$lte"] = c.Value
		}
	}
	return filter
}

func translateMongoError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, mongo.ErrNoDocuments):
		return ErrNotFound
	case mongo.IsDuplicateKeyError(err):
		return ErrDuplicate
	}
	return err
}
