// Package store is the persistence layer. Services depend on the generic
// Store interface; gorm (MySQL, SQLite) and MongoDB implementations are
// chosen at startup from DB_DRIVER.
package store

import (
	"context"
	"errors"
)

var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate record")
)

type Op int

const (
	Eq Op = iota
	Gte
	Lte
)

// Condition filters on a single field. Field names are the column names,
// which are also the bson field names of the mongo documents.
type Condition struct {
	Field string
	Op    Op
	Value any
}

func Where(field string, op Op, value any) Condition {
	return Condition{Field: field, Op: op, Value: value}
}

type Query struct {
	Conditions []Condition
	SortField  string
	SortDesc   bool
	Limit      int
	Skip       int
}

// Store is the CRUD capability set every model repository provides.
type Store[T any] interface {
	Create(ctx context.Context, item *T) error
	FindByID(ctx context.Context, id string) (*T, error)
	FindAll(ctx context.Context, q Query) ([]T, error)
	Update(ctx context.Context, id string, fields map[string]any) (*T, error)
	Delete(ctx context.Context, id string) error
}

// First returns the first match of q or ErrNotFound.
func First[T any](ctx context.Context, s Store[T], q Query) (*T, error) {
	q.Limit = 1
	items, err := s.FindAll(ctx, q)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, ErrNotFound
	}
	return &items[0], nil
}
