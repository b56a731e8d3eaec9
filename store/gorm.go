package store

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GormStore[T any] struct {
	db *gorm.DB
}

func NewGormStore[T any](db *gorm.DB) *GormStore[T] {
	return &GormStore[T]{db: db}
}

func (s *GormStore[T]) Create(ctx context.Context, item *T) error {
	return translateGormError(s.db.WithContext(ctx).Create(item).Error)
}

func (s *GormStore[T]) FindByID(ctx context.Context, id string) (*T, error) {
	var item T
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&item).Error; err != nil {
		return nil, translateGormError(err)
	}
	return &item, nil
}

func (s *GormStore[T]) FindAll(ctx context.Context, q Query) ([]T, error) {
	tx := s.db.WithContext(ctx).Model(new(T))
	for _, c := range q.Conditions {
		tx = tx.Where(gormExpression(c))
	}
	if q.SortField != "" {
		tx = tx.Order(clause.OrderByColumn{Column: clause.Column{Name: q.SortField}, Desc: q.SortDesc})
	}
	if q.Limit > 0 {
		tx = tx.Limit(q.Limit)
	}
	if q.Skip > 0 {
		tx = tx.Offset(q.Skip)
	}

	items := []T{}
	if err := tx.Find(&items).Error; err != nil {
		return nil, translateGormError(err)
	}
	return items, nil
}

func (s *GormStore[T]) Update(ctx context.Context, id string, fields map[string]any) (*T, error) {
	if _, err := s.FindByID(ctx, id); err != nil {
		return nil, err
	}
	if len(fields) > 0 {
		err := s.db.WithContext(ctx).Model(new(T)).Where("id = ?", id).Updates(fields).Error
		if err != nil {
			return nil, translateGormError(err)
		}
	}
	return s.FindByID(ctx, id)
}

func (s *GormStore[T]) Delete(ctx context.Context, id string) error {
	res := s.db.WithContext(ctx).Where("id = ?", id).Delete(new(T))
	if res.Error != nil {
		return translateGormError(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func gormExpression(c Condition) clause.Expression {
	col := clause.Column{Name: c.Field}
	switch c.Op {
	case Gte:
		return clause.Gte{Column: col, Value: c.Value}
	case Lte:
		return clause.Lte{Column: col, Value: c.Value}
	default:
		return clause.Eq{Column: col, Value: c.Value}
	}
}

func translateGormError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrDuplicate
	}
	return err
}
