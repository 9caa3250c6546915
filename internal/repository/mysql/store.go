package mysql

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Guyuepp/blog-article-api/domain"
)

// Entity is a gorm model keyed by an integer id
type Entity interface {
	TableName() string
	EntityName() string
	PrimaryKey() int64
}

// Query describes a lazy query over one entity table
type Query struct {
	Scopes   []func(*gorm.DB) *gorm.DB
	Order    string
	Preload  []string
	Offset   int
	Limit    int
	ReadOnly bool
}

// Store is the generic data access object of one entity.
//
// Reads with readOnly=false made inside a transaction lock the rows until
// commit. Writes with save=false are staged on the unit of work of ctx.
type Store[M Entity] struct {
	dbc *DBContext
	now func() time.Time
}

func NewStore[M Entity](dbc *DBContext) *Store[M] {
	return &Store[M]{dbc: dbc, now: time.Now}
}

func (s *Store[M]) entityName() string {
	var m M
	return m.EntityName()
}

func (s *Store[M]) query(ctx context.Context, readOnly bool) *gorm.DB {
	db := s.dbc.Conn(ctx).Model(new(M))
	if !readOnly && s.dbc.inTransaction(ctx) {
		db = db.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return db
}

func (s *Store[M]) GetByID(ctx context.Context, id int64, readOnly, mustExist bool) (*M, error) {
	var rows []M
	if err := s.query(ctx, readOnly).Where("id = ?", id).Limit(1).Find(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		if mustExist {
			return nil, domain.NewEntityNotFound(s.entityName(), id)
		}
		return nil, nil
	}
	return &rows[0], nil
}

func (s *Store[M]) GetByIDs(ctx context.Context, ids []int64, readOnly bool) ([]M, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var rows []M
	err := s.query(ctx, readOnly).Where("id IN ?", ids).Find(&rows).Error
	return rows, err
}

// GetPaged returns one 1-based page ordered by orderBy, id when empty.
func (s *Store[M]) GetPaged(ctx context.Context, pageNumber, pageSize int, orderBy string, readOnly bool) ([]M, error) {
	paging := domain.Paging{PageNumber: pageNumber, PageSize: pageSize}
	if !paging.Valid() {
		return nil, domain.InvalidArgument("paging")
	}
	if orderBy == "" {
		orderBy = "id"
	}
	var rows []M
	err := s.query(ctx, readOnly).
		Order(orderBy).
		Offset(paging.Offset()).
		Limit(paging.PageSize).
		Find(&rows).Error
	return rows, err
}

// IsValidID reports whether exactly one row has id.
func (s *Store[M]) IsValidID(ctx context.Context, id int64, mustExist bool) (bool, error) {
	var count int64
	if err := s.query(ctx, true).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	if count != 1 && mustExist {
		return false, domain.NewEntityNotFound(s.entityName(), id)
	}
	return count == 1, nil
}

func (s *Store[M]) Scope(ctx context.Context, q Query) *gorm.DB {
	db := s.query(ctx, q.ReadOnly).Scopes(q.Scopes...)
	for _, p := range q.Preload {
		db = db.Preload(p)
	}
	if q.Order != "" {
		db = db.Order(q.Order)
	}
	if q.Offset > 0 {
		db = db.Offset(q.Offset)
	}
	if q.Limit > 0 {
		db = db.Limit(q.Limit)
	}
	return db
}

func (s *Store[M]) Find(ctx context.Context, q Query) ([]M, error) {
	var rows []M
	err := s.Scope(ctx, q).Find(&rows).Error
	return rows, err
}

// Count ignores the ordering, paging and preloads of q.
func (s *Store[M]) Count(ctx context.Context, q Query) (int64, error) {
	var count int64
	err := s.Scope(ctx, Query{Scopes: q.Scopes, ReadOnly: true}).Count(&count).Error
	return count, err
}

func (s *Store[M]) Create(ctx context.Context, save bool, entities ...*M) error {
	now := s.now()
	for _, e := range entities {
		if a, ok := any(e).(domain.Auditable); ok {
			a.SetCreated(now)
		}
	}
	return s.apply(ctx, save, func(tx *gorm.DB) error {
		for _, e := range entities {
			if err := tx.Create(e).Error; err != nil {
				return translateError(err)
			}
		}
		return nil
	})
}

// Update writes every column of the entities. A missing row is an
// EntityNotFoundError.
func (s *Store[M]) Update(ctx context.Context, save bool, entities ...*M) error {
	now := s.now()
	for _, e := range entities {
		if a, ok := any(e).(domain.Auditable); ok {
			a.SetModified(now)
		}
	}
	return s.apply(ctx, save, func(tx *gorm.DB) error {
		for _, e := range entities {
			res := tx.Model(e).Select("*").Updates(e)
			if res.Error != nil {
				return translateError(res.Error)
			}
			if res.RowsAffected == 0 {
				return domain.NewEntityNotFound(s.entityName(), (*e).PrimaryKey())
			}
		}
		return nil
	})
}

func (s *Store[M]) Delete(ctx context.Context, save bool, entities ...*M) error {
	return s.apply(ctx, save, func(tx *gorm.DB) error {
		for _, e := range entities {
			if err := s.deleteByID(tx, (*e).PrimaryKey()); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *Store[M]) DeleteByID(ctx context.Context, save bool, id int64) error {
	return s.apply(ctx, save, func(tx *gorm.DB) error {
		return s.deleteByID(tx, id)
	})
}

// DeleteWhere removes every row matching the condition. No match is not an error.
func (s *Store[M]) DeleteWhere(ctx context.Context, save bool, query string, args ...any) error {
	return s.apply(ctx, save, func(tx *gorm.DB) error {
		return translateError(tx.Where(query, args...).Delete(new(M)).Error)
	})
}

func (s *Store[M]) deleteByID(tx *gorm.DB, id int64) error {
	res := tx.Where("id = ?", id).Delete(new(M))
	if res.Error != nil {
		return translateError(res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.NewEntityNotFound(s.entityName(), id)
	}
	return nil
}

func (s *Store[M]) apply(ctx context.Context, save bool, op func(tx *gorm.DB) error) error {
	if !save {
		return s.dbc.stage(ctx, op)
	}
	if s.dbc.inTransaction(ctx) {
		return op(s.dbc.Conn(ctx))
	}
	return s.dbc.Conn(ctx).Transaction(op)
}
