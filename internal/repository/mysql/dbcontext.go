package mysql

import (
	"context"
	"errors"
	"fmt"
	"sync"

	mysqldriver "github.com/go-sql-driver/mysql"
	"gorm.io/gorm"

	"github.com/Guyuepp/blog-article-api/domain"
)

const mysqlErrDuplicateEntry = 1062

type unitOfWork struct {
	mu      sync.Mutex
	tx      *gorm.DB
	pending []func(tx *gorm.DB) error
	hooks   []func()
}

func (u *unitOfWork) stage(op func(tx *gorm.DB) error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.pending = append(u.pending, op)
}

func (u *unitOfWork) flush(tx *gorm.DB) error {
	u.mu.Lock()
	ops := u.pending
	u.pending = nil
	u.mu.Unlock()

	for _, op := range ops {
		if err := op(tx); err != nil {
			return err
		}
	}
	return nil
}

func (u *unitOfWork) onCommit(fn func()) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.hooks = append(u.hooks, fn)
}

func (u *unitOfWork) committed() {
	u.mu.Lock()
	hooks := u.hooks
	u.hooks = nil
	u.mu.Unlock()

	for _, fn := range hooks {
		fn()
	}
}

type uowKey struct{}

func unitOfWorkFrom(ctx context.Context) *unitOfWork {
	u, _ := ctx.Value(uowKey{}).(*unitOfWork)
	return u
}

// DBContext owns the gorm handle and the unit of work carried by a context.
type DBContext struct {
	db *gorm.DB
}

var _ domain.Transactor = (*DBContext)(nil)

func NewDBContext(db *gorm.DB) *DBContext {
	return &DBContext{db: db}
}

// Conn returns the handle to run statements on: the open transaction of ctx
// if there is one, the pool otherwise.
func (c *DBContext) Conn(ctx context.Context) *gorm.DB {
	if u := unitOfWorkFrom(ctx); u != nil && u.tx != nil {
		return u.tx.WithContext(ctx)
	}
	return c.db.WithContext(ctx)
}

func (c *DBContext) inTransaction(ctx context.Context) bool {
	u := unitOfWorkFrom(ctx)
	return u != nil && u.tx != nil
}

// Begin returns a context carrying an empty unit of work. Changes staged on
// it are written by SaveChanges.
func (c *DBContext) Begin(ctx context.Context) context.Context {
	return context.WithValue(ctx, uowKey{}, &unitOfWork{})
}

// SaveChanges writes every change staged on the unit of work of ctx in one
// transaction.
func (c *DBContext) SaveChanges(ctx context.Context) error {
	u := unitOfWorkFrom(ctx)
	if u == nil {
		return domain.ErrNoUnitOfWork
	}
	if u.tx != nil {
		return u.flush(u.tx)
	}
	return c.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return u.flush(tx)
	})
}

// WithinTransaction runs fn in a transaction. Staged changes are flushed
// before commit and any error rolls everything back. A nested call joins the
// outer transaction.
func (c *DBContext) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if c.inTransaction(ctx) {
		return fn(ctx)
	}
	var u *unitOfWork
	err := c.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		u = &unitOfWork{tx: tx}
		if err := fn(context.WithValue(ctx, uowKey{}, u)); err != nil {
			return err
		}
		return u.flush(tx)
	})
	if err != nil {
		return err
	}
	u.committed()
	return nil
}

// AfterCommit runs fn once the transaction of ctx has committed, and right
// away when ctx carries no open transaction. A rollback drops fn.
func (c *DBContext) AfterCommit(ctx context.Context, fn func()) {
	u := unitOfWorkFrom(ctx)
	if u == nil || u.tx == nil {
		fn()
		return
	}
	u.onCommit(fn)
}

func (c *DBContext) stage(ctx context.Context, op func(tx *gorm.DB) error) error {
	u := unitOfWorkFrom(ctx)
	if u == nil {
		return domain.ErrNoUnitOfWork
	}
	u.stage(op)
	return nil
}

// translateError maps driver errors to domain errors, everything else is
// returned untouched.
func translateError(err error) error {
	var myErr *mysqldriver.MySQLError
	if errors.As(err, &myErr) && myErr.Number == mysqlErrDuplicateEntry {
		return fmt.Errorf("%w: %s", domain.ErrConflict, myErr.Message)
	}
	return err
}
