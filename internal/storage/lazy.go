package storage

import (
	"context"
	"database/sql"
	"sync"
)

// LazyDB is an explicitly owned, lazily constructed database handle.
// The first caller of Get performs the physical open and migration;
// callers racing with it block on the same in-flight initialization
// instead of opening a second handle. The outcome, handle or error,
// is memoized for the lifetime of the LazyDB.
type LazyDB struct {
	dsn  string
	once sync.Once
	db   *sql.DB
	err  error
}

// NewLazyDB returns a LazyDB for dsn. Nothing is opened until the
// first Get.
func NewLazyDB(dsn string) *LazyDB {
	return &LazyDB{dsn: dsn}
}

// Get returns the shared handle, opening and migrating the database
// exactly once.
func (l *LazyDB) Get(ctx context.Context) (*sql.DB, error) {
	l.once.Do(func() {
		l.db, l.err = Open(ctx, l.dsn)
	})
	return l.db, l.err
}

// Close closes the handle if it was ever opened.
func (l *LazyDB) Close() error {
	if l.db == nil {
		return nil
	}
	return l.db.Close()
}
