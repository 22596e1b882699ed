package docstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// documentRow is the storage model for the single shared documents table
type documentRow struct {
	ID        string `gorm:"primaryKey;size:64"`
	Type      string `gorm:"index;size:64;not null"`
	Payload   []byte `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (documentRow) TableName() string {
	return "documents"
}

// GormStore implements Store on a relational backend through GORM. Production
// runs on postgres; tests run on sqlite. Each call is bounded by the
// configured timeout; a zero timeout disables the bound.
type GormStore struct {
	db      *gorm.DB
	timeout time.Duration
}

// OpenPostgres opens a postgres-backed store
func OpenPostgres(dsn string, timeout time.Duration) (*GormStore, error) {
	db, err := gorm.Open(postgres.Open(dsn), gormConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to document store: %w", err)
	}
	return newGormStore(db, timeout)
}

// OpenSQLite opens a sqlite-backed store (used by tests and local runs)
func OpenSQLite(dsn string, timeout time.Duration) (*GormStore, error) {
	db, err := gorm.Open(sqlite.Open(dsn), gormConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to open document store: %w", err)
	}
	return newGormStore(db, timeout)
}

func gormConfig() *gorm.Config {
	return &gorm.Config{
		Logger:                 logger.Default.LogMode(logger.Silent),
		SkipDefaultTransaction: true,
		TranslateError:         true,
	}
}

func newGormStore(db *gorm.DB, timeout time.Duration) (*GormStore, error) {
	if err := db.AutoMigrate(&documentRow{}); err != nil {
		return nil, fmt.Errorf("failed to migrate documents table: %w", err)
	}
	return &GormStore{db: db, timeout: timeout}, nil
}

// Close closes the underlying connection pool
func (s *GormStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (s *GormStore) bound(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, s.timeout)
}

// GetByKey returns the document with the given id
func (s *GormStore) GetByKey(ctx context.Context, id string) (Document, error) {
	ctx, cancel := s.bound(ctx)
	defer cancel()

	var row documentRow
	if err := s.db.WithContext(ctx).First(&row, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Document{}, ErrNotFound
		}
		return Document{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return Document{ID: row.ID, Type: row.Type, Payload: row.Payload}, nil
}

// Insert stores a new document
func (s *GormStore) Insert(ctx context.Context, doc Document) error {
	ctx, cancel := s.bound(ctx)
	defer cancel()

	row := documentRow{ID: doc.ID, Type: doc.Type, Payload: doc.Payload}
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrConflict
		}
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}

// Replace overwrites the payload of an existing document. The type tag is
// immutable and deliberately not part of the update.
func (s *GormStore) Replace(ctx context.Context, doc Document) error {
	ctx, cancel := s.bound(ctx)
	defer cancel()

	res := s.db.WithContext(ctx).
		Model(&documentRow{}).
		Where("id = ?", doc.ID).
		Updates(map[string]interface{}{
			"payload":    doc.Payload,
			"updated_at": time.Now(),
		})
	if res.Error != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Remove deletes the document with the given id. Removing an absent id is not
// an error.
func (s *GormStore) Remove(ctx context.Context, id string) error {
	ctx, cancel := s.bound(ctx)
	defer cancel()

	if err := s.db.WithContext(ctx).Delete(&documentRow{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}

// Query scans the keyspace for documents carrying the type tag and applies the
// predicate in memory. The store has no secondary indexes beyond the tag.
func (s *GormStore) Query(ctx context.Context, typeTag string, pred Predicate) ([]Document, error) {
	ctx, cancel := s.bound(ctx)
	defer cancel()

	var rows []documentRow
	if err := s.db.WithContext(ctx).Where("type = ?", typeTag).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	docs := make([]Document, 0, len(rows))
	for _, row := range rows {
		doc := Document{ID: row.ID, Type: row.Type, Payload: row.Payload}
		if pred == nil || pred(doc) {
			docs = append(docs, doc)
		}
	}
	return docs, nil
}
