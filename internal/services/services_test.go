package services

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/yukikurage/portfolio-dashboard-api/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(&models.Project{}, &models.Unit{}, &models.User{}))
	return db
}

// memoryStore is an in-memory BlobStore that can be told to fail specific keys.
type memoryStore struct {
	mu         sync.Mutex
	objects    map[string][]byte
	failUpload func(key string) bool
	failRemove bool
	removed    []string
}

func newMemoryStore() *memoryStore {
	return &memoryStore{objects: make(map[string][]byte)}
}

func (m *memoryStore) Upload(ctx context.Context, key string, r io.Reader) (string, error) {
	if m.failUpload != nil && m.failUpload(key) {
		return "", errors.New("upload rejected")
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.objects[key] = data
	return m.PublicURL(key), nil
}

func (m *memoryStore) PublicURL(key string) string {
	return "http://blobs.test/project-images/" + key
}

func (m *memoryStore) Remove(ctx context.Context, keys []string) error {
	if m.failRemove {
		return errors.New("storage unavailable")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, key := range keys {
		delete(m.objects, key)
		m.removed = append(m.removed, key)
	}
	return nil
}

func (m *memoryStore) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.objects)
}

func intPtr(v int) *int { return &v }

func strPtr(v string) *string { return &v }
