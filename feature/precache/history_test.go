package precache

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"precache-manager/feature/precache/manifest"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return gormDB, mock
}

func setupHistory(t *testing.T) *History {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	history := NewHistory(db)
	require.NoError(t, history.Migrate())
	return history
}

func sampleReport(id string, startedAt time.Time) *Report {
	return &Report{
		ID:        id,
		StartedAt: startedAt,
		Duration:  1500 * time.Millisecond,
		Manifest:  "/hlds/cstrike/addons/precache/precache.cfg",
		Entries: []manifest.Entry{
			{Path: "models/vip.mdl", Kind: manifest.KindModel},
			{Path: "sound/wind.wav", Kind: manifest.KindSound},
			{Path: "sprites/laser.spr", Kind: manifest.KindGeneric},
		},
		Stats: manifest.Stats{
			Accepted:   3,
			Skipped:    2,
			Rejections: []manifest.Rejection{{Line: 4, Path: "maps/missing.bsp", Reason: "asset not found"}},
		},
		Dispatched: true,
	}
}

func TestHistory_SaveAndGet(t *testing.T) {
	history := setupHistory(t)
	ctx := context.Background()

	require.NoError(t, history.Save(ctx, sampleReport("a1", time.Now())))

	activation, err := history.Get(ctx, "a1")
	require.NoError(t, err)
	assert.Equal(t, 3, activation.Accepted)
	assert.Equal(t, 1, activation.Rejected)
	assert.Equal(t, 2, activation.Skipped)
	assert.Equal(t, int64(1500), activation.DurationMs)

	require.Len(t, activation.Entries, 3)
	assert.Equal(t, 1, activation.Entries[0].Position)
	assert.Equal(t, "models/vip.mdl", activation.Entries[0].Path)
	assert.Equal(t, "model", activation.Entries[0].Kind)
	assert.Equal(t, "generic", activation.Entries[2].Kind)
}

func TestHistory_GetNotFound(t *testing.T) {
	history := setupHistory(t)

	_, err := history.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrActivationNotFound)
}

func TestHistory_List(t *testing.T) {
	history := setupHistory(t)
	ctx := context.Background()
	base := time.Now()

	for i, id := range []string{"old", "mid", "new"} {
		require.NoError(t, history.Save(ctx, sampleReport(id, base.Add(time.Duration(i)*time.Minute))))
	}

	activations, err := history.List(ctx, 2)
	require.NoError(t, err)
	require.Len(t, activations, 2)
	assert.Equal(t, "new", activations[0].ID)
	assert.Equal(t, "mid", activations[1].ID)
	assert.Empty(t, activations[0].Entries)

	activations, err = history.List(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, activations, 3)
}

func TestHistory_SaveEmptyReport(t *testing.T) {
	history := setupHistory(t)
	ctx := context.Background()

	report := &Report{ID: "empty", StartedAt: time.Now(), Entries: []manifest.Entry{}}
	require.NoError(t, history.Save(ctx, report))

	activation, err := history.Get(ctx, "empty")
	require.NoError(t, err)
	assert.Empty(t, activation.Entries)
}

func TestHistory_SaveRollsBack(t *testing.T) {
	db, mock := setupMockDB(t)
	history := NewHistory(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `precache_activations`")).
		WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	err := history.Save(context.Background(), sampleReport("a1", time.Now()))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to save activation")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHistory_ListQueryError(t *testing.T) {
	db, mock := setupMockDB(t)
	history := NewHistory(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `precache_activations`")).
		WillReturnError(errors.New("connection reset"))

	_, err := history.List(context.Background(), 5)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to list activations")
}
