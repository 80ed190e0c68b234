package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jnmnltrnz/workforce-management-api/internal/repository"
)

func TestAuditService_RecordAndList(t *testing.T) {
	db := setupTestDB(t)
	service := NewAuditService(repository.NewAuditRepository(db))

	base := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	current := base
	service.now = func() time.Time {
		current = current.Add(time.Minute)
		return current
	}

	_, err := service.Record("admin", "first action")
	require.NoError(t, err)
	_, err = service.Record("dana", "second action")
	require.NoError(t, err)

	entries, err := service.ListAll()
	require.NoError(t, err)
	require.Len(t, entries, 2)
	// newest first
	require.Equal(t, "second action", entries[0].ActionMessage)

	mine, err := service.ListByActor("dana")
	require.NoError(t, err)
	require.Len(t, mine, 1)
	require.Equal(t, "dana", mine[0].PerformedBy)
}

func TestAuditService_Validation(t *testing.T) {
	db := setupTestDB(t)
	service := NewAuditService(repository.NewAuditRepository(db))

	_, err := service.Record("", "message")
	require.ErrorIs(t, err, ErrAuditActorRequired)
	_, err = service.Record("admin", "")
	require.ErrorIs(t, err, ErrAuditMessageRequired)
}

func TestAuditService_ActorMatchIsExact(t *testing.T) {
	db := setupTestDB(t)
	service := NewAuditService(repository.NewAuditRepository(db))

	_, err := service.Record("Admin", "cased")
	require.NoError(t, err)

	entries, err := service.ListByActor("admin")
	require.NoError(t, err)
	require.Empty(t, entries)
}
