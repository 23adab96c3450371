package audit

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRecord(objectID string) Record {
	return Record{
		ID:         uuid.New(),
		TenantID:   "tenant-1",
		ActorID:    "user-1",
		Action:     ActionCoverLetterSubmitted,
		ObjectType: ObjectTailoredDocument,
		ObjectID:   objectID,
		Payload:    json.RawMessage(`{"jobId":"job-1","content":"Hello"}`),
		CreatedAt:  time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestNoopSink_NoDelay(t *testing.T) {
	assert.NoError(t, NoopSink{}.Append(context.Background(), sampleRecord("doc")))
}

func TestNoopSink_Delay(t *testing.T) {
	start := time.Now()
	require.NoError(t, NoopSink{Delay: 20 * time.Millisecond}.Append(context.Background(), sampleRecord("doc")))
	assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
}

func TestNoopSink_ContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := NoopSink{Delay: time.Hour}.Append(ctx, sampleRecord("doc"))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSQLiteSink_AppendAndList(t *testing.T) {
	ctx := context.Background()
	sink, err := OpenSQLite(filepath.Join(t.TempDir(), "nested", "audit.db"))
	require.NoError(t, err)
	defer func() { _ = sink.Close() }()

	first := sampleRecord("doc-1")
	second := sampleRecord("doc-1")
	second.CreatedAt = first.CreatedAt.Add(time.Minute)
	require.NoError(t, sink.Append(ctx, first))
	require.NoError(t, sink.Append(ctx, second))
	require.NoError(t, sink.Append(ctx, sampleRecord("doc-2")))

	records, err := sink.ListByObject(ctx, "doc-1")
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, first.ID, records[0].ID)
	assert.Equal(t, second.ID, records[1].ID)
	assert.Equal(t, ActionCoverLetterSubmitted, records[0].Action)
	assert.True(t, first.CreatedAt.Equal(records[0].CreatedAt))
	assert.JSONEq(t, string(first.Payload), string(records[0].Payload))
}

func TestSQLiteSink_DuplicateIDRejected(t *testing.T) {
	ctx := context.Background()
	sink, err := OpenSQLite(filepath.Join(t.TempDir(), "audit.db"))
	require.NoError(t, err)
	defer func() { _ = sink.Close() }()

	rec := sampleRecord("doc")
	require.NoError(t, sink.Append(ctx, rec))
	err = sink.Append(ctx, rec)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to append audit record")
}

func TestSQLiteSink_ReopenKeepsRecords(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "audit.db")

	sink, err := OpenSQLite(path)
	require.NoError(t, err)
	require.NoError(t, sink.Append(ctx, sampleRecord("doc")))
	require.NoError(t, sink.Close())

	reopened, err := OpenSQLite(path)
	require.NoError(t, err)
	defer func() { _ = reopened.Close() }()
	records, err := reopened.ListByObject(ctx, "doc")
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestOpen(t *testing.T) {
	ctx := context.Background()

	sink, closeFn, err := Open(ctx, Options{})
	require.NoError(t, err)
	assert.IsType(t, NoopSink{}, sink)
	assert.NoError(t, closeFn())

	sink, closeFn, err = Open(ctx, Options{Kind: KindSQLite, SQLitePath: filepath.Join(t.TempDir(), "a.db")})
	require.NoError(t, err)
	assert.IsType(t, &SQLiteSink{}, sink)
	assert.NoError(t, closeFn())

	_, _, err = Open(ctx, Options{Kind: KindSQLite})
	assert.Error(t, err)
	_, _, err = Open(ctx, Options{Kind: KindPostgres})
	assert.Error(t, err)
	_, closeFn, err = Open(ctx, Options{Kind: "kafka"})
	assert.Error(t, err)
	assert.NotNil(t, closeFn)
}
