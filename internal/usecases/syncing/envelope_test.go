package syncing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ledger-integrations-api/internal/domain"
	"github.com/vfg2006/ledger-integrations-api/pkg/utils"
)

func TestUnwrapList(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantLen int
		wantErr bool
	}{
		{name: "bare array", body: `[{"id":"1"},{"id":"2"}]`, wantLen: 2},
		{name: "data key", body: `{"data":[{"id":"1"}]}`, wantLen: 1},
		{name: "invoices key", body: `{"invoices":[{"id":"1"}]}`, wantLen: 1},
		{name: "sales key", body: `{"sales":[]}`, wantLen: 0},
		{name: "results key", body: `{"pagination":{"page":1},"results":[{"id":"1"},{"id":"2"},{"id":"3"}]}`, wantLen: 3},
		{name: "data wins over results", body: `{"data":[{"id":"1"}],"results":[{"id":"1"},{"id":"2"}]}`, wantLen: 1},
		{name: "data not an array falls through", body: `{"data":{"id":"1"},"results":[{"id":"1"}]}`, wantLen: 1},
		{name: "unknown key", body: `{"rows":[{"id":"1"}]}`, wantErr: true},
		{name: "scalar", body: `42`, wantErr: true},
		{name: "invalid json", body: `{`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records, err := UnwrapList([]byte(tt.body))
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrBadPayloadShape)
				return
			}
			require.NoError(t, err)
			assert.Len(t, records, tt.wantLen)
		})
	}
}

func TestUnwrapList_KeepsLargeNumericIDs(t *testing.T) {
	records, err := UnwrapList([]byte(`{"data":[{"id":9007199254740993,"total":100.25},{"id":9007199254740992}]}`))
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "9007199254740993", utils.FirstString(records[0], "id"))
	assert.Equal(t, "9007199254740992", utils.FirstString(records[1], "id"))
	assert.Equal(t, 100.25, utils.FirstNumber(records[0], "total"))
}

func TestMemoryLocker(t *testing.T) {
	ctx := context.Background()
	locker := NewMemoryLocker()
	key := LockKey("biz-1", domain.SourceSiigo)
	assert.Equal(t, "sync:biz-1:siigo", key)

	release, err := locker.Acquire(ctx, key)
	require.NoError(t, err)

	_, err = locker.Acquire(ctx, key)
	assert.ErrorIs(t, err, domain.ErrSyncInProgress)

	other, err := locker.Acquire(ctx, LockKey("biz-2", domain.SourceSiigo))
	require.NoError(t, err)

	require.NoError(t, release(ctx))
	require.NoError(t, release(ctx))
	require.NoError(t, other(ctx))

	_, err = locker.Acquire(ctx, key)
	assert.NoError(t, err)
}
