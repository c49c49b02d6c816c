package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSource(t *testing.T) {
	tests := []struct {
		raw     string
		want    Source
		wantErr bool
	}{
		{raw: "alegra", want: SourceAlegra},
		{raw: " Alegra ", want: SourceAlegra},
		{raw: "SIIGO", want: SourceSiigo},
		{raw: "\tsiigo\n", want: SourceSiigo},
		{raw: "quickbooks", wantErr: true},
		{raw: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			source, err := ParseSource(tt.raw)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownProvider)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, source)
		})
	}
}

func TestBusiness_UpsertConnection(t *testing.T) {
	lastSync := time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)
	business := &Business{
		ID: "biz-1",
		SourceConnections: []*Connection{
			{Source: SourceSiigo, Credentials: Credentials{AccessToken: "t"}, IsActive: true},
			{Source: SourceAlegra, Credentials: Credentials{Email: "a@b.co", APIKey: "k1"}, IsActive: false, LastSync: &lastSync},
		},
	}

	conn := business.UpsertConnection(SourceAlegra, Credentials{Email: "a@b.co", APIKey: "k2"})

	require.Len(t, business.SourceConnections, 2)
	assert.Same(t, business.SourceConnections[1], conn)
	assert.Equal(t, "k2", conn.Credentials.APIKey)
	assert.True(t, conn.IsActive)
	assert.Nil(t, conn.LastSync)
	assert.Equal(t, "t", business.SourceConnections[0].Credentials.AccessToken)
}

func TestBusiness_UpsertConnection_Appends(t *testing.T) {
	business := &Business{ID: "biz-1"}

	business.UpsertConnection(SourceSiigo, Credentials{AccessToken: "t"})

	require.Len(t, business.SourceConnections, 1)
	assert.NotNil(t, business.ActiveConnection(SourceSiigo))
}

func TestBusiness_ConnectionSkipsNilEntries(t *testing.T) {
	business := &Business{
		ID:                "biz-1",
		SourceConnections: []*Connection{nil, {Source: SourceAlegra, IsActive: true}},
	}

	assert.Nil(t, business.Connection(SourceSiigo))
	assert.NotNil(t, business.ActiveConnection(SourceAlegra))
	assert.Len(t, business.Redacted().SourceConnections, 1)

	business.UpsertConnection(SourceSiigo, Credentials{AccessToken: "t"})
	assert.NotNil(t, business.Connection(SourceSiigo))
}

func TestBusiness_IsOwnedBy(t *testing.T) {
	business := &Business{ID: "biz-1", OwnerID: "user-1"}

	assert.True(t, business.IsOwnedBy("user-1"))
	assert.False(t, business.IsOwnedBy("user-2"))
	assert.False(t, business.IsOwnedBy(""))

	var missing *Business
	assert.False(t, missing.IsOwnedBy("user-1"))
}
