package store

import (
	"strings"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SanteonNL/transparencydata/body"
)

func TestRecordRows(t *testing.T) {
	now := time.Date(2010, 11, 2, 0, 0, 0, 0, time.UTC)
	records := []body.Record{
		{"id": "x1", "amount": float64(5000)},
		{"amount": float64(10)},
		{"amount": float64(10)},
	}

	rows, err := recordRows("contributions", records, now)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "contributions", rows[0].Resource)
	assert.Equal(t, "x1", rows[0].RecordID)
	assert.JSONEq(t, `{"id": "x1", "amount": 5000}`, string(rows[0].Payload))
	assert.Equal(t, now, rows[0].FetchedAt)

	assert.True(t, strings.HasPrefix(rows[1].RecordID, "sha256:"))
	assert.Equal(t, rows[1].RecordID, rows[2].RecordID, "identical payloads share a key")
}

func TestInsertRecordBinding(t *testing.T) {
	row := recordRow{Resource: "grants", RecordID: "g1", Payload: []byte(`{}`)}

	query, args, err := sqlx.BindNamed(sqlx.DOLLAR, insertRecord, row)
	require.NoError(t, err)
	assert.Contains(t, query, "VALUES ($1, $2, $3, $4)")
	require.Len(t, args, 4)
	assert.Equal(t, "grants", args[0])
	assert.Equal(t, "g1", args[1])
}
