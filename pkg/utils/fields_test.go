package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFirstString(t *testing.T) {
	rec := Record{"id": nil, "document_id": float64(42), "number": "FV-1"}

	assert.Equal(t, "42", FirstString(rec, "id", "document_id", "number"))
	assert.Equal(t, "FV-1", FirstString(rec, "number"))
	assert.Equal(t, "", FirstString(rec, "missing"))
}

func TestFirstNumber(t *testing.T) {
	rec := Record{"subtotal": "90.5", "tax": float64(10), "bad": "abc"}

	assert.Equal(t, 90.5, FirstNumber(rec, "subtotal"))
	assert.Equal(t, 10.0, FirstNumber(rec, "taxes", "tax"))
	assert.Equal(t, 0.0, FirstNumber(rec, "bad"))
	assert.Equal(t, 0.0, FirstNumber(rec, "missing"))
}

func TestFirstTime(t *testing.T) {
	rec := Record{"date": "2024-03-05", "dueDate": "not-a-date"}

	got, ok := FirstTime(rec, "date")
	assert.True(t, ok)
	assert.Equal(t, time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), got)

	_, ok = FirstTime(rec, "dueDate")
	assert.False(t, ok)
}

func TestRecords(t *testing.T) {
	rec := Record{"items": []any{map[string]any{"id": "1"}, "ignored"}}

	items := Records(rec, "items")
	assert.Len(t, items, 1)
	assert.Equal(t, "1", FirstString(items[0], "id"))
	assert.Nil(t, Records(rec, "missing"))
}

func TestFirstString_JoinsLists(t *testing.T) {
	rec := Record{"name": []any{"Juan", " Perez "}}

	assert.Equal(t, "Juan Perez", FirstString(rec, "name"))
}

func TestFirstCode(t *testing.T) {
	assert.Equal(t, "USD", FirstCode(Record{"currency": map[string]any{"code": "USD"}}, "currency"))
	assert.Equal(t, "COP", FirstCode(Record{"currency": "COP"}, "currency"))
	assert.Equal(t, "", FirstCode(Record{"currency": map[string]any{}}, "currency"))
}
