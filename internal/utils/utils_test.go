package utils

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type row struct {
	ID       string `db:"id"`
	Name     string `db:"name"`
	Skipped  string `db:"-"`
	Untagged string
	private  string `db:"private"`
}

func TestStructTagValues(t *testing.T) {
	assert.Equal(t, []string{"id", "name"}, StructTagValues(row{}))
	assert.Equal(t, []string{"id", "name"}, StructTagValues(&row{}))
}

func TestStructToMap(t *testing.T) {
	got := StructToMap(&row{ID: "1", Name: "n", Skipped: "s", Untagged: "u", private: "p"})
	assert.Equal(t, map[string]any{"id": "1", "name": "n"}, got)
}

func TestStructTagValuesPanicsOnNonStruct(t *testing.T) {
	assert.Panics(t, func() { StructTagValues(42) })
}

func TestNanoID(t *testing.T) {
	id := NanoID()
	assert.Len(t, id, NanoidSize)
	assert.True(t, IsNanoID(id))
	assert.NotEqual(t, id, NanoID())

	assert.Len(t, NanoIDSize(8), 8)
	assert.False(t, IsNanoID("short"))
	assert.False(t, IsNanoID("../../etc/passwd-------------------"[:32]))
}

func TestIsNanoIDAcceptsOnlyAlphabet(t *testing.T) {
	assert.True(t, IsNanoID(nanoidAlphabet[:NanoidSize]))
	assert.True(t, IsNanoID(nanoidAlphabet[len(nanoidAlphabet)-NanoidSize:]))
	assert.False(t, IsNanoID(strings.Repeat("_", NanoidSize)))
	assert.False(t, IsNanoID(strings.Repeat("é", NanoidSize/2)))
}

func TestTimePointers(t *testing.T) {
	now := time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, now, PtrTime(TimePtr(now)))
	assert.True(t, PtrTime(nil).IsZero())
}
