package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssemble_DedupKeepsLatest(t *testing.T) {
	t1, t2 := at(0), at(time.Minute)

	records := Assemble([]Detection{
		{Message: msg("code 5551", "alice", t1), Code: "5551"},
		{Message: msg("again 5551", "bob", t2), Code: "5551"},
	})

	require.Len(t, records, 1)
	assert.Equal(t, "5551", records[0].Code)
	assert.True(t, t2.Equal(records[0].Timestamp))
	assert.Equal(t, "bob", records[0].Sender)
	assert.Equal(t, "again 5551", records[0].FullMessage)
}

func TestAssemble_LatestWinsRegardlessOfInputOrder(t *testing.T) {
	t1, t2 := at(0), at(time.Minute)

	records := Assemble([]Detection{
		{Message: msg("newer", "bob", t2), Code: "5551"},
		{Message: msg("older", "alice", t1), Code: "5551"},
	})

	require.Len(t, records, 1)
	assert.Equal(t, "newer", records[0].FullMessage)
}

func TestAssemble_SortsMostRecentFirst(t *testing.T) {
	t1, t2, t3 := at(0), at(time.Minute), at(2*time.Minute)

	records := Assemble([]Detection{
		{Message: msg("c", "x", t3), Code: "3333"},
		{Message: msg("a", "x", t1), Code: "1111"},
		{Message: msg("b", "x", t2), Code: "2222"},
	})

	require.Len(t, records, 3)
	assert.True(t, t3.Equal(records[0].Timestamp))
	assert.True(t, t2.Equal(records[1].Timestamp))
	assert.True(t, t1.Equal(records[2].Timestamp))
}

func TestAssemble_AssignsUniqueIDs(t *testing.T) {
	records := Assemble([]Detection{
		{Message: msg("a", "x", at(0)), Code: "1111"},
		{Message: msg("b", "x", at(time.Second)), Code: "2222"},
	})

	require.Len(t, records, 2)
	assert.NotEmpty(t, records[0].ID)
	assert.NotEqual(t, records[0].ID, records[1].ID)
}

func TestAssemble_Empty(t *testing.T) {
	records := Assemble(nil)
	assert.NotNil(t, records)
	assert.Empty(t, records)
}
