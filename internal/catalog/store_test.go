package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Neeraj-Gupta12/PropBot/internal/datasource"
	"github.com/Neeraj-Gupta12/PropBot/internal/model"
)

func TestStore_RebuildAndSnapshot(t *testing.T) {
	src := &datasource.Static{
		Basics:          testBasics(),
		Characteristics: testCharacteristics(),
		Media:           testMedia(),
	}
	store := NewStore(src)

	// Empty until the first rebuild.
	assert.Equal(t, 0, store.Snapshot().Len())

	rebuilt, err := store.Rebuild(context.Background())
	require.NoError(t, err)
	assert.True(t, rebuilt)
	assert.Equal(t, 3, store.Snapshot().Len())
}

func TestStore_ChecksumSkipsUnchangedData(t *testing.T) {
	src := &datasource.Static{Basics: testBasics()}
	store := NewStore(src)

	rebuilt, err := store.Rebuild(context.Background())
	require.NoError(t, err)
	require.True(t, rebuilt)

	// Same data: no swap.
	rebuilt, err = store.Rebuild(context.Background())
	require.NoError(t, err)
	assert.False(t, rebuilt)

	// Changed data: swap again.
	src.Basics = append(src.Basics, model.Basic{ID: "p4", Title: "New Listing"})
	rebuilt, err = store.Rebuild(context.Background())
	require.NoError(t, err)
	assert.True(t, rebuilt)
	assert.Equal(t, 4, store.Snapshot().Len())
}

func TestStore_OldSnapshotSurvivesRebuild(t *testing.T) {
	src := &datasource.Static{Basics: testBasics()}
	store := NewStore(src)

	_, err := store.Rebuild(context.Background())
	require.NoError(t, err)
	old := store.Snapshot()

	src.Basics = testBasics()[:1]
	_, err = store.Rebuild(context.Background())
	require.NoError(t, err)

	// Readers holding the previous snapshot keep a complete catalog.
	assert.Equal(t, 3, old.Len())
	assert.Equal(t, 1, store.Snapshot().Len())
}
