package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTemp(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func found(maze string, cost, expanded int) Run {
	return Run{
		MazeID:   maze,
		Wind:     "west",
		Strategy: "mark-on-push",
		Outcome:  OutcomeFound,
		Cost:     cost,
		PathLen:  cost / 2,
		Expanded: expanded,
		Created:  expanded + 3,
	}
}

func exhausted(maze string, expanded int) Run {
	return Run{
		MazeID:   maze,
		Wind:     "west",
		Strategy: "mark-on-pop",
		Outcome:  OutcomeExhausted,
		Expanded: expanded,
		Created:  expanded,
	}
}

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	require.NoError(t, err)
	defer store.Close()

	_, err = os.Stat(dbPath)
	assert.NoError(t, err, "database file was not created")
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTemp(t)

	for _, r := range []Run{found("reference", 22, 12), found("reference", 20, 15), exhausted("sealed", 19)} {
		id, err := store.SaveRun(r)
		require.NoError(t, err)
		assert.Positive(t, id)
	}

	runs, err := store.RecentRuns("reference", 10)
	require.NoError(t, err)
	require.Len(t, runs, 2)

	// Newest first
	assert.Equal(t, 20, runs[0].Cost)
	assert.Equal(t, 22, runs[1].Cost)
	assert.Equal(t, "reference", runs[0].MazeID)
	assert.Equal(t, "west", runs[0].Wind)
	assert.Equal(t, 15, runs[0].Expanded)
	assert.Equal(t, 18, runs[0].Created)
	assert.True(t, runs[0].Found())
	assert.False(t, runs[0].CreatedAt.IsZero())

	sealed, err := store.RecentRuns("sealed", 10)
	require.NoError(t, err)
	require.Len(t, sealed, 1)
	assert.False(t, sealed[0].Found())
	assert.Equal(t, "mark-on-pop", sealed[0].Strategy)
}

func TestStoreSaveRunRejects(t *testing.T) {
	store := openTemp(t)

	_, err := store.SaveRun(Run{Outcome: OutcomeFound})
	assert.Error(t, err)

	_, err = store.SaveRun(Run{MazeID: "reference", Outcome: "maybe"})
	assert.Error(t, err)
}

func TestStoreRecentRunsLimit(t *testing.T) {
	store := openTemp(t)

	for i := 0; i < 5; i++ {
		_, err := store.SaveRun(found("test", (i+1)*10, i))
		require.NoError(t, err)
	}

	runs, err := store.RecentRuns("test", 3)
	require.NoError(t, err)
	require.Len(t, runs, 3)

	// Should be the last three saved
	assert.Equal(t, []int{50, 40, 30}, []int{runs[0].Cost, runs[1].Cost, runs[2].Cost})
}

func under(r Run, wind string) Run {
	r.Wind = wind
	return r
}

func TestStoreBestRuns(t *testing.T) {
	store := openTemp(t)

	store.SaveRun(found("reference", 22, 12))
	store.SaveRun(found("reference", 20, 30))
	store.SaveRun(found("reference", 20, 25))
	store.SaveRun(under(found("reference", 18, 14), "east"))
	store.SaveRun(exhausted("reference", 5))

	runs, err := store.BestRuns("reference", "west", 10)
	require.NoError(t, err)
	require.Len(t, runs, 3)

	assert.Equal(t, 20, runs[0].Cost)
	assert.Equal(t, 25, runs[0].Expanded)
	assert.Equal(t, 20, runs[1].Cost)
	assert.Equal(t, 22, runs[2].Cost)

	all, err := store.BestRuns("reference", "", 10)
	require.NoError(t, err)
	require.Len(t, all, 4)
	assert.Equal(t, "east", all[0].Wind)
}

func TestStoreBestCostsPerWind(t *testing.T) {
	store := openTemp(t)

	// No runs yet
	best, err := store.BestCosts("reference")
	require.NoError(t, err)
	assert.Empty(t, best)

	// Exhausted runs never count
	store.SaveRun(exhausted("reference", 19))
	best, err = store.BestCosts("reference")
	require.NoError(t, err)
	assert.Empty(t, best)

	store.SaveRun(found("reference", 22, 12))
	store.SaveRun(found("reference", 20, 15))
	store.SaveRun(under(found("reference", 18, 9), "east"))
	store.SaveRun(under(found("reference", 24, 9), "east"))
	store.SaveRun(under(found("corridor", 6, 4), "south"))

	best, err = store.BestCosts("reference")
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"west": 20, "east": 18}, best)
}

func TestStoreClearRuns(t *testing.T) {
	store := openTemp(t)

	store.SaveRun(found("reference", 22, 12))
	store.SaveRun(found("reference", 20, 15))
	store.SaveRun(found("corridor", 6, 4))

	require.NoError(t, store.ClearRuns("reference"))

	ref, _ := store.RecentRuns("reference", 10)
	assert.Empty(t, ref)

	// Other mazes are untouched
	corridor, _ := store.RecentRuns("corridor", 10)
	assert.Len(t, corridor, 1)
}

func TestStoreMazeStats(t *testing.T) {
	store := openTemp(t)

	empty, err := store.GetMazeStats("reference")
	require.NoError(t, err)
	assert.Equal(t, 0, empty.Runs)
	assert.True(t, empty.LastRun.IsZero())

	store.SaveRun(found("reference", 22, 12))
	store.SaveRun(found("reference", 20, 16))
	store.SaveRun(exhausted("reference", 20))

	stats, err := store.GetMazeStats("reference")
	require.NoError(t, err)
	assert.Equal(t, 3, stats.Runs)
	assert.Equal(t, 2, stats.Solved)
	assert.InDelta(t, 16.0, stats.AvgExpanded, 0.001)
	assert.False(t, stats.LastRun.IsZero())
}

func TestStoreAllMazeStats(t *testing.T) {
	store := openTemp(t)

	store.SaveRun(found("reference", 22, 12))
	store.SaveRun(exhausted("sealed", 19))
	store.SaveRun(exhausted("sealed", 19))

	all, err := store.GetAllMazeStats()
	require.NoError(t, err)
	require.Len(t, all, 2)

	assert.Equal(t, 1, all["reference"].Solved)
	assert.Equal(t, 2, all["sealed"].Runs)
	assert.Equal(t, 0, all["sealed"].Solved)
}

func TestStoreNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	require.NoError(t, err)
	defer store.Close()

	_, err = os.Stat(dbPath)
	assert.NoError(t, err, "database file was not created in nested directory")
}
