package storage

import (
	"fmt"
	"sync"
	"testing"
	"time"
)

func openStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open()
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreRecordAndTopRuns(t *testing.T) {
	store := openStore(t)

	runs := []Run{
		{SessionID: "a", Player: "ann", Score: 4, Length: 5, Ticks: 40},
		{SessionID: "b", Player: "bob", Score: 9, Length: 10, Ticks: 120, Duration: 24 * time.Second},
		{SessionID: "c", Player: "ann", Score: 1, Length: 2, Ticks: 13},
		{SessionID: "d", Player: "cat", Score: 9, Length: 10, Ticks: 99},
	}
	for _, r := range runs {
		if _, err := store.Record(r); err != nil {
			t.Fatalf("Record() failed: %v", err)
		}
	}

	top, err := store.TopRuns(3)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("Expected 3 runs with limit, got %d", len(top))
	}

	// Ties keep insertion order
	if top[0].SessionID != "b" || top[1].SessionID != "d" || top[2].SessionID != "a" {
		t.Errorf("Runs not in expected order: %+v", top)
	}
	if top[0].Duration != 24*time.Second || top[0].Player != "bob" || top[0].Ticks != 120 {
		t.Errorf("Run fields not round-tripped: %+v", top[0])
	}
	if top[0].EndedAt.IsZero() {
		t.Error("EndedAt should default to now")
	}
}

func TestStoreRecentRuns(t *testing.T) {
	store := openStore(t)

	for i := 0; i < 5; i++ {
		store.Record(Run{SessionID: fmt.Sprintf("s%d", i), Score: i})
	}

	recent, err := store.RecentRuns(2)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(recent) != 2 || recent[0].SessionID != "s4" || recent[1].SessionID != "s3" {
		t.Errorf("RecentRuns(2) = %+v", recent)
	}
}

func TestStoreBest(t *testing.T) {
	store := openStore(t)

	best, err := store.Best()
	if err != nil {
		t.Fatalf("Best() failed: %v", err)
	}
	if best != 0 {
		t.Errorf("Expected best of 0 for empty log, got %d", best)
	}

	store.Record(Run{SessionID: "1", Player: "ann", Score: 3})
	store.Record(Run{SessionID: "2", Player: "bob", Score: 7})
	store.Record(Run{SessionID: "3", Player: "ann", Score: 5})

	if best, _ = store.Best(); best != 7 {
		t.Errorf("Expected best of 7, got %d", best)
	}
	if pb, _ := store.PlayerBest("ann"); pb != 5 {
		t.Errorf("Expected ann's best of 5, got %d", pb)
	}
	if pb, _ := store.PlayerBest("nobody"); pb != 0 {
		t.Errorf("Expected 0 for unknown player, got %d", pb)
	}
}

func TestStoreStats(t *testing.T) {
	store := openStore(t)

	store.Record(Run{SessionID: "1", Score: 2})
	store.Record(Run{SessionID: "2", Score: 4, Cleared: true})

	st, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if st.Runs != 2 || st.Best != 4 || st.AvgScore != 3 || st.Cleared != 1 {
		t.Errorf("Stats() = %+v", st)
	}
}

func TestStoreRejectsDuplicateSession(t *testing.T) {
	store := openStore(t)

	if _, err := store.Record(Run{SessionID: "same"}); err != nil {
		t.Fatalf("Record() failed: %v", err)
	}
	if _, err := store.Record(Run{SessionID: "same"}); err == nil {
		t.Error("Expected duplicate session id to be rejected")
	}
}

func TestStoresAreIndependent(t *testing.T) {
	a := openStore(t)
	b := openStore(t)

	a.Record(Run{SessionID: "x", Score: 10})

	if best, _ := b.Best(); best != 0 {
		t.Errorf("Second store sees runs of the first: best %d", best)
	}
}

func TestStoreConcurrentRecord(t *testing.T) {
	store := openStore(t)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if _, err := store.Record(Run{SessionID: fmt.Sprintf("s%d", i), Score: i}); err != nil {
				t.Errorf("Record() failed: %v", err)
			}
		}(i)
	}
	wg.Wait()

	st, _ := store.Stats()
	if st.Runs != 8 || st.Best != 7 {
		t.Errorf("Stats() after concurrent records = %+v", st)
	}
}
