package storage

import (
	"context"
	"strings"
	"testing"

	"panmixia/internal/model"
)

func testRun(id, createdAt string) model.RunRecord {
	return model.RunRecord{
		VersionedRecord:  model.VersionedRecord{SchemaVersion: CurrentSchemaVersion, CodecVersion: CurrentCodecVersion},
		ID:               id,
		Problem:          "onemax",
		GenotypeLength:   32,
		PopulationSize:   20,
		Generations:      100,
		Seed:             7,
		GroupSize:        2,
		CrossoverPoints:  2,
		CreatedAtUTC:     createdAt,
		FinalBestFitness: 1.0,
		Evaluations:      2020,
		ReachedOptimum:   true,
	}
}

func TestMemoryStoreRunRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	if err := store.Init(ctx); err != nil {
		t.Fatalf("init: %v", err)
	}

	if _, ok, err := store.GetRun(ctx, "missing"); err != nil || ok {
		t.Fatalf("missing run: ok=%v err=%v", ok, err)
	}

	run := testRun("r1", "2026-08-24T10:00:00Z")
	if err := store.SaveRun(ctx, run); err != nil {
		t.Fatalf("save run: %v", err)
	}

	got, ok, err := store.GetRun(ctx, "r1")
	if err != nil || !ok {
		t.Fatalf("get run: ok=%v err=%v", ok, err)
	}
	if got != run {
		t.Fatalf("run round trip: got %+v", got)
	}
}

func TestMemoryStoreListRunsNewestFirst(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	if err := store.Init(ctx); err != nil {
		t.Fatalf("init: %v", err)
	}

	for _, run := range []model.RunRecord{
		testRun("old", "2026-08-22T10:00:00Z"),
		testRun("new", "2026-08-24T10:00:00Z"),
		testRun("mid", "2026-08-23T10:00:00Z"),
	} {
		if err := store.SaveRun(ctx, run); err != nil {
			t.Fatalf("save run %s: %v", run.ID, err)
		}
	}

	runs, err := store.ListRuns(ctx, 0)
	if err != nil {
		t.Fatalf("list runs: %v", err)
	}
	if len(runs) != 3 || runs[0].ID != "new" || runs[1].ID != "mid" || runs[2].ID != "old" {
		t.Fatalf("list order: %+v", runs)
	}

	limited, err := store.ListRuns(ctx, 2)
	if err != nil {
		t.Fatalf("list runs limited: %v", err)
	}
	if len(limited) != 2 || limited[0].ID != "new" {
		t.Fatalf("limited list: %+v", limited)
	}
}

func TestMemoryStoreFitnessHistoryCopies(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	if err := store.Init(ctx); err != nil {
		t.Fatalf("init: %v", err)
	}

	history := []model.GenerationStats{
		{Generation: 1, BestFitness: 0.5, MeanFitness: 0.4},
		{Generation: 2, BestFitness: 0.7, MeanFitness: 0.5},
	}
	if err := store.SaveFitnessHistory(ctx, "r1", history); err != nil {
		t.Fatalf("save history: %v", err)
	}

	history[0].BestFitness = 0.0

	got, ok, err := store.GetFitnessHistory(ctx, "r1")
	if err != nil || !ok {
		t.Fatalf("get history: ok=%v err=%v", ok, err)
	}
	if got[0].BestFitness != 0.5 {
		t.Fatal("store must keep its own copy of the history")
	}

	if _, ok, _ := store.GetFitnessHistory(ctx, "missing"); ok {
		t.Fatal("missing history must report absent")
	}
}

func TestMemoryStoreBestGenotypeRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	if err := store.Init(ctx); err != nil {
		t.Fatalf("init: %v", err)
	}

	record := model.GenotypeRecord{
		VersionedRecord: model.VersionedRecord{SchemaVersion: CurrentSchemaVersion, CodecVersion: CurrentCodecVersion},
		RunID:           "r1",
		Bits:            "11110000",
		Fitness:         0.5,
	}
	if err := store.SaveBestGenotype(ctx, record); err != nil {
		t.Fatalf("save best: %v", err)
	}

	got, ok, err := store.GetBestGenotype(ctx, "r1")
	if err != nil || !ok {
		t.Fatalf("get best: ok=%v err=%v", ok, err)
	}
	if got != record {
		t.Fatalf("best genotype round trip: got %+v", got)
	}
}

func TestCodecRejectsVersionMismatch(t *testing.T) {
	run := testRun("r1", "2026-08-24T10:00:00Z")
	run.SchemaVersion = CurrentSchemaVersion + 1

	payload, err := EncodeRun(run)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if _, err := DecodeRun(payload); err == nil {
		t.Fatal("expected version mismatch error")
	}
}

func TestNewStoreFactory(t *testing.T) {
	if _, err := NewStore("memory", ""); err != nil {
		t.Fatalf("memory store: %v", err)
	}
	if _, err := NewStore("", ""); err != nil {
		t.Fatalf("default store: %v", err)
	}
	_, err := NewStore("bogus", "")
	if err == nil {
		t.Fatal("expected error for unknown backend")
	}
	if !strings.Contains(err.Error(), "bogus") {
		t.Fatalf("error must name the rejected kind: %v", err)
	}
}

func TestCloseIfSupportedIgnoresMemoryStore(t *testing.T) {
	if err := CloseIfSupported(NewMemoryStore()); err != nil {
		t.Fatalf("closing a memory store: %v", err)
	}
}
