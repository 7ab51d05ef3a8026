package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "run.json")
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadRunRequestFromConfig(t *testing.T) {
	path := writeConfig(t, `{
		"problem": "trap",
		"length": 25,
		"population": 40,
		"generations": 80,
		"seed": 42,
		"group_size": 3,
		"crossover_points": 1,
		"bit_flip_probability": 0.05,
		"recombination_probability": 0.9,
		"mutation_probability": 0.7
	}`)

	req, err := loadRunRequestFromConfig(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if req.Problem != "trap" || req.Length != 25 || req.PopulationSize != 40 || req.Generations != 80 {
		t.Fatalf("run shape: %+v", req)
	}
	if req.Seed != 42 || req.GroupSize != 3 || req.CrossoverPoints != 1 {
		t.Fatalf("operator config: %+v", req)
	}
	if req.BitFlipProbability != 0.05 || req.RecombinationProbability != 0.9 || req.MutationProbability != 0.7 {
		t.Fatalf("probabilities: %+v", req)
	}
}

func TestLoadRunRequestPartialConfigKeepsZeroValues(t *testing.T) {
	path := writeConfig(t, `{"problem": "hiff", "length": 64}`)

	req, err := loadRunRequestFromConfig(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if req.Problem != "hiff" || req.Length != 64 {
		t.Fatalf("explicit fields: %+v", req)
	}
	if req.PopulationSize != 0 || req.Generations != 0 || req.BitFlipProbability != 0 {
		t.Fatalf("absent fields must stay zero: %+v", req)
	}
}

func TestLoadRunRequestRejectsBadInput(t *testing.T) {
	if _, err := loadRunRequestFromConfig(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatal("expected error for missing file")
	}

	path := writeConfig(t, `{"problem": `)
	if _, err := loadRunRequestFromConfig(path); err == nil {
		t.Fatal("expected error for malformed JSON")
	}
}

func TestRunDispatchRejectsUnknownCommand(t *testing.T) {
	ctx := context.Background()
	if err := run(ctx, nil); err == nil {
		t.Fatal("expected usage error with no arguments")
	}
	if err := run(ctx, []string{"nonsense"}); err == nil {
		t.Fatal("expected usage error for unknown command")
	}
}
