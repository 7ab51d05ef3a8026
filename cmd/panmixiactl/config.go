package main

import (
	"encoding/json"
	"fmt"
	"os"

	"panmixia/pkg/bench"
)

// loadRunRequestFromConfig reads a run request from a JSON file. Keys
// mirror the request fields; absent keys keep the zero value so the
// client applies its defaults.
func loadRunRequestFromConfig(path string) (bench.RunRequest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return bench.RunRequest{}, fmt.Errorf("read config %s: %w", path, err)
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return bench.RunRequest{}, fmt.Errorf("parse config %s: %w", path, err)
	}

	var req bench.RunRequest
	if v, ok := asString(raw["problem"]); ok {
		req.Problem = v
	}
	if v, ok := asInt(raw["length"]); ok {
		req.Length = v
	}
	if v, ok := asInt(raw["population"]); ok {
		req.PopulationSize = v
	}
	if v, ok := asInt(raw["generations"]); ok {
		req.Generations = v
	}
	if v, ok := asInt64(raw["seed"]); ok {
		req.Seed = v
	}
	if v, ok := asInt(raw["group_size"]); ok {
		req.GroupSize = v
	}
	if v, ok := asInt(raw["crossover_points"]); ok {
		req.CrossoverPoints = v
	}
	if v, ok := asFloat64(raw["bit_flip_probability"]); ok {
		req.BitFlipProbability = v
	}
	if v, ok := asFloat64(raw["recombination_probability"]); ok {
		req.RecombinationProbability = v
	}
	if v, ok := asFloat64(raw["mutation_probability"]); ok {
		req.MutationProbability = v
	}

	return req, nil
}

func asString(v any) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

func asInt(v any) (int, bool) {
	switch x := v.(type) {
	case int:
		return x, true
	case float64:
		return int(x), true
	default:
		return 0, false
	}
}

func asInt64(v any) (int64, bool) {
	switch x := v.(type) {
	case int64:
		return x, true
	case int:
		return int64(x), true
	case float64:
		return int64(x), true
	default:
		return 0, false
	}
}

func asFloat64(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case int:
		return float64(x), true
	default:
		return 0, false
	}
}
