package model

// VersionedRecord captures schema and codec evolution for persistent data.
type VersionedRecord struct {
	SchemaVersion int `json:"schema_version"`
	CodecVersion  int `json:"codec_version"`
}

// RunRecord is the persisted summary of one evolution run.
type RunRecord struct {
	VersionedRecord
	ID                       string  `json:"id"`
	Problem                  string  `json:"problem"`
	GenotypeLength           int     `json:"genotype_length"`
	PopulationSize           int     `json:"population_size"`
	Generations              int     `json:"generations"`
	Seed                     int64   `json:"seed"`
	GroupSize                int     `json:"group_size"`
	CrossoverPoints          int     `json:"crossover_points"`
	BitFlipProbability       float64 `json:"bit_flip_probability"`
	RecombinationProbability float64 `json:"recombination_probability"`
	MutationProbability      float64 `json:"mutation_probability"`
	CreatedAtUTC             string  `json:"created_at_utc"`
	FinalBestFitness         float64 `json:"final_best_fitness"`
	Evaluations              int64   `json:"evaluations"`
	ReachedOptimum           bool    `json:"reached_optimum"`
}

// GenerationStats records the fitness summary of one generation.
type GenerationStats struct {
	Generation  int     `json:"generation"`
	BestFitness float64 `json:"best_fitness"`
	MeanFitness float64 `json:"mean_fitness"`
}

// GenotypeRecord is the persisted best genotype of a run, in its textual
// bit-string rendering.
type GenotypeRecord struct {
	VersionedRecord
	RunID   string  `json:"run_id"`
	Bits    string  `json:"bits"`
	Fitness float64 `json:"fitness"`
}
