package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/dustin/go-humanize"

	"panmixia/internal/storage"
	"panmixia/pkg/bench"
	"panmixia/pkg/panmixia"
)

func main() {
	if err := run(context.Background(), os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return usageError("missing command")
	}

	switch args[0] {
	case "init":
		return runInit(ctx, args[1:])
	case "run":
		return runRun(ctx, args[1:])
	case "runs":
		return runRuns(ctx, args[1:])
	case "fitness":
		return runFitness(ctx, args[1:])
	case "best":
		return runBest(ctx, args[1:])
	case "genotype":
		return runGenotype(args[1:])
	default:
		return usageError(fmt.Sprintf("unknown command: %s", args[0]))
	}
}

func usageError(msg string) error {
	return fmt.Errorf("%s\nusage: panmixiactl <init|run|runs|fitness|best|genotype> [flags]", msg)
}

func newClient(storeKind, dbPath string) (*bench.Client, error) {
	return bench.New(bench.Options{StoreKind: storeKind, DBPath: dbPath})
}

func runInit(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("init", flag.ContinueOnError)
	storeKind := fs.String("store", storage.DefaultStoreKind(), "store backend: memory|sqlite")
	dbPath := fs.String("db-path", "panmixia.db", "sqlite database path")
	if err := fs.Parse(args); err != nil {
		return err
	}

	client, err := newClient(*storeKind, *dbPath)
	if err != nil {
		return err
	}
	defer func() {
		_ = client.Close()
	}()

	if err := client.Init(ctx); err != nil {
		return err
	}

	fmt.Printf("initialized store=%s\n", *storeKind)
	return nil
}

func runRun(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	storeKind := fs.String("store", storage.DefaultStoreKind(), "store backend: memory|sqlite")
	dbPath := fs.String("db-path", "panmixia.db", "sqlite database path")
	configPath := fs.String("config", "", "JSON run config file; flags are ignored when set")
	problemName := fs.String("problem", "onemax", "fitness landscape: onemax|trap|hiff")
	length := fs.Int("length", 32, "genotype length in bits")
	population := fs.Int("population", 50, "population size")
	generations := fs.Int("generations", 100, "number of generations")
	seed := fs.Int64("seed", 0, "random seed")
	groupSize := fs.Int("group-size", 2, "tournament group size")
	points := fs.Int("points", 2, "crossover point count")
	flipProb := fs.Float64("flip-prob", 0.02, "per-bit mutation probability")
	recombinationProb := fs.Float64("recombination-prob", 0, "recombination probability (0 selects the 0.8 default)")
	mutationProb := fs.Float64("mutation-prob", 0, "mutation probability (0 selects the 0.8 default)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	req := bench.RunRequest{
		Problem:                  *problemName,
		Length:                   *length,
		PopulationSize:           *population,
		Generations:              *generations,
		Seed:                     *seed,
		GroupSize:                *groupSize,
		CrossoverPoints:          *points,
		BitFlipProbability:       *flipProb,
		RecombinationProbability: *recombinationProb,
		MutationProbability:      *mutationProb,
	}
	if *configPath != "" {
		loaded, err := loadRunRequestFromConfig(*configPath)
		if err != nil {
			return err
		}
		req = loaded
	}

	client, err := newClient(*storeKind, *dbPath)
	if err != nil {
		return err
	}
	defer func() {
		_ = client.Close()
	}()
	if err := client.Init(ctx); err != nil {
		return err
	}

	started := time.Now()
	summary, err := client.Run(ctx, req)
	if err != nil {
		return err
	}

	fmt.Printf("run %s problem=%s best=%v optimum=%v evaluations=%s elapsed=%s\n",
		summary.RunID,
		summary.Problem,
		summary.FinalBestFitness,
		summary.ReachedOptimum,
		humanize.Comma(summary.Evaluations),
		time.Since(started).Round(time.Millisecond),
	)
	fmt.Printf("best genotype: %s\n", summary.BestGenotype)
	return nil
}

func runRuns(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("runs", flag.ContinueOnError)
	storeKind := fs.String("store", storage.DefaultStoreKind(), "store backend: memory|sqlite")
	dbPath := fs.String("db-path", "panmixia.db", "sqlite database path")
	limit := fs.Int("limit", 20, "maximum runs to list, newest first")
	if err := fs.Parse(args); err != nil {
		return err
	}

	client, err := newClient(*storeKind, *dbPath)
	if err != nil {
		return err
	}
	defer func() {
		_ = client.Close()
	}()
	if err := client.Init(ctx); err != nil {
		return err
	}

	runs, err := client.Runs(ctx, *limit)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no runs recorded")
		return nil
	}

	for _, run := range runs {
		fmt.Printf("%s problem=%s length=%d population=%d generations=%d best=%v evaluations=%s created=%s\n",
			run.ID,
			run.Problem,
			run.GenotypeLength,
			run.PopulationSize,
			run.Generations,
			run.FinalBestFitness,
			humanize.Comma(run.Evaluations),
			run.CreatedAtUTC,
		)
	}
	return nil
}

func runFitness(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("fitness", flag.ContinueOnError)
	storeKind := fs.String("store", storage.DefaultStoreKind(), "store backend: memory|sqlite")
	dbPath := fs.String("db-path", "panmixia.db", "sqlite database path")
	runID := fs.String("run", "", "run identifier")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *runID == "" {
		return usageError("fitness requires -run")
	}

	client, err := newClient(*storeKind, *dbPath)
	if err != nil {
		return err
	}
	defer func() {
		_ = client.Close()
	}()
	if err := client.Init(ctx); err != nil {
		return err
	}

	history, err := client.FitnessHistory(ctx, *runID)
	if err != nil {
		return err
	}
	for _, stats := range history {
		fmt.Printf("generation %d: best=%v avg=%v\n", stats.Generation, stats.BestFitness, stats.MeanFitness)
	}
	return nil
}

func runBest(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("best", flag.ContinueOnError)
	storeKind := fs.String("store", storage.DefaultStoreKind(), "store backend: memory|sqlite")
	dbPath := fs.String("db-path", "panmixia.db", "sqlite database path")
	runID := fs.String("run", "", "run identifier")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *runID == "" {
		return usageError("best requires -run")
	}

	client, err := newClient(*storeKind, *dbPath)
	if err != nil {
		return err
	}
	defer func() {
		_ = client.Close()
	}()
	if err := client.Init(ctx); err != nil {
		return err
	}

	record, err := client.BestGenotype(ctx, *runID)
	if err != nil {
		return err
	}
	fmt.Printf("%s fitness = %v\n", record.Bits, record.Fitness)
	return nil
}

func runGenotype(args []string) error {
	fs := flag.NewFlagSet("genotype", flag.ContinueOnError)
	length := fs.Int("length", 32, "genotype length in bits")
	seed := fs.Int64("seed", 0, "random seed; 0 uses the current time")
	if err := fs.Parse(args); err != nil {
		return err
	}

	s := *seed
	if s == 0 {
		s = time.Now().UnixNano()
	}
	g := panmixia.RandomBinaryGenotype(*length, rand.New(rand.NewSource(s)))
	fmt.Println(g)
	return nil
}
