package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"

	"github.com/pengdafu/chaindict/bench"
	"github.com/pengdafu/chaindict/diag"
	"github.com/pengdafu/chaindict/dict"
)

func main() {
	def := bench.DefaultConfig()
	configFile := flag.String("config", "", "benchmark config file (key value per line)")
	maxN := flag.Int("max", def.MaxElements, "largest element count")
	step := flag.Int("step", def.Step, "element count increment between runs")
	keyLen := flag.Int("keylen", def.KeyLength, "generated key length")
	load := flag.Float64("load", def.LoadFactor, "target load factor used to size each table")
	seed := flag.Int64("seed", def.Seed, "random seed, 0 picks one from the clock")
	clock := flag.String("clock", def.Clock, "timing clock: cpu or wall")
	hash := flag.String("hash", def.Hash, "hash function: djb2, siphash or maphash")
	baseline := flag.Bool("baseline", def.Baseline, "also run every step against a builtin map")
	verbose := flag.Bool("v", false, "print chain and lookup counters")
	dump := flag.Int("dump", 0, "print a sorted dump of a dictionary with this many keys before running")
	flag.Parse()

	cfg := def
	if *configFile != "" {
		var err error
		if cfg, err = bench.LoadConfig(*configFile); err != nil {
			log.Fatal(err)
		}
	}
	// 命令行参数覆盖配置文件
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "max":
			cfg.MaxElements = *maxN
		case "step":
			cfg.Step = *step
		case "keylen":
			cfg.KeyLength = *keyLen
		case "load":
			cfg.LoadFactor = *load
		case "seed":
			cfg.Seed = *seed
		case "clock":
			cfg.Clock = *clock
		case "hash":
			cfg.Hash = *hash
		case "baseline":
			cfg.Baseline = *baseline
		}
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	runner, err := bench.NewRunner(ctx, cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer runner.Close(context.Background())

	if *dump > 0 {
		if err := dumpSample(ctx, runner, *dump); err != nil {
			log.Fatal(err)
		}
	}

	report := bench.Report
	if *verbose {
		report = bench.ReportVerbose
	}
	err = runner.Run(ctx, func(res bench.Result) error {
		return report(os.Stdout, res)
	})
	if errors.Is(err, dict.ErrTableAlloc) {
		log.Fatal("fatal: ", err)
	}
	if err != nil {
		log.Println("run aborted:", err)
		stop()
		runner.Close(context.Background())
		os.Exit(1)
	}
}

func dumpSample(ctx context.Context, runner *bench.Runner, n int) error {
	d, _, err := runner.Populate(ctx, n)
	if err != nil {
		return err
	}
	defer d.Release()
	if err := diag.DumpSorted(os.Stdout, d); err != nil {
		return err
	}
	return diag.Histogram(os.Stdout, d)
}
