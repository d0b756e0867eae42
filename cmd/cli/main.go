package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"dcf-valuation/internal/config"
	"dcf-valuation/internal/logger"
	"dcf-valuation/internal/model"
	"dcf-valuation/internal/report"
	"dcf-valuation/internal/valuation"

	"github.com/rs/zerolog"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "value":
		cmdValue(os.Args[2:])
	case "presets":
		cmdPresets(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("usage:")
	fmt.Println("  cli value --fcf 100560000000 --growth 0.06 --discount 0.08 --terminal-growth 0.025 --years 5")
	fmt.Println("  cli value --preset apple --years 10 --out results/table.csv")
	fmt.Println("  cli value --inputs examples/inputs.yaml")
	fmt.Println("  cli presets --dir examples/presets")
	fmt.Println("")
	fmt.Println("notes:")
	fmt.Println("  - rates are decimals (0.06 = 6%)")
	fmt.Println("  - explicit flags override --inputs, which overrides --preset")
}

func cmdValue(args []string) {
	fs := flag.NewFlagSet("value", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to YAML config (optional)")
	presetID := fs.String("preset", "", "Preset supplying base inputs (e.g. apple)")
	inputsPath := fs.String("inputs", "", "Path to YAML input file (optional)")
	fcf := fs.Float64("fcf", 0, "Initial free cash flow")
	growth := fs.Float64("growth", 0, "Annual FCF growth rate during the forecast")
	discount := fs.Float64("discount", 0, "Discount rate")
	terminal := fs.Float64("terminal-growth", 0, "Perpetual growth rate after the forecast")
	years := fs.Int("years", 0, "Number of forecast years")
	outPath := fs.String("out", "", "Optional path to write the projection table as CSV")
	_ = fs.Parse(args)

	cfg, log := setup(*cfgPath)

	presets, err := config.LoadPresets(cfg.Presets.Dir)
	if err != nil {
		log.Fatal().Err(err).Str("dir", cfg.Presets.Dir).Msg("load presets")
	}

	var inputs config.InputConfig
	if *presetID != "" {
		p, ok := presets.Get(*presetID)
		if !ok {
			log.Fatal().Str("preset", *presetID).Msg("preset not found")
		}
		inputs = p.Inputs
	}
	if *inputsPath != "" {
		fromFile, err := config.LoadInputFile(*inputsPath, presets)
		if err != nil {
			log.Fatal().Err(err).Msg("load input file")
		}
		inputs = config.MergeInputs(inputs, fromFile)
	}

	var flags config.InputConfig
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "fcf":
			flags.InitialFreeCashFlow = fcf
		case "growth":
			flags.GrowthRate = growth
		case "discount":
			flags.DiscountRate = discount
		case "terminal-growth":
			flags.TerminalGrowthRate = terminal
		case "years":
			flags.ForecastYears = years
		}
	})
	inputs = config.MergeInputs(inputs, flags)

	in, err := inputs.ToModelInputs()
	if err == nil {
		err = in.CheckHorizon(cfg.Limits.MaxForecastYears)
	}
	if err != nil {
		log.Error().Err(err).Msg("invalid inputs")
		os.Exit(2)
	}
	for _, w := range in.Warnings() {
		log.Warn().Msg(w)
	}

	res, err := valuation.Compute(in)
	if err != nil {
		code := 1
		if errors.Is(err, model.ErrInvalidInput) || errors.Is(err, model.ErrArithmeticSingularity) {
			code = 2
		}
		log.Error().Err(err).Msg("valuation failed")
		os.Exit(code)
	}

	rep := report.Build(res)
	if err := report.WriteTable(os.Stdout, rep.Table); err != nil {
		log.Fatal().Err(err).Msg("write table")
	}
	fmt.Println()
	fmt.Println(rep.Summary)

	if *outPath != "" {
		if err := os.MkdirAll(filepath.Dir(*outPath), 0o755); err != nil {
			log.Fatal().Err(err).Msg("create output dir")
		}
		if err := valuation.WriteTableCSV(*outPath, res.Projections); err != nil {
			log.Fatal().Err(err).Msg("write csv")
		}
		log.Info().Int("rows", len(res.Projections)).Str("path", *outPath).Msg("wrote projection table")
	}
}

func cmdPresets(args []string) {
	fs := flag.NewFlagSet("presets", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to YAML config (optional)")
	dir := fs.String("dir", "", "Preset directory (overrides config)")
	_ = fs.Parse(args)

	cfg, log := setup(*cfgPath)
	if *dir != "" {
		cfg.Presets.Dir = *dir
	}

	presets, err := config.LoadPresets(cfg.Presets.Dir)
	if err != nil {
		log.Fatal().Err(err).Str("dir", cfg.Presets.Dir).Msg("load presets")
	}

	fmt.Printf("%-18s %-24s %-18s %-8s %-8s %-8s %-5s\n", "id", "name", "fcf", "growth", "disc", "tg", "years")
	for _, p := range presets.List() {
		in, err := p.Inputs.ToModelInputs()
		if err != nil {
			log.Warn().Err(err).Str("preset", p.ID).Msg("incomplete preset")
			continue
		}
		fmt.Printf(
			"%-18s %-24s %-18s %-8.4f %-8.4f %-8.4f %-5d\n",
			p.ID,
			p.Name,
			report.Currency(in.InitialFreeCashFlow),
			in.GrowthRate,
			in.DiscountRate,
			in.TerminalGrowthRate,
			in.ForecastYears,
		)
	}
}

func setup(cfgPath string) (*config.Config, zerolog.Logger) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(2)
	}
	log := logger.New(logger.Config{
		Level:  cfg.Log.Level,
		Pretty: true,
		Output: os.Stderr,
	})
	return cfg, log
}
