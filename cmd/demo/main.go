package main

import (
	"flag"
	"fmt"
	"os"

	"dcf-valuation/internal/config"
	"dcf-valuation/internal/logger"
	"dcf-valuation/internal/report"
	"dcf-valuation/internal/valuation"
)

// Demo:
// - Take the built-in Apple preset (optionally a preset file)
// - Run the valuation engine
// - Print the table, the chart series and the summary
func main() {
	presetPath := flag.String("preset", "", "Path to a preset YAML file (default: built-in apple)")
	years := flag.Int("years", 0, "Override forecast years (0 = preset value)")
	outCSV := flag.String("out", "", "Optional path to write the projection table CSV")
	flag.Parse()

	log := logger.New(logger.Config{Level: "info", Pretty: true, Output: os.Stderr})

	preset := config.Apple()
	if *presetPath != "" {
		p, err := config.LoadPresetFile(*presetPath)
		if err != nil {
			log.Fatal().Err(err).Msg("load preset")
		}
		preset = p
	}
	if *years > 0 {
		preset.Inputs.ForecastYears = years
	}

	in, err := preset.Inputs.ToModelInputs()
	if err != nil {
		log.Fatal().Err(err).Str("preset", preset.ID).Msg("incomplete preset")
	}

	res, err := valuation.Compute(in)
	if err != nil {
		log.Fatal().Err(err).Msg("valuation failed")
	}
	rep := report.Build(res)

	fmt.Printf("Preset: %s (%s)\n", preset.Name, preset.ID)
	fmt.Printf("Inputs: fcf=%s growth=%.2f%% discount=%.2f%% terminal_growth=%.2f%% years=%d\n\n",
		report.Currency(in.InitialFreeCashFlow), in.GrowthRate*100, in.DiscountRate*100, in.TerminalGrowthRate*100, in.ForecastYears)

	if err := report.WriteTable(os.Stdout, rep.Table); err != nil {
		log.Fatal().Err(err).Msg("write table")
	}

	fmt.Printf("\n%s\n", rep.Chart.Title)
	fmt.Printf("%-6s %s\n", rep.Chart.XLabel, rep.Chart.YLabel)
	for _, p := range rep.Chart.Points {
		fmt.Printf("%-6.0f %s\n", p.X, report.Currency(p.Y))
	}

	fmt.Printf("\n%s\n", rep.Summary)

	if *outCSV != "" {
		if err := valuation.WriteTableCSV(*outCSV, res.Projections); err != nil {
			log.Fatal().Err(err).Msg("write csv")
		}
		log.Info().Str("path", *outCSV).Msg("wrote projection table")
	}
}
