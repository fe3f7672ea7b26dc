package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/TeongTat/travelagentic/internal/app"
	"github.com/TeongTat/travelagentic/internal/config"
	"github.com/TeongTat/travelagentic/internal/domain/models"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var errStagesFailed = errors.New("one or more stages failed")

type options struct {
	configPath       string
	origin           string
	destination      string
	departureDate    string
	returnDate       string
	weatherQuestion  string
	flightPreference string
	format           string
	strict           bool
	verbose          bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "tripbrief",
		Short: "Print a travel brief for one trip",
		Long: `tripbrief runs the introduction, flight lookup and summary stages once
and prints the three panes. Secrets are read from the environment or .env.`,
		Example:       "  tripbrief --from KUL --to NRT --depart 2025-10-30 --format yaml",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, opts)
		},
	}

	today := time.Now().Format(models.DateLayout)
	f := cmd.Flags()
	f.StringVar(&opts.configPath, "config", defaultConfigPath(), "path to config file")
	f.StringVar(&opts.origin, "from", "KUL", "origin airport IATA code")
	f.StringVar(&opts.destination, "to", "NRT", "destination airport IATA code")
	f.StringVar(&opts.departureDate, "depart", today, "departure date (YYYY-MM-DD)")
	f.StringVar(&opts.returnDate, "return", today, "return date (YYYY-MM-DD)")
	f.StringVarP(&opts.weatherQuestion, "question", "q", "What should I pack?", "weather or packing question")
	f.StringVar(&opts.flightPreference, "preference", "Prefer direct flight, budget airline OK.", "flight preference")
	f.StringVarP(&opts.format, "format", "o", formatMarkdown, "output format: markdown, json, yaml")
	f.BoolVar(&opts.strict, "strict", false, "exit non-zero when any stage fails")
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "log pipeline progress to stderr")

	return cmd
}

func run(cmd *cobra.Command, opts *options) error {
	if !validFormat(opts.format) {
		return fmt.Errorf("unknown format %q", opts.format)
	}
	req, err := opts.tripRequest()
	if err != nil {
		return err
	}

	_ = godotenv.Load(".env")

	cfg, err := config.LoadByPath(opts.configPath)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log := cliLogger(opts.verbose)
	defer func() {
		_ = log.Sync()
	}()

	planner, err := app.NewPlanner(cmd.Context(), log, cfg)
	if err != nil {
		return err
	}

	brief := planner.Plan(cmd.Context(), req)
	if err := writeBrief(cmd.OutOrStdout(), opts.format, brief); err != nil {
		return err
	}

	if opts.strict {
		for _, pane := range brief.Panes() {
			if pane.Failed() {
				return fmt.Errorf("%w: %s is %s", errStagesFailed, pane.Stage, pane.Status)
			}
		}
	}
	return nil
}

func (o *options) tripRequest() (models.TripRequest, error) {
	req := models.TripRequest{
		Origin:           o.origin,
		Destination:      o.destination,
		WeatherQuestion:  o.weatherQuestion,
		FlightPreference: o.flightPreference,
	}

	var err error
	if req.DepartureDate, err = parseDateFlag("depart", o.departureDate); err != nil {
		return models.TripRequest{}, err
	}
	if req.ReturnDate, err = parseDateFlag("return", o.returnDate); err != nil {
		return models.TripRequest{}, err
	}

	return req.Normalized(), nil
}

func parseDateFlag(name, value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(models.DateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("--%s must be YYYY-MM-DD, got %q", name, value)
	}
	return t, nil
}

func defaultConfigPath() string {
	if p := os.Getenv("CONFIG_PATH"); p != "" {
		return p
	}
	return "config/local.yaml"
}

// cliLogger writes to stderr so stdout carries only the brief.
func cliLogger(verbose bool) *zap.Logger {
	level := zapcore.WarnLevel
	if verbose {
		level = zapcore.DebugLevel
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.OutputPaths = []string{"stderr"}
	cfg.DisableStacktrace = true

	log, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return log
}
