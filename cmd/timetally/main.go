package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/username/time-tally/internal/calendar"
	"github.com/username/time-tally/internal/config"
	"github.com/username/time-tally/internal/httpapi"
	"github.com/username/time-tally/internal/logging"
	"github.com/username/time-tally/internal/server"
	"github.com/username/time-tally/internal/workhours"
	"github.com/username/time-tally/pkg/dateutil"
)

var (
	configPath string
	cfg        *config.Config
	logger     *zap.Logger
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "timetally",
		Short:         "Swedish work hours calculator",
		Long:          "Calculate working hours per accounting period for Swedish calendar dates and serve them over HTTP",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.Load(configPath, cmd.Flags())
			if err != nil {
				return err
			}

			// serve logs on stdout, the other commands keep stdout for their output
			logOut := cmd.ErrOrStderr()
			if cmd == cmd.Root() || cmd.Name() == "serve" {
				logOut = cmd.OutOrStdout()
			}
			logger, err = logging.NewWithWriter(cfg, logOut)
			if err != nil {
				initLogger() // Fallback to console
				logger.Warn("Falling back to console logger", zap.Error(err))
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
		RunE: runServe,
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file path (yaml, toml or json)")
	config.RegisterFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(calcCmd())
	rootCmd.AddCommand(holidaysCmd())

	return rootCmd
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API (default command)",
		Args:  cobra.NoArgs,
		RunE:  runServe,
	}
}

func runServe(cmd *cobra.Command, args []string) error {
	holidays := calendar.NewHolidayCache()
	engine := workhours.NewSwedishEngine(holidays)
	router := httpapi.NewRouter(engine, holidays, logger)

	logger.Info("Starting timetally",
		zap.String("api_addr", cfg.APIAddr()),
		zap.Bool("metrics", cfg.Metrics),
		zap.String("subscriber", cfg.Subscriber),
		zap.Int("verbose", cfg.Verbose))

	return server.New(cfg, router, logger).Run(cmd.Context())
}

func calcCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "calc START END",
		Short: "Calculate work hours for an inclusive date range",
		Long:  "Calculate work hours between START and END (DD-MM-YYYY or YYYY-MM-DD), both inclusive",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := dateutil.ParseDate(args[0])
			if err != nil {
				return fmt.Errorf("invalid start date: %w", err)
			}
			end, err := dateutil.ParseDate(args[1])
			if err != nil {
				return fmt.Errorf("invalid end date: %w", err)
			}

			report, err := workhours.NewSwedishEngine(calendar.NewHolidayCache()).Compute(start, end)
			if err != nil {
				return err
			}

			logger.Debug("Calculated work hours",
				zap.Stringer("start", start),
				zap.Stringer("end", end),
				zap.Int("total", report.Total))

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(report)
			}

			printReport(cmd.OutOrStdout(), report)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the report as JSON")

	return cmd
}

func holidaysCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "holidays YEAR",
		Short: "List Swedish public holidays for a year",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, err := strconv.Atoi(args[0])
			if err != nil || year < dateutil.MinYear || year > dateutil.MaxYear {
				return fmt.Errorf("year must be between %d and %d, got %q", dateutil.MinYear, dateutil.MaxYear, args[0])
			}

			printHolidays(cmd.OutOrStdout(), calendar.SwedishHolidays(year).Holidays())
			return nil
		},
	}
}

func initLogger() {
	zapConfig := zap.NewProductionConfig()
	zapConfig.EncoderConfig.TimeKey = "timestamp"
	zapConfig.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	var err error
	logger, err = zapConfig.Build()
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
}
