// Package cmd implements the philo command line.
package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/viant/philo"
	"github.com/viant/philo/internal/logwriter"
)

var (
	cfgFile   string // Path to config file
	logFile   string // Path to log file
	noLogging bool   // Turn off logging
	noColour  bool   // Turn of colour output
	debug     bool   // Verbose diagnostics
)

// RootCmd runs the simulation; it takes no positional arguments
var RootCmd = &cobra.Command{
	Use:   "philo",
	Short: "Dining philosophers simulation",
	Long: `philo seats five philosophers at a round table and lets them think and eat
until interrupted.

Every state change is written to the status log, one line per event:
  Philosopher 3 is hungry.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

// Execute runs the root command until SIGINT or SIGTERM.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := RootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Println(err)
		os.Exit(-1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	RootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.philo.yaml)")
	RootCmd.PersistentFlags().StringVar(&logFile, "log", "", "path to log file (default is stdout)")
	RootCmd.PersistentFlags().BoolVar(&noLogging, "no-logging", false, "disable logging")
	RootCmd.PersistentFlags().BoolVar(&noColour, "no-colour", false, "disable colour output")

	RootCmd.Flags().Duration("unit", time.Second, "duration of one think/eat unit")
	RootCmd.Flags().Int64("seed", 0, "random schedule seed (default is time based)")
	RootCmd.Flags().String("script", "", "URL of a YAML schedule script")
	RootCmd.Flags().String("trace", "", "write OpenTelemetry spans to file")
	RootCmd.Flags().BoolVar(&debug, "debug", false, "enable debug diagnostics")

	for key, flag := range map[string]string{
		"schedule.unit": "unit",
		"schedule.seed": "seed",
		"script":        "script",
		"tracing.file":  "trace",
	} {
		if err := viper.BindPFlag(key, RootCmd.Flags().Lookup(flag)); err != nil {
			panic(err)
		}
	}
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" { // enable ability to specify config file via flag
		viper.SetConfigFile(cfgFile)
	}

	viper.SetConfigName(".philo") // name of config file (without extension)
	viper.AddConfigPath("$HOME")  // adding home directory as first search path
	bindEnv(viper.GetViper())

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		slog.Info("using config file", "file", viper.ConfigFileUsed())
	}
}

// bindEnv reads PHILO_* variables, e.g. PHILO_SCHEDULE_THINKMAX for schedule.thinkMax
func bindEnv(v *viper.Viper) {
	v.SetEnvPrefix("PHILO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv() // read in environment variables that match
}

// setDefaults registers every config key, so that environment variables are
// consulted for keys with no flag or config file entry
func setDefaults(v *viper.Viper, config *philo.Config) {
	for key, value := range map[string]interface{}{
		"seats":                    config.Seats,
		"schedule.unit":            config.Schedule.Unit,
		"schedule.thinkMin":        config.Schedule.ThinkMin,
		"schedule.thinkMax":        config.Schedule.ThinkMax,
		"schedule.eatMin":          config.Schedule.EatMin,
		"schedule.eatMax":          config.Schedule.EatMax,
		"schedule.seed":            config.Schedule.Seed,
		"script":                   config.Script,
		"watchdog.pollingInterval": config.Watchdog.PollingInterval,
		"watchdog.stallAfter":      config.Watchdog.StallAfter,
		"events.queueBuffer":       config.Events.QueueBuffer,
		"tracing.file":             config.Tracing.File,
		"tracing.serviceName":      config.Tracing.ServiceName,
		"tracing.serviceVersion":   config.Tracing.ServiceVersion,
	} {
		v.SetDefault(key, value)
	}
}

// loadConfig overlays v on the default configuration; the seat count is fixed
func loadConfig(v *viper.Viper) (*philo.Config, error) {
	config := philo.DefaultConfig()
	setDefaults(v, config)
	if err := v.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	config.Seats = philo.DefaultSeats
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func newLogger() *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func run(cmd *cobra.Command, _ []string) error {
	logger := newLogger()
	config, err := loadConfig(viper.GetViper())
	if err != nil {
		return err
	}
	l := logwriter.NewFile(logFile, !noLogging, !noColour)
	if err := l.Create(); err != nil {
		return err
	}
	defer l.Cleanup()

	srv, err := philo.New(
		philo.WithConfig(config),
		philo.WithLogger(logger),
		philo.WithOutput(l.Writer),
		philo.WithColour(l.EnableColour),
		philo.WithStallHandler(func(seat int) {
			logger.Warn("possible starvation", "seat", seat)
		}),
	)
	if err != nil {
		return err
	}
	return srv.Run(cmd.Context())
}
