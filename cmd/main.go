package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/reban87/employee-record/internal/config"
	"github.com/reban87/employee-record/internal/employee"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg := MustNewConfig(parseFlags())

	level, err := cfg.Log.ZerologLevel()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to read application config")
	}

	zerolog.SetGlobalLevel(level)
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = newLogger(os.Stderr, cfg.Log.Pretty.Value)

	style, err := cfg.Output.EmployeeStyle()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to read application config")
	}

	if err := run(os.Stdout, style, log.Logger); err != nil {
		log.Fatal().Err(err).Msg("employee output failed")
	}
}

// referenceFields is the employee printed by the CLI.
func referenceFields() employee.Fields {
	return employee.Fields{
		employee.FieldName:            "Chris DeTuma",
		employee.FieldEmail:           "cdetuma@example.com",
		employee.FieldDateOfBirth:     "1998-04-02",
		employee.FieldSalary:          123_000.00,
		employee.FieldDepartment:      "IT",
		employee.FieldElectedBenefits: true,
	}
}

func run(out io.Writer, style employee.Style, logger zerolog.Logger) error {
	emp, err := employee.New(referenceFields())
	if err != nil {
		return fmt.Errorf("employee.New: %w", err)
	}

	logger.Debug().
		Str("name", emp.Name()).
		Str("department", emp.Department()).
		Str("style", string(style)).
		Msg("employee constructed")

	if _, err := fmt.Fprintln(out, employee.Format(emp, style)); err != nil {
		return fmt.Errorf("fmt.Fprintln: %w", err)
	}

	logger.Info().Str("style", string(style)).Msg("employee printed")

	return nil
}

func newLogger(w io.Writer, pretty bool) zerolog.Logger {
	if pretty {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}

	return zerolog.New(w).With().
		Timestamp().
		Str("run_id", uuid.NewString()).
		Logger()
}

func MustNewConfig(path string, explicit bool) *config.Config {
	cfg, err := config.Load(path, explicit)
	if err != nil {
		log.Fatal().Str("path", path).Err(err).Msg("failed to read application config")
		return nil
	}

	return cfg
}

// parseFlags returns the config path and whether the caller chose it.
func parseFlags() (string, bool) {
	var configPath string

	flag.StringVar(&configPath, "config", "", "path to config file")
	flag.Parse()

	_ = godotenv.Load(".env")

	if configPath == "" {
		configPath = os.Getenv("CONFIG_PATH")
	}

	if configPath == "" {
		return config.DefaultPath, false
	}

	return configPath, true
}
