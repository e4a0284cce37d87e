package main

import (
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"

	"github.com/KantaKan/terminal-calorie-tracker/internal/catalog"
	"github.com/KantaKan/terminal-calorie-tracker/internal/cli"
	"github.com/KantaKan/terminal-calorie-tracker/internal/constants"
	apperrors "github.com/KantaKan/terminal-calorie-tracker/internal/errors"
	"github.com/KantaKan/terminal-calorie-tracker/internal/ledger"
	"github.com/KantaKan/terminal-calorie-tracker/internal/logger"
	"github.com/KantaKan/terminal-calorie-tracker/internal/stats"
	"github.com/KantaKan/terminal-calorie-tracker/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Config file path." type:"path" default:"${config_path}" env:"CALTRACK_CONFIG"`
	Debug   bool   `help:"Enable debug logging." env:"CALTRACK_DEBUG"`

	Init   cli.InitCmd   `cmd:"" help:"Initialize caltrack storage."`
	Tui    cli.TuiCmd    `cmd:"" help:"Launch the interactive TUI." default:"1"`
	Log    cli.LogCmd    `cmd:"" help:"Log a meal for today."`
	Day    cli.DayCmd    `cmd:"" help:"Show the log for a day."`
	Week   cli.WeekCmd   `cmd:"" help:"Show the Monday-aligned week."`
	Report cli.ReportCmd `cmd:"" help:"Show the trailing 7-day report."`
	Streak cli.StreakCmd `cmd:"" help:"Show the current goal streak."`
	Goal   cli.GoalCmd   `cmd:"" help:"Show or set the daily calorie goal."`
	Entry  struct {
		Edit   cli.EntryEditCmd   `cmd:"" help:"Edit a log entry."`
		Delete cli.EntryDeleteCmd `cmd:"" help:"Delete a log entry."`
	} `cmd:"" help:"Manage log entries."`
	Food struct {
		Add    cli.FoodAddCmd    `cmd:"" help:"Add a food to the catalog."`
		Edit   cli.FoodEditCmd   `cmd:"" help:"Edit a catalog food."`
		Delete cli.FoodDeleteCmd `cmd:"" help:"Delete a catalog food."`
		List   cli.FoodListCmd   `cmd:"" help:"List all catalog foods."`
		Search cli.FoodSearchCmd `cmd:"" help:"Fuzzy search the catalog."`
	} `cmd:"" help:"Manage the food catalog."`
}

func main() {
	// A .env file is optional, useful for pointing CALTRACK_CONFIG at a
	// scratch database during development.
	_ = godotenv.Load()

	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Terminal calorie and macro tracker"),
		kong.UsageOnError(),
		kong.Vars{
			"version":     constants.Version,
			"config_path": constants.DefaultConfigPath,
		},
	)

	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug,
		ConfigDir: filepath.Dir(CLI.Config),
	}); err != nil {
		apperrors.Fatal(err)
	}

	// Storage backend follows the config file extension.
	var store storage.Provider
	if strings.HasSuffix(CLI.Config, ".json") {
		store = storage.NewJSONStore(CLI.Config)
	} else {
		store = storage.NewSQLiteStore(CLI.Config)
	}

	appCtx := &cli.Context{
		Store:   store,
		Catalog: catalog.New(store),
		Ledger:  ledger.New(store),
		Stats:   stats.New(store),
	}

	if err := ctx.Run(appCtx); err != nil {
		apperrors.Fatal(err)
	}
}
