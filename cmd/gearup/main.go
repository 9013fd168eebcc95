package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/kbpkavisika/GearUp/internal/cli"
	"github.com/kbpkavisika/GearUp/internal/cli/system"
	"github.com/kbpkavisika/GearUp/internal/constants"
	"github.com/kbpkavisika/GearUp/internal/keyring"
	"github.com/kbpkavisika/GearUp/internal/logger"
	"github.com/kbpkavisika/GearUp/internal/notifier"
	"github.com/kbpkavisika/GearUp/internal/reminder"
	"github.com/kbpkavisika/GearUp/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Storage path (.db for SQLite, .json for a JSON file) or 'postgres' to use the connection string from the OS keyring." default:"${config_path}"`
	Debug   bool   `help:"Mirror logs to stderr."`

	Init   system.InitCmd `cmd:"" help:"Initialize gearup storage."`
	Tui    system.TuiCmd  `cmd:"" help:"Open the interactive dashboard." default:"1"`
	Status cli.StatusCmd  `cmd:"" help:"Show today's habit and mood status."`
	Widget cli.WidgetCmd  `cmd:"" help:"Render the compact progress card."`
	Habit  cli.HabitCmd   `cmd:"" help:"Manage habits and daily progress."`
	Mood   cli.MoodCmd    `cmd:"" help:"Log and review moods."`
	Remind cli.RemindCmd  `cmd:"" help:"Configure and run hydration reminders."`
	System struct {
		Notify  system.NotifyCmd `cmd:"" help:"Send a single hydration reminder (for cron/systemd timers)."`
		Keyring struct {
			Set    system.KeyringSetCmd    `cmd:"" help:"Store a PostgreSQL connection string in the OS keyring."`
			Show   system.KeyringShowCmd   `cmd:"" help:"Show the stored connection string (password masked)."`
			Delete system.KeyringDeleteCmd `cmd:"" help:"Delete the stored connection string."`
		} `cmd:"" help:"Manage keyring credentials."`
		Debug system.DebugCmd `cmd:"" help:"Debug commands for troubleshooting."`
	} `cmd:"" help:"System and diagnostics commands."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("gearup"),
		kong.Description("Personal wellness companion: habits, moods, and hydration reminders"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{
			"version":     constants.Version,
			"config_path": constants.DefaultConfigPath,
		},
	)

	configPath := expandHome(CLI.Config)

	logDir := filepath.Dir(configPath)
	if configPath == "postgres" {
		if home, err := os.UserHomeDir(); err == nil {
			logDir = filepath.Join(home, ".config", constants.AppName)
		}
	}
	if err := logger.Init(logger.Config{Debug: CLI.Debug, ConfigDir: logDir}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logging: %v\n", err)
	}

	appCtx := &cli.Context{
		Scheduler: reminder.New(reminder.NewTickerRunner(), notifier.New().Notify),
		Notifier:  notifier.New(),
	}

	// Keyring commands run without a store: resolving "postgres" needs a
	// stored connection string, which is exactly what they manage.
	cmdPath := ctx.Command()
	if storeRequired(cmdPath) {
		var store storage.Provider
		switch {
		case configPath == "postgres":
			connStr, err := keyring.GetConnectionString()
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				fmt.Fprintf(os.Stderr, "Store one with: gearup system keyring set \"postgresql://user@host:5432/gearup\"\n")
				os.Exit(1)
			}
			store = storage.NewPostgresStore(connStr)
		case strings.HasSuffix(configPath, ".json"):
			store = storage.NewJSONStore(configPath)
		default:
			store = storage.NewSQLiteStore(configPath)
		}
		appCtx.Store = store

		// Load the store before running the command (init handles its own
		// loading).
		if loadRequired(cmdPath) {
			if err := store.Load(); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			defer store.Close()
		}
	}

	if err := ctx.Run(appCtx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// storeRequired reports whether the selected command touches the record
// store at all.
func storeRequired(cmdPath string) bool {
	return !strings.HasPrefix(cmdPath, "system keyring")
}

// loadRequired reports whether the store must be loaded before dispatch.
func loadRequired(cmdPath string) bool {
	return storeRequired(cmdPath) && !strings.HasPrefix(cmdPath, "init")
}

func expandHome(path string) string {
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}
