package system

import (
	"encoding/json"
	"fmt"

	"github.com/kbpkavisika/GearUp/internal/cli"
)

type DebugCmd struct {
	DBPath       *DebugDBPathCmd       `cmd:"" help:"Show storage path."`
	DumpHabits   *DebugDumpHabitsCmd   `cmd:"" help:"Dump habit data as JSON."`
	DumpProgress *DebugDumpProgressCmd `cmd:"" help:"Dump habit progress data as JSON."`
	DumpMoods    *DebugDumpMoodsCmd    `cmd:"" help:"Dump mood entries as JSON."`
	DumpSettings *DebugDumpSettingsCmd `cmd:"" help:"Dump settings as JSON."`
}

type DebugDBPathCmd struct{}

func (cmd *DebugDBPathCmd) Run(ctx *cli.Context) error {
	return printJSON(map[string]string{"path": ctx.Store.GetConfigPath()})
}

type DebugDumpHabitsCmd struct{}

func (cmd *DebugDumpHabitsCmd) Run(ctx *cli.Context) error {
	habits, err := ctx.Store.GetHabits()
	if err != nil {
		return err
	}
	return printJSON(habits)
}

type DebugDumpProgressCmd struct{}

func (cmd *DebugDumpProgressCmd) Run(ctx *cli.Context) error {
	progress, err := ctx.Store.GetHabitProgress()
	if err != nil {
		return err
	}
	return printJSON(progress)
}

type DebugDumpMoodsCmd struct{}

func (cmd *DebugDumpMoodsCmd) Run(ctx *cli.Context) error {
	entries, err := ctx.Store.GetMoodEntries()
	if err != nil {
		return err
	}
	return printJSON(entries)
}

type DebugDumpSettingsCmd struct{}

func (cmd *DebugDumpSettingsCmd) Run(ctx *cli.Context) error {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return err
	}
	return printJSON(settings)
}

func printJSON(v any) error {
	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	fmt.Println(string(jsonBytes))
	return nil
}
