package system

import (
	"fmt"
	"os"

	"github.com/kbpkavisika/GearUp/internal/cli"
)

type InitCmd struct {
	Force bool `help:"Delete any existing storage before initialization."`
}

func (c *InitCmd) Run(ctx *cli.Context) error {
	if c.Force {
		path := ctx.Store.GetConfigPath()
		if path != "postgres" {
			if _, err := os.Stat(path); err == nil {
				if err := ctx.Store.Close(); err != nil {
					return fmt.Errorf("failed to close existing storage: %w", err)
				}
				if err := os.Remove(path); err != nil {
					return fmt.Errorf("failed to delete existing storage: %w", err)
				}
				fmt.Printf("Deleted existing storage at: %s\n", path)
			} else if !os.IsNotExist(err) {
				return fmt.Errorf("failed to access existing storage: %w", err)
			}
		}
	}

	if err := ctx.Store.Init(); err != nil {
		return err
	}
	fmt.Printf("Initialized gearup storage at: %s\n", ctx.Store.GetConfigPath())

	if err := ctx.Store.Load(); err != nil {
		return err
	}

	habits, err := ctx.Store.GetHabits()
	if err != nil {
		return err
	}
	// Persist the seeded collection so the generated habit ids are pinned;
	// unsaved defaults would be re-minted with fresh ids on every read,
	// orphaning any progress recorded against them.
	if err := ctx.Store.SaveHabits(habits); err != nil {
		return err
	}
	fmt.Printf("Seeded %d starter habits:\n", len(habits))
	for _, h := range habits {
		fmt.Printf("  %s %s (%d %s daily)\n", h.Icon, h.Name, h.TargetValue, h.Unit)
	}

	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return err
	}
	if settings.FirstLaunch {
		settings.FirstLaunch = false
		if err := ctx.Store.SaveSettings(settings); err != nil {
			return err
		}
	}

	fmt.Println("\nRun `gearup` to open the dashboard, or `gearup status` for a quick look.")
	return nil
}
