package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ingyamilmolinar/rangeslider/core/rangesel"
	"github.com/ingyamilmolinar/rangeslider/internal/config"
	"github.com/ingyamilmolinar/rangeslider/internal/ui"
)

// Version information set via ldflags during build.
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type globalFlags struct {
	envFile    string
	sliderFile string
}

func rootCmd() *cobra.Command {
	var flags globalFlags
	cmd := &cobra.Command{
		Use:           "rangeslider",
		Short:         "Interactive dual-handle range selection",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&flags.envFile, "env-file", "", "path to a .env file (default .env, optional)")
	cmd.PersistentFlags().StringVar(&flags.sliderFile, "sliders", "", "YAML slider definitions (overrides RANGESLIDER_SLIDER_FILE)")

	cmd.AddCommand(runCmd(&flags))
	cmd.AddCommand(validateCmd(&flags))
	cmd.AddCommand(versionCmd())
	return cmd
}

func loadConfig(flags *globalFlags) (config.AppConfig, error) {
	cfg, err := config.Load(flags.envFile, flags.sliderFile)
	if err != nil {
		return config.AppConfig{}, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// sliderDefs converts validated entries into widget definitions.
func sliderDefs(f config.SliderFile) ([]ui.SliderDef, error) {
	defs := make([]ui.SliderDef, 0, len(f.Sliders))
	for _, e := range f.Sliders {
		rc, err := e.RangeConfig()
		if err != nil {
			return nil, fmt.Errorf("slider %q: %w", e.Name, err)
		}
		defs = append(defs, ui.SliderDef{Name: e.Name, Config: rc, Unit: e.Unit})
	}
	return defs, nil
}

func validateCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check the configuration and list the sliders",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(flags)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, e := range cfg.Sliders.Sliders {
				rc, err := e.RangeConfig()
				if err != nil {
					return err
				}
				sel := rangesel.Selection(rc.Bounds)
				if rc.Initial != nil {
					sel = *rc.Initial
				}
				fmt.Fprintf(out, "%s\tbounds=%s\tselection=%s\tmapping=%v\n",
					e.Name, rangesel.Selection(rc.Bounds), sel, rc.Scale)
			}
			return nil
		},
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "rangeslider %s (%s)\n", version, commit)
		},
	}
}
