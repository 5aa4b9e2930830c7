package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// BuildInfo is stamped into the binary at link time.
type BuildInfo struct {
	Version   string
	Commit    string
	BuildTime string
	GoVersion string
}

var buildInfo = BuildInfo{Version: "dev", Commit: "unknown", BuildTime: "unknown", GoVersion: "unknown"}

// SetBuildInfo records version details for --version.
func SetBuildInfo(info BuildInfo) { buildInfo = info }

var (
	configPath string
	cfg        appConfig
)

// Execute runs the wonders command line.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "wonders",
		Short:        "Browse the wonders of the ancient and modern world",
		Version:      buildInfo.Version,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := loadConfig(configPath, cmd.Flags())
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			cfg = loaded
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cfg)
		},
	}
	root.SetVersionTemplate(versionText())

	pf := root.PersistentFlags()
	pf.StringVar(&configPath, "config", "", "config file (default is $HOME/.config/wonders/config.yml)")
	pf.String("locale", "", "display language, e.g. en or es")
	pf.String("skin", "", "color skin name; files live in <config dir>/skins/<name>.yml")
	pf.Uint64("seed", 0, "seed for random picks (0 picks a fresh seed)")
	pf.Bool("strict", false, "exit on navigation contract violations instead of ignoring them")
	pf.String("log-file", "", "write JSON logs to this file")
	pf.String("log-level", "", "log level: debug, info, warn, error")
	root.Flags().String("open", "", "start on home, ancient, modern, random or a wonder key")

	root.AddCommand(listCmd())
	return root
}

func versionText() string {
	return fmt.Sprintf("Wonders of the World\n  Version:    %s\n  Commit:     %s\n  Built:      %s\n  Go version: %s\n",
		buildInfo.Version, buildInfo.Commit, buildInfo.BuildTime, buildInfo.GoVersion)
}
