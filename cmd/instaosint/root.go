package main

import (
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/spf13/cobra"

	"instaosint/pkg/config"
	"instaosint/pkg/ui"
)

var (
	// Version information
	version   = "1.0.0"
	gitCommit = "unknown"
	buildDate = "unknown"

	// Global flags
	configFile  string
	logLevel    string
	outputDir   string
	minDelay    time.Duration
	maxAttempts int
	quiet       bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "instaosint",
	Short: "Instagram profile intelligence and archive tool",
	Long: `InstaOsint collects publicly visible Instagram profile data and turns it
into investigation reports and local media archives.

Features:
  - Profile reports with contact signals, hashtags and mentions
  - Engagement statistics over recent posts
  - Full media archives with per-target folder trees
  - Paced requests with bounded retry on rate limits
  - Optional authenticated sessions from the system keychain`,
	Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, gitCommit, buildDate),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if quiet || logLevel == "error" {
			ui.Quiet = true
		}

		if cmd.Name() != "version" && cmd.Name() != "help" && cmd.Name() != "completion" {
			ui.PrintBanner()
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "config file (default is .instaosint.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVarP(&outputDir, "output", "o", "", "output directory for reports, data and downloads")
	rootCmd.PersistentFlags().DurationVar(&minDelay, "min-delay", 0, "minimum delay between requests")
	rootCmd.PersistentFlags().IntVar(&maxAttempts, "max-attempts", 0, "maximum attempts per request")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress all output except errors")

	rootCmd.SetVersionTemplate(`InstaOsint {{.Version}}
Go Version: ` + runtime.Version() + `
OS/Arch: ` + runtime.GOOS + `/` + runtime.GOARCH + `
`)

	rootCmd.CompletionOptions.DisableDefaultCmd = true
}

// loadConfig merges flags over environment and file configuration
func loadConfig() (*config.Config, error) {
	flags := make(map[string]interface{})
	if outputDir != "" {
		flags["output"] = outputDir
	}
	if minDelay > 0 {
		flags["min-delay"] = minDelay
	}
	if maxAttempts > 0 {
		flags["max-attempts"] = maxAttempts
	}
	if logLevel != "" {
		flags["log-level"] = logLevel
	}

	return config.Load(configFile, flags)
}
