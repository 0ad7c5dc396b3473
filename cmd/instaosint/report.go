package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"instaosint/pkg/auth"
	"instaosint/pkg/instagram"
	"instaosint/pkg/logger"
	"instaosint/pkg/scraper"
	"instaosint/pkg/ui"
)

var reportPosts int

// reportCmd represents the report command
var reportCmd = &cobra.Command{
	Use:   "report <username>",
	Short: "Generate an OSINT report for a profile",
	Long: `Generate an investigation report for a public Instagram profile.

The report covers profile details, email addresses found in the
biography, engagement statistics over recent posts, hashtags, mentions
and visible story items. The report and a JSON snapshot of the raw
projections are written to the output directory.`,
	Example: `  # Report on a profile
  instaosint report natgeo

  # Analyze more posts and use a custom output directory
  instaosint report natgeo --posts 12 -o /tmp/osint`,
	Args: cobra.ExactArgs(1),
	Run:  runReport,
}

func init() {
	rootCmd.AddCommand(reportCmd)
	reportCmd.Flags().IntVar(&reportPosts, "posts", 0, "number of recent posts to analyze")
}

func runReport(cmd *cobra.Command, args []string) {
	username := instagram.SanitizeUsername(args[0])
	if !instagram.IsValidUsername(username) {
		ui.PrintError("Invalid username", username)
		os.Exit(1)
	}

	cfg, err := loadConfig()
	if err != nil {
		ui.PrintError("Failed to load configuration", err.Error())
		os.Exit(1)
	}
	if reportPosts > 0 {
		cfg.Report.PostLimit = reportPosts
	}

	logger.Initialize(&cfg.Logging)
	log := logger.GetLogger()

	session, err := scraper.New(cfg, log)
	if err != nil {
		ui.PrintError("Failed to initialize session", err.Error())
		os.Exit(1)
	}

	attachCredentials(session)

	ui.PrintInfo("Target Profile", username)

	report, err := session.GenerateReport(context.Background(), username)
	if err != nil {
		ui.PrintError("Report generation failed", err.Error())
		os.Exit(1)
	}

	fmt.Print(report)
	ui.PrintSuccess(fmt.Sprintf("Done. %d requests made.", session.RequestCount()))
}

// attachCredentials wires stored credentials into the session when any
// exist. Missing credentials are not an error; public pages work
// without them.
func attachCredentials(session *scraper.Session) {
	manager, err := auth.NewManager()
	if err != nil {
		return
	}

	account, err := manager.RetrieveDefault()
	if err != nil {
		return
	}

	session.SetAccount(account)
	ui.PrintInfo("Authenticated as", account.Username)
}
