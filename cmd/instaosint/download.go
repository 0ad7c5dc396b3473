package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"instaosint/pkg/instagram"
	"instaosint/pkg/logger"
	"instaosint/pkg/scraper"
	"instaosint/pkg/ui"
)

var downloadPosts int

// downloadCmd represents the download command
var downloadCmd = &cobra.Command{
	Use:   "download <username>",
	Short: "Archive a profile's media locally",
	Long: `Download a profile's publicly visible media into a per-target archive.

The archive tree is created under the downloads directory:

  downloads/<username>/general/     profile picture and profile info
  downloads/<username>/posts/       recent post media and analysis
  downloads/<username>/stories/     visible story media
  downloads/<username>/highlights/  highlight availability note

Individual media failures are skipped; the run continues.`,
	Example: `  # Archive a profile
  instaosint download natgeo

  # Archive more posts
  instaosint download natgeo --posts 16`,
	Args: cobra.ExactArgs(1),
	Run:  runDownload,
}

func init() {
	rootCmd.AddCommand(downloadCmd)
	downloadCmd.Flags().IntVar(&downloadPosts, "posts", 0, "number of recent posts to archive")
}

func runDownload(cmd *cobra.Command, args []string) {
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
	if downloadPosts > 0 {
		cfg.Report.ArchivePostLimit = downloadPosts
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

	result, err := session.DownloadAllMedia(context.Background(), username)
	if err != nil {
		ui.PrintError("Archive failed", err.Error())
		os.Exit(1)
	}

	ui.PrintInfo("Posts archived", fmt.Sprintf("%d", result.PostsSaved))
	ui.PrintInfo("Stories archived", fmt.Sprintf("%d", result.StoriesSaved))
	if result.Errors > 0 {
		ui.PrintWarning("Some media could not be fetched", result.Errors)
	}
	ui.PrintSuccess(fmt.Sprintf("Archive complete. %d requests made.", session.RequestCount()))
}
