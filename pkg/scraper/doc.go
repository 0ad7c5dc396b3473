// Package scraper drives the profile investigation pipeline.
//
// The Session type coordinates the Instagram client, the signal
// projections and the storage manager. It exposes two high-level
// operations:
//
//   - GenerateReport fetches a profile page, projects profile, post and
//     story data from it, derives contact and engagement signals, and
//     renders a plain-text report. The report and a JSON snapshot of the
//     projections are persisted; fetch failures degrade to an error line
//     inside the report rather than aborting it.
//
//   - DownloadAllMedia builds a per-target archive tree under the
//     downloads directory with the profile picture, recent post media,
//     visible stories and analysis files.
//
// Usage:
//
//	cfg := config.DefaultConfig()
//	session, err := scraper.New(cfg, nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	report, err := session.GenerateReport(ctx, "username")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Print(report)
//
// All outbound requests are paced and transient failures are retried a
// bounded number of times; see the instagram and retry packages.
package scraper
