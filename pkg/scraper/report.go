package scraper

import (
	"context"
	"fmt"
	"strings"
	"time"

	"instaosint/pkg/instagram"
	"instaosint/pkg/osint"
	"instaosint/pkg/storage"
)

const reportRule = "=================================================="

// reportSnapshot is the JSON payload persisted alongside each report
type reportSnapshot struct {
	Profile *osint.ProfileRecord `json:"profile"`
	Posts   []osint.PostRecord   `json:"posts"`
	Stories []osint.StoryRecord  `json:"stories"`
	Emails  []string             `json:"emails"`
}

// GenerateReport runs the full pipeline for one target: fetch the
// profile page, project it, derive signals, persist a JSON snapshot and
// the rendered report, and return the report text. Fetch and parse
// failures degrade to an error line inside the report; only persistence
// failures surface as errors.
func (s *Session) GenerateReport(ctx context.Context, username string) (string, error) {
	username = instagram.SanitizeUsername(username)

	s.logger.InfoWithFields("generating report", map[string]interface{}{
		"target": username,
	})

	blob, err := s.fetcher.FetchSharedData(ctx, username)
	if err != nil {
		s.logger.WarnWithFields("profile fetch failed", map[string]interface{}{
			"target": username,
			"error":  err.Error(),
		})
		blob = nil
	}

	profile, profileErr := osint.ProjectProfile(blob)
	posts := osint.ProjectPosts(blob, s.cfg.Report.PostLimit)
	stories := osint.ProjectStories(blob)

	var emails []string
	if profile != nil {
		emails = osint.ExtractEmails(profile.Biography)
	}

	if profile != nil {
		if _, err := s.store.WriteSnapshot(username, reportSnapshot{
			Profile: profile,
			Posts:   posts,
			Stories: stories,
			Emails:  emails,
		}, "osint"); err != nil {
			s.logger.WarnWithFields("failed to write snapshot", map[string]interface{}{
				"target": username,
				"error":  err.Error(),
			})
		}
	}

	text := s.renderReport(username, profile, profileErr, posts, stories, emails)

	path, err := s.store.WriteReport(username, text, "report")
	if err != nil {
		return text, fmt.Errorf("failed to persist report: %w", err)
	}

	s.logger.InfoWithFields("report written", map[string]interface{}{
		"target": username,
		"path":   path,
	})

	return text + fmt.Sprintf("\nReport saved to: %s\n", path), nil
}

func (s *Session) renderReport(username string, profile *osint.ProfileRecord, profileErr error, posts []osint.PostRecord, stories []osint.StoryRecord, emails []string) string {
	var b strings.Builder

	fmt.Fprintln(&b, reportRule)
	fmt.Fprintf(&b, " INSTAGRAM OSINT REPORT: %s\n", username)
	fmt.Fprintf(&b, " Generated: %s\n", time.Now().UTC().Format("2006-01-02 15:04:05 UTC"))
	fmt.Fprintf(&b, " Output: %s\n", s.cfg.Output.BaseDirectory)
	fmt.Fprintln(&b, reportRule)
	fmt.Fprintln(&b)

	writeProfileSection(&b, profile, profileErr)
	writeEmailSection(&b, emails)
	writePostSection(&b, profile, posts)
	writeTokenSection(&b, "[HASHTAGS]", osint.AggregateHashtags(posts))
	writeTokenSection(&b, "[MENTIONS]", osint.AggregateMentions(posts))
	writeStorySection(&b, stories)
	s.writeArtifactSection(&b)

	return b.String()
}

func writeProfileSection(b *strings.Builder, profile *osint.ProfileRecord, profileErr error) {
	fmt.Fprintln(b, "[PROFILE]")
	if profileErr != nil {
		fmt.Fprintf(b, "Error: %s\n\n", profileErr.Error())
		return
	}

	fmt.Fprintf(b, "Username: %s\n", profile.Username)
	fmt.Fprintf(b, "Full Name: %s\n", profile.FullName)
	fmt.Fprintf(b, "Biography: %s\n", profile.Biography)
	fmt.Fprintf(b, "Followers: %d\n", derefInt(profile.Followers))
	fmt.Fprintf(b, "Following: %d\n", derefInt(profile.Following))
	fmt.Fprintf(b, "Posts: %d\n", derefInt(profile.PostsCount))
	fmt.Fprintf(b, "Private: %s\n", yesNo(profile.IsPrivate))
	fmt.Fprintf(b, "Verified: %s\n", yesNo(profile.IsVerified))
	fmt.Fprintf(b, "Business Account: %s\n", yesNo(profile.IsBusiness))
	if profile.Category != "" {
		fmt.Fprintf(b, "Category: %s\n", profile.Category)
	}
	if profile.ExternalURL != "" {
		fmt.Fprintf(b, "External URL: %s\n", profile.ExternalURL)
	}
	if profile.ProfilePicURL != "" {
		fmt.Fprintf(b, "Profile Picture: %s\n", profile.ProfilePicURL)
	}
	fmt.Fprintln(b)
}

func writeEmailSection(b *strings.Builder, emails []string) {
	fmt.Fprintln(b, "[EMAILS]")
	if len(emails) == 0 {
		fmt.Fprintln(b, "No email addresses found.")
	} else {
		for _, email := range emails {
			fmt.Fprintf(b, "- %s\n", email)
		}
	}
	fmt.Fprintln(b)
}

func writePostSection(b *strings.Builder, profile *osint.ProfileRecord, posts []osint.PostRecord) {
	fmt.Fprintln(b, "[RECENT POSTS]")
	if len(posts) == 0 {
		fmt.Fprintln(b, "No recent posts available.")
		fmt.Fprintln(b)
		return
	}

	var totalLikes, totalComments, videoCount int
	var totalEngagement float64
	followers := 0
	if profile != nil {
		followers = derefInt(profile.Followers)
	}

	for _, post := range posts {
		totalLikes += post.Likes
		totalComments += post.Comments
		if post.IsVideo {
			videoCount++
		}
		totalEngagement += osint.EngagementRate(post, followers)
	}

	fmt.Fprintf(b, "Analyzed Posts: %d\n", len(posts))
	fmt.Fprintf(b, "Total Likes: %d\n", totalLikes)
	fmt.Fprintf(b, "Total Comments: %d\n", totalComments)
	fmt.Fprintf(b, "Avg Likes/Post: %d\n", totalLikes/len(posts))
	fmt.Fprintf(b, "Avg Comments/Post: %d\n", totalComments/len(posts))
	fmt.Fprintf(b, "Video Posts: %d\n", videoCount)
	fmt.Fprintf(b, "Avg Engagement Rate: %.2f%%\n", totalEngagement/float64(len(posts)))
	fmt.Fprintln(b)

	for i, post := range posts {
		fmt.Fprintf(b, "[%d] %s  likes=%d comments=%d", i+1, post.Shortcode, post.Likes, post.Comments)
		if post.IsVideo {
			fmt.Fprint(b, " video")
		}
		if post.Location != "" {
			fmt.Fprintf(b, " location=%q", post.Location)
		}
		fmt.Fprintln(b)
		if caption := truncate(post.Caption, 100); caption != "" {
			fmt.Fprintf(b, "    %s\n", caption)
		}
	}
	fmt.Fprintln(b)
}

func writeTokenSection(b *strings.Builder, header string, tokens []string) {
	fmt.Fprintln(b, header)
	if len(tokens) == 0 {
		fmt.Fprintln(b, "None observed.")
	} else {
		fmt.Fprintln(b, strings.Join(tokens, " "))
	}
	fmt.Fprintln(b)
}

func writeStorySection(b *strings.Builder, stories []osint.StoryRecord) {
	fmt.Fprintln(b, "[STORIES]")
	if len(stories) == 0 {
		fmt.Fprintln(b, "No active story items visible.")
	} else {
		fmt.Fprintf(b, "Active story items: %d\n", len(stories))
		for _, story := range stories {
			kind := "photo"
			if story.IsVideo {
				kind = "video"
			}
			fmt.Fprintf(b, "- %s (%s)\n", story.ID, kind)
		}
	}
	fmt.Fprintln(b)
}

func (s *Session) writeArtifactSection(b *strings.Builder) {
	fmt.Fprintln(b, "[ARTIFACTS]")
	entries := s.store.Manifest()
	if len(entries) == 0 {
		fmt.Fprintln(b, "No artifacts written this session.")
		return
	}

	for _, cat := range []storage.Category{storage.CategoryReports, storage.CategoryData, storage.CategoryDownloads} {
		var paths []string
		for _, entry := range entries {
			if entry.Category == cat {
				paths = append(paths, entry.Path)
			}
		}
		if len(paths) == 0 {
			continue
		}
		fmt.Fprintf(b, "%s:\n", cat)
		for _, path := range paths {
			fmt.Fprintf(b, "  - %s\n", path)
		}
	}
}

func derefInt(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}

func yesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}

func truncate(s string, max int) string {
	s = strings.TrimSpace(strings.ReplaceAll(s, "\n", " "))
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
