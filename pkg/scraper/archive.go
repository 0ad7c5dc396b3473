package scraper

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"instaosint/pkg/instagram"
	"instaosint/pkg/osint"
)

// ArchiveResult summarizes one archive run
type ArchiveResult struct {
	Target          string
	ProfilePicSaved bool
	PostsSaved      int
	StoriesSaved    int
	Errors          int
}

// DownloadAllMedia builds the per-target archive tree: profile picture
// and info under general/, recent post media and analysis under posts/,
// story media under stories/, and a highlights note. Individual media
// failures are counted and skipped; only a missing profile aborts.
func (s *Session) DownloadAllMedia(ctx context.Context, username string) (*ArchiveResult, error) {
	username = instagram.SanitizeUsername(username)

	s.logger.InfoWithFields("archiving media", map[string]interface{}{
		"target": username,
	})

	blob, err := s.fetcher.FetchSharedData(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch profile page: %w", err)
	}

	profile, err := osint.ProjectProfile(blob)
	if err != nil {
		return nil, fmt.Errorf("cannot archive %s: %w", username, err)
	}

	posts := osint.ProjectPosts(blob, s.cfg.Report.ArchivePostLimit)
	stories := osint.ProjectStories(blob)

	layout, err := s.store.ArchiveDirs(username)
	if err != nil {
		return nil, fmt.Errorf("failed to create archive tree: %w", err)
	}

	result := &ArchiveResult{Target: username}

	if profile.ProfilePicURL != "" {
		if err := s.saveMediaURL(ctx, profile.ProfilePicURL, filepath.Join(layout.General, "profile_picture.jpg")); err != nil {
			result.Errors++
		} else {
			result.ProfilePicSaved = true
		}
	}

	if err := s.store.WriteText(filepath.Join(layout.General, "profile_info.txt"), profileInfoText(profile)); err != nil {
		result.Errors++
	}

	for i, post := range posts {
		mediaURL, ext := post.DisplayURL, "jpg"
		if post.IsVideo && post.VideoURL != "" {
			mediaURL, ext = post.VideoURL, "mp4"
		}
		if mediaURL == "" {
			continue
		}

		name := fmt.Sprintf("post_%02d.%s", i+1, ext)
		if err := s.saveMediaURL(ctx, mediaURL, filepath.Join(layout.Posts, name)); err != nil {
			result.Errors++
			continue
		}
		result.PostsSaved++
	}

	if len(posts) > 0 {
		if err := s.store.WriteText(filepath.Join(layout.Posts, "posts_analysis.txt"), postAnalysisText(profile, posts)); err != nil {
			result.Errors++
		}
	}

	for i, story := range stories {
		ext := "jpg"
		if story.IsVideo {
			ext = "mp4"
		}

		name := fmt.Sprintf("story_%02d.%s", i+1, ext)
		if err := s.saveMediaURL(ctx, story.MediaURL, filepath.Join(layout.Stories, name)); err != nil {
			result.Errors++
			continue
		}
		result.StoriesSaved++
	}

	if len(stories) > 0 {
		if err := s.store.WriteText(filepath.Join(layout.Stories, "stories_analysis.txt"), storyAnalysisText(stories)); err != nil {
			result.Errors++
		}
	}

	highlightsNote := "Highlight reels require an authenticated GraphQL session and are not\nfetched from the public profile page.\n"
	if err := s.store.WriteText(filepath.Join(layout.Highlights, "highlights_info.txt"), highlightsNote); err != nil {
		result.Errors++
	}

	s.logger.InfoWithFields("archive complete", map[string]interface{}{
		"target":  username,
		"posts":   result.PostsSaved,
		"stories": result.StoriesSaved,
		"errors":  result.Errors,
	})

	return result, nil
}

func (s *Session) saveMediaURL(ctx context.Context, mediaURL, path string) error {
	data, err := s.fetcher.Download(ctx, mediaURL)
	if err != nil {
		s.logger.WarnWithFields("media download failed", map[string]interface{}{
			"url":   mediaURL,
			"error": err.Error(),
		})
		return err
	}

	return s.store.SaveMedia(data, path)
}

func profileInfoText(profile *osint.ProfileRecord) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Username: %s\n", profile.Username)
	fmt.Fprintf(&b, "Full Name: %s\n", profile.FullName)
	fmt.Fprintf(&b, "Biography: %s\n", profile.Biography)
	fmt.Fprintf(&b, "Followers: %d\n", derefInt(profile.Followers))
	fmt.Fprintf(&b, "Following: %d\n", derefInt(profile.Following))
	fmt.Fprintf(&b, "Posts: %d\n", derefInt(profile.PostsCount))
	fmt.Fprintf(&b, "Private: %s\n", yesNo(profile.IsPrivate))
	fmt.Fprintf(&b, "Verified: %s\n", yesNo(profile.IsVerified))
	if profile.ExternalURL != "" {
		fmt.Fprintf(&b, "External URL: %s\n", profile.ExternalURL)
	}
	fmt.Fprintf(&b, "Archived: %s\n", time.Now().UTC().Format("2006-01-02 15:04:05 UTC"))

	return b.String()
}

func postAnalysisText(profile *osint.ProfileRecord, posts []osint.PostRecord) string {
	var b strings.Builder

	followers := derefInt(profile.Followers)

	fmt.Fprintf(&b, "Posts analyzed: %d\n\n", len(posts))
	for i, post := range posts {
		fmt.Fprintf(&b, "[%d] %s\n", i+1, post.Shortcode)
		if post.Timestamp > 0 {
			fmt.Fprintf(&b, "    Posted: %s\n", time.Unix(post.Timestamp, 0).UTC().Format("2006-01-02 15:04:05 UTC"))
		}
		fmt.Fprintf(&b, "    Likes: %d  Comments: %d\n", post.Likes, post.Comments)
		fmt.Fprintf(&b, "    Engagement Rate: %.2f%%\n", osint.EngagementRate(post, followers))
		if post.IsVideo {
			fmt.Fprintln(&b, "    Type: video")
		} else {
			fmt.Fprintln(&b, "    Type: photo")
		}
		if post.Height > 0 && post.Width > 0 {
			fmt.Fprintf(&b, "    Dimensions: %dx%d\n", post.Width, post.Height)
		}
		if len(post.Hashtags) > 0 {
			fmt.Fprintf(&b, "    Hashtags: %s\n", strings.Join(post.Hashtags, " "))
		}
		if len(post.Mentions) > 0 {
			fmt.Fprintf(&b, "    Mentions: %s\n", strings.Join(post.Mentions, " "))
		}
		if post.Location != "" {
			fmt.Fprintf(&b, "    Location: %s\n", post.Location)
		}
		if caption := truncate(post.Caption, 200); caption != "" {
			fmt.Fprintf(&b, "    Caption: %s\n", caption)
		}
		fmt.Fprintln(&b)
	}

	return b.String()
}

func storyAnalysisText(stories []osint.StoryRecord) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Story items: %d\n\n", len(stories))
	for i, story := range stories {
		kind := "photo"
		if story.IsVideo {
			kind = "video"
		}
		fmt.Fprintf(&b, "[%d] %s (%s)\n", i+1, story.ID, kind)
		if story.TakenAt > 0 {
			fmt.Fprintf(&b, "    Taken: %s\n", time.Unix(story.TakenAt, 0).UTC().Format("2006-01-02 15:04:05 UTC"))
		}
		if story.ExpiresAt > 0 {
			fmt.Fprintf(&b, "    Expires: %s\n", time.Unix(story.ExpiresAt, 0).UTC().Format("2006-01-02 15:04:05 UTC"))
		}
	}

	return b.String()
}
