package osint

import "regexp"

var (
	hashtagPattern = regexp.MustCompile(`#\w+`)
	mentionPattern = regexp.MustCompile(`@\w+`)
	emailPattern   = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
)

// Hashtags returns the #-prefixed word tokens in the caption, in
// first-occurrence order with original casing, deduplicated.
func Hashtags(caption string) []string {
	return dedupe(hashtagPattern.FindAllString(caption, -1))
}

// Mentions returns the @-prefixed word tokens in the caption, in
// first-occurrence order with original casing, deduplicated.
func Mentions(caption string) []string {
	return dedupe(mentionPattern.FindAllString(caption, -1))
}

// ExtractEmails scans biography text for email addresses and returns a
// deduplicated set.
func ExtractEmails(biography string) []string {
	return dedupe(emailPattern.FindAllString(biography, -1))
}

// AggregateHashtags unions the per-post hashtag sets across a post
// sequence, deduplicated in first-occurrence order.
func AggregateHashtags(posts []PostRecord) []string {
	var all []string
	for _, post := range posts {
		all = append(all, post.Hashtags...)
	}
	return dedupe(all)
}

// AggregateMentions unions the per-post mention sets across a post
// sequence, deduplicated in first-occurrence order.
func AggregateMentions(posts []PostRecord) []string {
	var all []string
	for _, post := range posts {
		all = append(all, post.Mentions...)
	}
	return dedupe(all)
}

// EngagementRate computes (likes+comments)/followers*100 for one post.
// The follower count is floored at 1 so a zero or unset count cannot
// divide by zero.
func EngagementRate(post PostRecord, followers int) float64 {
	if followers < 1 {
		followers = 1
	}
	return float64(post.Likes+post.Comments) / float64(followers) * 100
}

func dedupe(tokens []string) []string {
	if len(tokens) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(tokens))
	out := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if !seen[token] {
			seen[token] = true
			out = append(out, token)
		}
	}
	return out
}
