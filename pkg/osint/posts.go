package osint

import "instaosint/pkg/instagram"

// ProjectPosts walks the blob's timeline media edges and projects them
// into post records, truncated to limit. Navigation failures degrade to
// an empty sequence; partial reports are more useful than aborted ones.
func ProjectPosts(blob *instagram.SharedData, limit int) []PostRecord {
	if blob == nil || limit <= 0 {
		return nil
	}
	if len(blob.EntryData.ProfilePage) == 0 {
		return nil
	}

	media := blob.EntryData.ProfilePage[0].Graphql.User.EdgeOwnerToTimelineMedia
	if media == nil {
		return nil
	}

	edges := media.Edges
	if len(edges) > limit {
		edges = edges[:limit]
	}

	posts := make([]PostRecord, 0, len(edges))
	for _, edge := range edges {
		node := edge.Node

		caption := ""
		if len(node.EdgeMediaToCaption.Edges) > 0 {
			caption = node.EdgeMediaToCaption.Edges[0].Node.Text
		}

		post := PostRecord{
			ID:         node.ID,
			Shortcode:  node.Shortcode,
			Timestamp:  node.TakenAtTimestamp,
			IsVideo:    node.IsVideo,
			DisplayURL: node.DisplayURL,
			VideoURL:   node.VideoURL,
			Caption:    caption,
			Hashtags:   Hashtags(caption),
			Mentions:   Mentions(caption),
		}

		if node.EdgeLikedBy != nil {
			post.Likes = node.EdgeLikedBy.Count
		}
		if node.EdgeMediaToComment != nil {
			post.Comments = node.EdgeMediaToComment.Count
		}
		if node.Dimensions != nil {
			post.Height = node.Dimensions.Height
			post.Width = node.Dimensions.Width
		}
		if node.Location != nil {
			post.Location = node.Location.Name
		}

		posts = append(posts, post)
	}

	return posts
}

// ProjectStories projects embedded story items, when the page carries
// any. The reel structure is unstable; any navigation failure yields an
// empty sequence.
func ProjectStories(blob *instagram.SharedData) []StoryRecord {
	if blob == nil || len(blob.EntryData.ProfilePage) == 0 {
		return nil
	}

	reel := blob.EntryData.ProfilePage[0].Graphql.User.Reel
	if reel == nil || len(reel.Items) == 0 {
		return nil
	}

	stories := make([]StoryRecord, 0, len(reel.Items))
	for _, item := range reel.Items {
		mediaURL := item.DisplayURL
		if item.IsVideo && item.VideoURL != "" {
			mediaURL = item.VideoURL
		}
		stories = append(stories, StoryRecord{
			ID:        item.ID,
			MediaURL:  mediaURL,
			IsVideo:   item.IsVideo,
			TakenAt:   item.TakenAtTimestamp,
			ExpiresAt: item.ExpiringAtTimestamp,
		})
	}

	return stories
}
