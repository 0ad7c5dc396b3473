package osint

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"instaosint/pkg/instagram"
)

func testBlob(user instagram.User) *instagram.SharedData {
	blob := &instagram.SharedData{}
	blob.EntryData.ProfilePage = []instagram.ProfilePage{{}}
	blob.EntryData.ProfilePage[0].Graphql.User = user
	return blob
}

func testUserWithPosts(count int) instagram.User {
	edges := make([]instagram.Edge, count)
	for i := range edges {
		edges[i] = instagram.Edge{Node: instagram.Node{
			ID:        fmt.Sprintf("%d", i+1),
			Shortcode: fmt.Sprintf("SC%d", i+1),
		}}
	}

	return instagram.User{
		Username: "target",
		EdgeOwnerToTimelineMedia: &instagram.EdgeOwnerToTimelineMedia{
			Count: count,
			Edges: edges,
		},
	}
}

func TestProjectProfile(t *testing.T) {
	t.Run("nil blob", func(t *testing.T) {
		record, err := ProjectProfile(nil)
		assert.Nil(t, record)
		assert.ErrorIs(t, err, ErrNoProfileData)
	})

	t.Run("empty profile pages", func(t *testing.T) {
		record, err := ProjectProfile(&instagram.SharedData{})
		assert.Nil(t, record)
		assert.ErrorIs(t, err, ErrUnexpectedFormat)
	})

	t.Run("missing username", func(t *testing.T) {
		record, err := ProjectProfile(testBlob(instagram.User{FullName: "No Handle"}))
		assert.Nil(t, record)
		assert.ErrorIs(t, err, ErrUnexpectedFormat)
	})

	t.Run("full profile", func(t *testing.T) {
		blob := testBlob(instagram.User{
			ID:                "123",
			Username:          "target",
			FullName:          "Target User",
			Biography:         "contact: me@example.com",
			IsPrivate:         true,
			IsVerified:        true,
			IsBusinessAccount: true,
			CategoryName:      "Artist",
			ExternalURL:       "https://example.com",
			ProfilePicURL:     "https://cdn/pic.jpg",
			ProfilePicURLHD:   "https://cdn/pic_hd.jpg",
			EdgeFollowedBy:    &instagram.CountEdge{Count: 1500},
			EdgeFollow:        &instagram.CountEdge{Count: 300},
			EdgeOwnerToTimelineMedia: &instagram.EdgeOwnerToTimelineMedia{
				Count: 42,
			},
		})

		record, err := ProjectProfile(blob)
		require.NoError(t, err)

		assert.Equal(t, "target", record.Username)
		assert.Equal(t, "Target User", record.FullName)
		assert.Equal(t, "contact: me@example.com", record.Biography)
		assert.True(t, record.IsPrivate)
		assert.True(t, record.IsVerified)
		assert.True(t, record.IsBusiness)
		assert.Equal(t, "Artist", record.Category)
		assert.Equal(t, "https://cdn/pic_hd.jpg", record.ProfilePicURL)

		require.NotNil(t, record.Followers)
		assert.Equal(t, 1500, *record.Followers)
		require.NotNil(t, record.Following)
		assert.Equal(t, 300, *record.Following)
		require.NotNil(t, record.PostsCount)
		assert.Equal(t, 42, *record.PostsCount)
	})

	t.Run("missing counts stay nil", func(t *testing.T) {
		record, err := ProjectProfile(testBlob(instagram.User{Username: "target"}))
		require.NoError(t, err)

		assert.Nil(t, record.Followers)
		assert.Nil(t, record.Following)
		assert.Nil(t, record.PostsCount)
	})

	t.Run("standard pic when no HD variant", func(t *testing.T) {
		record, err := ProjectProfile(testBlob(instagram.User{
			Username:      "target",
			ProfilePicURL: "https://cdn/pic.jpg",
		}))
		require.NoError(t, err)
		assert.Equal(t, "https://cdn/pic.jpg", record.ProfilePicURL)
	})
}

func TestProjectPosts(t *testing.T) {
	t.Run("nil blob", func(t *testing.T) {
		assert.Nil(t, ProjectPosts(nil, 6))
	})

	t.Run("zero limit", func(t *testing.T) {
		assert.Nil(t, ProjectPosts(testBlob(testUserWithPosts(3)), 0))
	})

	t.Run("missing media edges", func(t *testing.T) {
		assert.Nil(t, ProjectPosts(testBlob(instagram.User{Username: "target"}), 6))
	})

	t.Run("fewer posts than limit", func(t *testing.T) {
		posts := ProjectPosts(testBlob(testUserWithPosts(2)), 6)
		assert.Len(t, posts, 2)
	})

	t.Run("more posts than limit truncates", func(t *testing.T) {
		posts := ProjectPosts(testBlob(testUserWithPosts(10)), 6)
		require.Len(t, posts, 6)
		assert.Equal(t, "SC1", posts[0].Shortcode)
		assert.Equal(t, "SC6", posts[5].Shortcode)
	})

	t.Run("full node projection", func(t *testing.T) {
		user := instagram.User{
			Username: "target",
			EdgeOwnerToTimelineMedia: &instagram.EdgeOwnerToTimelineMedia{
				Count: 1,
				Edges: []instagram.Edge{{Node: instagram.Node{
					ID:               "99",
					Shortcode:        "ABC",
					TakenAtTimestamp: 1700000000,
					IsVideo:          true,
					DisplayURL:       "https://cdn/display.jpg",
					VideoURL:         "https://cdn/video.mp4",
					EdgeMediaToCaption: instagram.CaptionEdges{
						Edges: []instagram.CaptionEdge{{Node: instagram.CaptionNode{
							Text: "on tour with @band #live",
						}}},
					},
					EdgeLikedBy:        &instagram.CountEdge{Count: 250},
					EdgeMediaToComment: &instagram.CountEdge{Count: 12},
					Dimensions:         &instagram.Dimensions{Height: 1080, Width: 1920},
					Location:           &instagram.Location{Name: "Berlin"},
				}}},
			},
		}

		posts := ProjectPosts(testBlob(user), 6)
		require.Len(t, posts, 1)

		post := posts[0]
		assert.Equal(t, "ABC", post.Shortcode)
		assert.Equal(t, int64(1700000000), post.Timestamp)
		assert.True(t, post.IsVideo)
		assert.Equal(t, "on tour with @band #live", post.Caption)
		assert.Equal(t, []string{"#live"}, post.Hashtags)
		assert.Equal(t, []string{"@band"}, post.Mentions)
		assert.Equal(t, 250, post.Likes)
		assert.Equal(t, 12, post.Comments)
		assert.Equal(t, 1080, post.Height)
		assert.Equal(t, "Berlin", post.Location)
	})
}

func TestProjectStories(t *testing.T) {
	t.Run("no reel", func(t *testing.T) {
		assert.Nil(t, ProjectStories(testBlob(instagram.User{Username: "target"})))
	})

	t.Run("video prefers video URL", func(t *testing.T) {
		user := instagram.User{
			Username: "target",
			Reel: &instagram.Reel{Items: []instagram.ReelItem{
				{ID: "s1", DisplayURL: "https://cdn/s1.jpg"},
				{ID: "s2", DisplayURL: "https://cdn/s2.jpg", IsVideo: true, VideoURL: "https://cdn/s2.mp4"},
			}},
		}

		stories := ProjectStories(testBlob(user))
		require.Len(t, stories, 2)
		assert.Equal(t, "https://cdn/s1.jpg", stories[0].MediaURL)
		assert.Equal(t, "https://cdn/s2.mp4", stories[1].MediaURL)
		assert.True(t, stories[1].IsVideo)
	})
}
