package instagram

// SharedData is the embedded application state blob some Instagram pages
// serialize into a script tag to hand initial state to client-side code.
// Only the paths this tool navigates are modelled.
type SharedData struct {
	EntryData EntryData `json:"entry_data"`
}

// EntryData wraps the per-page-type entries of the blob
type EntryData struct {
	ProfilePage []ProfilePage `json:"ProfilePage"`
}

// ProfilePage is one profile-page entry
type ProfilePage struct {
	Graphql Graphql `json:"graphql"`
}

// Graphql wraps the page's primary subject entity
type Graphql struct {
	User User `json:"user"`
}

// User represents the profile owner as embedded in the page
type User struct {
	ID                string `json:"id"`
	Username          string `json:"username"`
	FullName          string `json:"full_name"`
	Biography         string `json:"biography"`
	IsPrivate         bool   `json:"is_private"`
	IsVerified        bool   `json:"is_verified"`
	IsBusinessAccount bool   `json:"is_business_account"`
	CategoryName      string `json:"category_name"`
	ExternalURL       string `json:"external_url"`
	ProfilePicURL     string `json:"profile_pic_url"`
	ProfilePicURLHD   string `json:"profile_pic_url_hd"`

	EdgeFollowedBy           *CountEdge                `json:"edge_followed_by"`
	EdgeFollow               *CountEdge                `json:"edge_follow"`
	EdgeOwnerToTimelineMedia *EdgeOwnerToTimelineMedia `json:"edge_owner_to_timeline_media"`

	// Reel carries story items when the page embeds them. The structure
	// is less stable than the timeline media and is best-effort only.
	Reel *Reel `json:"reel"`
}

// CountEdge is a graph-style wrapper holding only a count
type CountEdge struct {
	Count int `json:"count"`
}

// EdgeOwnerToTimelineMedia contains the user's timeline media connection
type EdgeOwnerToTimelineMedia struct {
	Count int    `json:"count"`
	Edges []Edge `json:"edges"`
}

// Edge wraps a single media node
type Edge struct {
	Node Node `json:"node"`
}

// Node represents a single media item (photo or video)
type Node struct {
	ID                 string              `json:"id"`
	Shortcode          string              `json:"shortcode"`
	TakenAtTimestamp   int64               `json:"taken_at_timestamp"`
	IsVideo            bool                `json:"is_video"`
	DisplayURL         string              `json:"display_url"`
	VideoURL           string              `json:"video_url"`
	EdgeMediaToCaption CaptionEdges        `json:"edge_media_to_caption"`
	EdgeMediaToComment *CountEdge          `json:"edge_media_to_comment"`
	EdgeLikedBy        *CountEdge          `json:"edge_liked_by"`
	Dimensions         *Dimensions         `json:"dimensions"`
	Location           *Location           `json:"location"`
}

// CaptionEdges wraps the caption connection
type CaptionEdges struct {
	Edges []CaptionEdge `json:"edges"`
}

// CaptionEdge wraps a single caption fragment
type CaptionEdge struct {
	Node CaptionNode `json:"node"`
}

// CaptionNode holds one caption text fragment
type CaptionNode struct {
	Text string `json:"text"`
}

// Dimensions holds media height and width
type Dimensions struct {
	Height int `json:"height"`
	Width  int `json:"width"`
}

// Location represents a tagged geographic location
type Location struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// Reel wraps the story items embedded for the profile owner
type Reel struct {
	Items []ReelItem `json:"items"`
}

// ReelItem represents one story item
type ReelItem struct {
	ID                  string `json:"id"`
	DisplayURL          string `json:"display_url"`
	IsVideo             bool   `json:"is_video"`
	VideoURL            string `json:"video_url"`
	TakenAtTimestamp    int64  `json:"taken_at_timestamp"`
	ExpiringAtTimestamp int64  `json:"expiring_at_timestamp"`
}
