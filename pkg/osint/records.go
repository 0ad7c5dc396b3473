package osint

// ProfileRecord is the normalized projection of a profile page's
// primary subject. A record is either fully populated from a successful
// parse or not produced at all; downstream consumers never see a
// partially-valid record.
type ProfileRecord struct {
	Username  string `json:"username"`
	FullName  string `json:"full_name"`
	Biography string `json:"biography"`

	// Count fields are nil when the source blob omitted them. They
	// render as zero only at report time.
	Followers  *int `json:"followers"`
	Following  *int `json:"following"`
	PostsCount *int `json:"posts_count"`

	IsPrivate  bool `json:"is_private"`
	IsVerified bool `json:"is_verified"`
	IsBusiness bool `json:"is_business"`

	Category      string `json:"category"`
	ExternalURL   string `json:"external_url"`
	ProfilePicURL string `json:"profile_pic_url"`
}

// PostRecord is one timeline post projected from the page's embedded
// media edges. Records are constructed once per fetch and never mutated.
type PostRecord struct {
	ID        string `json:"id"`
	Shortcode string `json:"shortcode"`

	// Timestamp is epoch seconds; zero means the source omitted it.
	Timestamp int64 `json:"timestamp"`

	IsVideo    bool   `json:"is_video"`
	DisplayURL string `json:"display_url"`
	VideoURL   string `json:"video_url,omitempty"`
	Caption    string `json:"caption"`

	Likes    int `json:"likes"`
	Comments int `json:"comments"`

	// Hashtags and Mentions are derived from the caption text, in
	// first-occurrence order with original casing, deduplicated.
	Hashtags []string `json:"hashtags"`
	Mentions []string `json:"mentions"`

	Height int `json:"height,omitempty"`
	Width  int `json:"width,omitempty"`

	Location string `json:"location,omitempty"`
}

// StoryRecord is one story item. The source structure is less stable
// than timeline media and projection is best-effort only.
type StoryRecord struct {
	ID        string `json:"id"`
	MediaURL  string `json:"media_url"`
	IsVideo   bool   `json:"is_video"`
	TakenAt   int64  `json:"taken_at"`
	ExpiresAt int64  `json:"expires_at"`
}
