package osint

import (
	"errors"

	"instaosint/pkg/instagram"
)

var (
	// ErrNoProfileData means the profile page could not be fetched or
	// carried no embedded data blob.
	ErrNoProfileData = errors.New("could not fetch profile data")

	// ErrUnexpectedFormat means the blob was present but the expected
	// nested path to the profile entity was missing.
	ErrUnexpectedFormat = errors.New("unexpected profile data format")
)

// ProjectProfile navigates the blob to the page's primary subject and
// maps it into a flat ProfileRecord. Extraction is all-or-nothing: any
// missing path segment yields an error and no record.
func ProjectProfile(blob *instagram.SharedData) (*ProfileRecord, error) {
	if blob == nil {
		return nil, ErrNoProfileData
	}

	if len(blob.EntryData.ProfilePage) == 0 {
		return nil, ErrUnexpectedFormat
	}

	user := blob.EntryData.ProfilePage[0].Graphql.User
	if user.Username == "" {
		return nil, ErrUnexpectedFormat
	}

	record := &ProfileRecord{
		Username:      user.Username,
		FullName:      user.FullName,
		Biography:     user.Biography,
		IsPrivate:     user.IsPrivate,
		IsVerified:    user.IsVerified,
		IsBusiness:    user.IsBusinessAccount,
		Category:      user.CategoryName,
		ExternalURL:   user.ExternalURL,
		ProfilePicURL: user.ProfilePicURLHD,
	}
	if record.ProfilePicURL == "" {
		record.ProfilePicURL = user.ProfilePicURL
	}

	if user.EdgeFollowedBy != nil {
		record.Followers = intPtr(user.EdgeFollowedBy.Count)
	}
	if user.EdgeFollow != nil {
		record.Following = intPtr(user.EdgeFollow.Count)
	}
	if user.EdgeOwnerToTimelineMedia != nil {
		record.PostsCount = intPtr(user.EdgeOwnerToTimelineMedia.Count)
	}

	return record, nil
}

func intPtr(v int) *int {
	return &v
}
