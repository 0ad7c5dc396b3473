package instagram

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "instaosint/pkg/errors"
)

func profilePageHTML(blobJSON string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head><title>target</title></head>
<body>
<script type="text/javascript">window.__initialDataLoaded = true;</script>
<script type="text/javascript">window._sharedData = %s;</script>
<script type="text/javascript">window.__extra = {};</script>
</body>
</html>`, blobJSON)
}

const minimalBlob = `{"entry_data":{"ProfilePage":[{"graphql":{"user":{"username":"target","edge_followed_by":{"count":100}}}}]}}`

func TestExtractSharedData(t *testing.T) {
	t.Run("extracts blob from script tag", func(t *testing.T) {
		blob, err := ExtractSharedData(strings.NewReader(profilePageHTML(minimalBlob)))
		require.NoError(t, err)
		require.Len(t, blob.EntryData.ProfilePage, 1)

		user := blob.EntryData.ProfilePage[0].Graphql.User
		assert.Equal(t, "target", user.Username)
		require.NotNil(t, user.EdgeFollowedBy)
		assert.Equal(t, 100, user.EdgeFollowedBy.Count)
	})

	t.Run("tolerates whitespace around assignment", func(t *testing.T) {
		html := `<html><body><script>window._sharedData   =   ` + minimalBlob + `;</script></body></html>`
		blob, err := ExtractSharedData(strings.NewReader(html))
		require.NoError(t, err)
		assert.Equal(t, "target", blob.EntryData.ProfilePage[0].Graphql.User.Username)
	})

	t.Run("missing marker", func(t *testing.T) {
		html := `<html><body><script>window.other = {};</script></body></html>`
		blob, err := ExtractSharedData(strings.NewReader(html))
		assert.Nil(t, blob)
		require.Error(t, err)

		var e *errs.Error
		require.ErrorAs(t, err, &e)
		assert.Equal(t, errs.ErrorTypeParsing, e.Type)
	})

	t.Run("no script tags at all", func(t *testing.T) {
		blob, err := ExtractSharedData(strings.NewReader(`<html><body><p>hello</p></body></html>`))
		assert.Nil(t, blob)
		assert.Error(t, err)
	})

	t.Run("malformed JSON payload", func(t *testing.T) {
		html := `<html><body><script>window._sharedData = {"entry_data": broken};</script></body></html>`
		blob, err := ExtractSharedData(strings.NewReader(html))
		assert.Nil(t, blob)
		require.Error(t, err)

		var e *errs.Error
		require.ErrorAs(t, err, &e)
		assert.Equal(t, errs.ErrorTypeParsing, e.Type)
	})
}

func TestUsernameHelpers(t *testing.T) {
	t.Run("valid usernames", func(t *testing.T) {
		for _, name := range []string{"user", "user.name", "user_name", "a1", "A.B_c9"} {
			assert.True(t, IsValidUsername(name), name)
		}
	})

	t.Run("invalid usernames", func(t *testing.T) {
		for _, name := range []string{"", "user name", "user!", strings.Repeat("a", 31)} {
			assert.False(t, IsValidUsername(name), name)
		}
	})

	t.Run("sanitize strips decoration", func(t *testing.T) {
		assert.Equal(t, "target", SanitizeUsername("  @target "))
	})
}

func TestProfilePageURL(t *testing.T) {
	assert.Equal(t, "https://www.instagram.com/target/", ProfilePageURL("target"))
}
