package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostMerge(t *testing.T) {
	post := NewPost()
	err := post.Merge(map[string]any{
		"uri":          "http://something/api/posts/fa8e6cc713",
		"title":        "White paint",
		"view_count":   json.Number("795"),
		"rating_count": "7",
		"category_id":  json.Number("12"),
	})
	require.NoError(t, err)

	assert.Equal(t, "fa8e6cc713", post.Hash)
	assert.Equal(t, "http://something/api/posts/fa8e6cc713", post.APIURI)
	assert.Equal(t, "White paint", post.Title)
	assert.Equal(t, 795, post.ViewCount)
	assert.Equal(t, 7, post.RatingCount)
	assert.Equal(t, map[string]any{"category_id": json.Number("12")}, post.Extra)
}

func TestPostMergeKeepsExistingAttributes(t *testing.T) {
	post := &Post{Hash: "fa8e6cc713", Title: "Old title", Body: "Kept"}

	require.NoError(t, post.Merge(map[string]any{"title": "New title", "view_count": 3}))

	assert.Equal(t, "fa8e6cc713", post.Hash)
	assert.Equal(t, "New title", post.Title)
	assert.Equal(t, "Kept", post.Body)
	assert.Equal(t, 3, post.ViewCount)
	assert.Nil(t, post.Extra)
}

func TestPostMergeExplicitHashWins(t *testing.T) {
	post := NewPost()

	require.NoError(t, post.Merge(map[string]any{
		"hash":    "abcdefghij",
		"api_uri": "http://something/api/posts/fa8e6cc713",
	}))

	assert.Equal(t, "abcdefghij", post.Hash)
}

func TestPostMergeAPIURIWinsOverURI(t *testing.T) {
	post := NewPost()

	require.NoError(t, post.Merge(map[string]any{
		"uri":     "http://something/other",
		"api_uri": "http://something/api/posts/fa8e6cc713",
	}))

	assert.Equal(t, "http://something/api/posts/fa8e6cc713", post.APIURI)
	assert.Equal(t, map[string]any{"uri": "http://something/other"}, post.Extra)
}

func TestPostMergeRejectsBadType(t *testing.T) {
	post := NewPost()

	err := post.Merge(map[string]any{"view_count": "lots"})
	assert.ErrorContains(t, err, "failed to decode post")
}

func TestUserMerge(t *testing.T) {
	user := NewUser()
	err := user.Merge(map[string]any{
		"guid":     "1837",
		"uri":      "http://something/api/users/0a1b2c3d4e",
		"login_id": "jdoe",
		"reputation": map[string]any{
			"level":  "3",
			"points": json.Number("1450"),
			"title":  "Contributor",
		},
	})
	require.NoError(t, err)

	assert.Equal(t, 1837, user.GUID)
	assert.Equal(t, "0a1b2c3d4e", user.Hash)
	assert.Equal(t, "jdoe", user.LoginID)
	require.NotNil(t, user.Reputation)
	assert.Equal(t, Reputation{Level: "3", Points: 1450, Title: "Contributor"}, *user.Reputation)
}

func TestUserDisplayName(t *testing.T) {
	assert.Equal(t, "Jane", (&User{Name: "Jane", LoginID: "jdoe"}).DisplayName())
	assert.Equal(t, "jdoe", (&User{LoginID: "jdoe", Email: "j@example.com"}).DisplayName())
	assert.Equal(t, "j@example.com", (&User{Email: "j@example.com"}).DisplayName())
}

func TestNewComment(t *testing.T) {
	comment, err := NewComment(map[string]any{
		"id":           json.Number("51"),
		"value":        "Try an eggshell finish.",
		"rating_count": 2,
		"created_by":   map[string]any{"name": "Jane"},
	})
	require.NoError(t, err)

	assert.Equal(t, int64(51), comment.ID)
	assert.Equal(t, "Try an eggshell finish.", comment.Value)
	assert.Equal(t, 2, comment.RatingCount)
	assert.Equal(t, map[string]any{"created_by": map[string]any{"name": "Jane"}}, comment.Extra)
}

func TestAttributes(t *testing.T) {
	post := &Post{Hash: "fa8e6cc713", ViewCount: 795, Extra: map[string]any{"category_id": 12}}

	attrs, err := post.Attributes()
	require.NoError(t, err)

	assert.Equal(t, "fa8e6cc713", attrs["hash"])
	assert.Equal(t, 795, attrs["view_count"])
	assert.Equal(t, 12, attrs["category_id"])
	assert.NotContains(t, attrs, "extra")
	assert.NotContains(t, attrs, "Extra")
}

func TestHashFromURI(t *testing.T) {
	assert.Equal(t, "fa8e6cc713", hashFromURI("http://something/api/posts/fa8e6cc713"))
	assert.Equal(t, "", hashFromURI("http://something/api/posts/short"))
	assert.Equal(t, "", hashFromURI(""))
}
