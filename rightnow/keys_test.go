package rightnow

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnderscore(t *testing.T) {
	cases := map[string]string{
		"viewCount":     "view_count",
		"ViewCount":     "view_count",
		"hash":          "hash",
		"UserHash":      "user_hash",
		"webUri":        "web_uri",
		"APIUri":        "api_uri",
		"lastLoginDate": "last_login_date",
		"post2Comments": "post2_comments",
		"already_snake": "already_snake",
		"dashed-key":    "dashed_key",
		"":              "",
	}

	for input, want := range cases {
		assert.Equal(t, want, Underscore(input), "Underscore(%q)", input)
	}
}

func TestNormalizeKeys(t *testing.T) {
	in := map[string]any{
		"post": map[string]any{
			"viewCount": json.Number("795"),
			"createdBy": map[string]any{"loginId": "bob"},
			"tags":      []any{map[string]any{"tagName": "a"}, "plain"},
		},
	}

	want := map[string]any{
		"post": map[string]any{
			"view_count": json.Number("795"),
			"created_by": map[string]any{"login_id": "bob"},
			"tags":       []any{map[string]any{"tag_name": "a"}, "plain"},
		},
	}

	assert.Equal(t, want, NormalizeKeys(in))
	// Input is left untouched.
	assert.Contains(t, in["post"], "viewCount")
}

func TestNormalizeKeysScalars(t *testing.T) {
	assert.Nil(t, NormalizeKeys(nil))
	assert.Equal(t, "text", NormalizeKeys("text"))
	assert.Equal(t, json.Number("1"), NormalizeKeys(json.Number("1")))
}
