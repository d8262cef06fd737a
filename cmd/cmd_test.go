package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/s0up4200/rightnow/config"
	"github.com/s0up4200/rightnow/filter"
	"github.com/s0up4200/rightnow/models"
	"github.com/s0up4200/rightnow/rightnow"
)

// fakeAPI records calls and returns canned results
type fakeAPI struct {
	rightnow.API

	params  rightnow.Params
	action  string
	hashes  []string
	posts   []*models.Post
	users   []*models.User
	request any
}

func (f *fakeAPI) Search(ctx context.Context, params rightnow.Params, opts ...rightnow.CallOption) ([]*models.Post, error) {
	f.params = params
	return f.posts, nil
}

func (f *fakeAPI) PostGetMany(ctx context.Context, posts []rightnow.PostRef, opts ...rightnow.CallOption) ([]*models.Post, error) {
	for _, ref := range posts {
		f.hashes = append(f.hashes, ref.ID())
	}
	return f.posts, nil
}

func (f *fakeAPI) UserGetMany(ctx context.Context, users []rightnow.UserRef, opts ...rightnow.CallOption) ([]*models.User, error) {
	for _, ref := range users {
		f.hashes = append(f.hashes, ref.ID())
	}
	return f.users, nil
}

func (f *fakeAPI) Request(ctx context.Context, action string, params rightnow.Params, opts ...rightnow.CallOption) (any, error) {
	f.action = action
	f.params = params
	return f.request, nil
}

func setupCommandTest(t *testing.T, api *fakeAPI, presets map[string]string) (*cobra.Command, *bytes.Buffer) {
	t.Helper()

	prevClient, prevFilters, prevLogger := client, filters, logger
	t.Cleanup(func() {
		client, filters, logger = prevClient, prevFilters, prevLogger
		filterExpr, preset, asUser = "", "", ""
		searchTerm, searchSort, searchPage, searchLimit = "", "", 0, 0
		requestPost = false
	})

	client = api
	logger = zerolog.Nop()
	filters = filter.NewManager()
	require.NoError(t, filters.RegisterFilters(presets))

	var out bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&out)
	cmd.SetContext(context.Background())
	return cmd, &out
}

func decodeOutput(t *testing.T, out *bytes.Buffer) []map[string]any {
	t.Helper()

	var result []map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &result))
	return result
}

func TestRunSearch(t *testing.T) {
	api := &fakeAPI{posts: []*models.Post{
		{Hash: "fa8e6cc713", Title: "White paint", ViewCount: 795},
		{Hash: "fa8e6cb714", Title: "Whiteboard", ViewCount: 42},
	}}
	cmd, out := setupCommandTest(t, api, nil)

	searchTerm = "white"
	searchPage = 2
	filterExpr = "view_count > 100"

	require.NoError(t, runSearch(cmd, []string{"sort=az"}))

	assert.Equal(t, rightnow.Params{"term": "white", "page": 2, "sort": "az"}, api.params)

	result := decodeOutput(t, out)
	require.Len(t, result, 1)
	assert.Equal(t, "fa8e6cc713", result[0]["hash"])
	assert.Equal(t, float64(795), result[0]["view_count"])
}

func TestRunSearchPreset(t *testing.T) {
	api := &fakeAPI{posts: []*models.Post{
		{Hash: "fa8e6cc713", CommentCount: 0},
		{Hash: "fa8e6cb714", CommentCount: 4},
	}}
	cmd, out := setupCommandTest(t, api, map[string]string{"unanswered": "comment_count == 0"})

	preset = "unanswered"
	require.NoError(t, runSearch(cmd, nil))

	result := decodeOutput(t, out)
	require.Len(t, result, 1)
	assert.Equal(t, "fa8e6cc713", result[0]["hash"])
}

func TestRunPostGetKeepsNilEntries(t *testing.T) {
	api := &fakeAPI{posts: []*models.Post{{Hash: "fa8e6cc713"}, nil}}
	cmd, out := setupCommandTest(t, api, nil)

	require.NoError(t, runPostGet(cmd, []string{"fa8e6cc713", "fa8e6cb714"}))

	assert.Equal(t, []string{"fa8e6cc713", "fa8e6cb714"}, api.hashes)
	result := decodeOutput(t, out)
	require.Len(t, result, 2)
	assert.Equal(t, "fa8e6cc713", result[0]["hash"])
	assert.Nil(t, result[1])
}

func TestRunPostGetFilterSkipsNil(t *testing.T) {
	api := &fakeAPI{posts: []*models.Post{nil, {Hash: "fa8e6cb714", ViewCount: 10}}}
	cmd, out := setupCommandTest(t, api, nil)

	filterExpr = "view_count >= 10"
	require.NoError(t, runPostGet(cmd, []string{"fa8e6cc713", "fa8e6cb714"}))

	result := decodeOutput(t, out)
	require.Len(t, result, 1)
	assert.Equal(t, "fa8e6cb714", result[0]["hash"])
}

func TestRunUserGet(t *testing.T) {
	api := &fakeAPI{users: []*models.User{{Hash: "0a1b2c3d4e", Name: "Jane Doe"}}}
	cmd, out := setupCommandTest(t, api, nil)

	require.NoError(t, runUserGet(cmd, []string{"0a1b2c3d4e"}))

	result := decodeOutput(t, out)
	require.Len(t, result, 1)
	assert.Equal(t, "Jane Doe", result[0]["name"])
}

func TestRunRequest(t *testing.T) {
	api := &fakeAPI{request: map[string]any{"ok": true}}
	cmd, out := setupCommandTest(t, api, nil)

	require.NoError(t, runRequest(cmd, []string{"PostGet", "postHash=fa8e6cc713"}))

	assert.Equal(t, "PostGet", api.action)
	assert.Equal(t, rightnow.Params{"postHash": "fa8e6cc713"}, api.params)
	assert.JSONEq(t, `{"ok": true}`, out.String())
}

func TestSelectFilter(t *testing.T) {
	_, _ = setupCommandTest(t, &fakeAPI{}, map[string]string{"popular": "view_count > 500"})

	f, err := selectFilter("", "")
	require.NoError(t, err)
	assert.Nil(t, f)

	f, err = selectFilter("", "popular")
	require.NoError(t, err)
	assert.Equal(t, "view_count > 500", f.Expression())

	_, err = selectFilter("", "missing")
	assert.EqualError(t, err, "preset 'missing' not found in config")

	_, err = selectFilter("true", "popular")
	assert.EqualError(t, err, "--filter and --preset are mutually exclusive")
}

func TestParseParams(t *testing.T) {
	params, err := parseParams([]string{"term=white paint", "filter=a=b"})
	require.NoError(t, err)
	assert.Equal(t, rightnow.Params{"term": "white paint", "filter": "a=b"}, params)

	_, err = parseParams([]string{"novalue"})
	assert.EqualError(t, err, `invalid parameter "novalue", expected key=value`)

	_, err = parseParams([]string{"=value"})
	assert.Error(t, err)
}

func TestCallOptions(t *testing.T) {
	asUser = ""
	assert.Empty(t, callOptions())

	asUser = "toto"
	t.Cleanup(func() { asUser = "" })
	assert.Len(t, callOptions(), 1)
}

func TestCurrentVersion(t *testing.T) {
	v, err := currentVersion("v1.2.3")
	require.NoError(t, err)
	assert.Equal(t, "1.2.3", v.String())

	_, err = currentVersion("dev")
	assert.EqualError(t, err, `cannot update a development build (version "dev")`)
}

func TestSetupLogger(t *testing.T) {
	prev := zerolog.GlobalLevel()
	t.Cleanup(func() { zerolog.SetGlobalLevel(prev) })

	setupLogger(config.LoggingConfig{Level: "warn", Format: "json"})
	assert.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())

	setupLogger(config.LoggingConfig{Level: "bogus", Format: "console"})
	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
}

func TestVerbFlagForcesPost(t *testing.T) {
	var verb string
	server := newVerbRecorder(t, &verb)

	c, err := rightnow.NewClient(server)
	require.NoError(t, err)

	cmd, _ := setupCommandTest(t, &fakeAPI{}, nil)
	client = c
	requestPost = true

	require.NoError(t, runRequest(cmd, []string{"CommentDelete", "commentId=7"}))
	assert.Equal(t, http.MethodPost, verb)
}
