package rightnow

import (
	"context"
	"fmt"
	"maps"

	"github.com/spf13/cast"

	"github.com/s0up4200/rightnow/models"
)

const (
	defaultSearchLimit   = 20
	defaultSearchObjects = "Posts"
)

// Search sends a Search query and returns the matching posts. Posts returned
// by a search carry only a subset of their fields.
//
// Recognized params besides those forwarded as is: limit (default 20),
// objects (default "Posts") and page, translated to start=(page-1)*limit+1.
func (c *Client) Search(ctx context.Context, params Params, opts ...CallOption) ([]*models.Post, error) {
	query, err := searchParams(params)
	if err != nil {
		return nil, err
	}

	results, err := c.Request(ctx, "Search", query, opts...)
	if err != nil {
		return nil, err
	}

	items, ok := results.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: Search returned %T, want an array", ErrUnexpectedResponse, results)
	}

	posts := make([]*models.Post, 0, len(items))
	for i, item := range items {
		data, ok := NormalizeKeys(item).(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: Search result %d is %T, want an object", ErrUnexpectedResponse, i, item)
		}
		post := models.NewPost()
		if err := post.Merge(data); err != nil {
			return nil, fmt.Errorf("search result %d: %w", i, err)
		}
		posts = append(posts, post)
	}

	c.logger.Debug().Int("count", len(posts)).Msg("Retrieved search results")
	return posts, nil
}

// searchParams applies Search defaults and converts page into start.
func searchParams(params Params) (Params, error) {
	query := maps.Clone(params)
	if query == nil {
		query = Params{}
	}

	if _, ok := query["limit"]; !ok {
		query["limit"] = defaultSearchLimit
	}
	if _, ok := query["objects"]; !ok {
		query["objects"] = defaultSearchObjects
	}

	page, hasPage := query["page"]
	delete(query, "page")
	if !hasPage {
		return query, nil
	}
	if _, ok := query["start"]; ok {
		return query, nil
	}

	p, err := cast.ToIntE(page)
	if err != nil {
		return nil, fmt.Errorf("invalid page %v: %w", page, err)
	}
	limit, err := cast.ToIntE(query["limit"])
	if err != nil {
		return nil, fmt.Errorf("invalid limit %v: %w", query["limit"], err)
	}
	query["start"] = (p-1)*limit + 1
	return query, nil
}
