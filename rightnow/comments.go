package rightnow

import (
	"context"
	"fmt"
	"net/http"
	"slices"

	"github.com/s0up4200/rightnow/models"
)

// CommentList retrieves the comments of a post.
func (c *Client) CommentList(ctx context.Context, postHash string, opts ...CallOption) ([]*models.Comment, error) {
	results, err := c.Request(ctx, "CommentList", Params{"postHash": postHash}, opts...)
	if err != nil {
		return nil, err
	}

	raw, err := requireKey("CommentList", "comments", results)
	if err != nil {
		return nil, err
	}
	items, ok := NormalizeKeys(raw).([]any)
	if !ok {
		return nil, fmt.Errorf("%w: CommentList comments is %T, want an array", ErrUnexpectedResponse, raw)
	}

	comments := make([]*models.Comment, 0, len(items))
	for i, item := range items {
		data, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: comment %d is %T, want an object", ErrUnexpectedResponse, i, item)
		}
		comment, err := models.NewComment(data)
		if err != nil {
			return nil, err
		}
		comments = append(comments, comment)
	}
	return comments, nil
}

// CommentAdd adds a comment to a post and returns the created comment.
func (c *Client) CommentAdd(ctx context.Context, postHash, body string, opts ...CallOption) (*models.Comment, error) {
	payload, err := CommentPayload(body, PayloadCreate)
	if err != nil {
		return nil, fmt.Errorf("failed to build comment payload: %w", err)
	}
	params := Params{"postHash": postHash, "payload": payload}
	return c.commentMutation(ctx, "CommentAdd", params, opts)
}

// CommentUpdate replaces the body of a comment and returns the updated comment.
func (c *Client) CommentUpdate(ctx context.Context, commentID int64, body string, opts ...CallOption) (*models.Comment, error) {
	payload, err := CommentPayload(body, PayloadUpdate)
	if err != nil {
		return nil, fmt.Errorf("failed to build comment payload: %w", err)
	}
	params := Params{"commentId": commentID, "payload": payload}
	return c.commentMutation(ctx, "CommentUpdate", params, opts)
}

// CommentDelete deletes a comment and returns the raw parsed response.
func (c *Client) CommentDelete(ctx context.Context, commentID int64, opts ...CallOption) (any, error) {
	return c.Request(ctx, "CommentDelete", Params{"commentId": commentID}, opts...)
}

func (c *Client) commentMutation(ctx context.Context, action string, params Params, opts []CallOption) (*models.Comment, error) {
	results, err := c.Request(ctx, action, params, slices.Concat(opts, []CallOption{Verb(http.MethodPost)})...)
	if err != nil {
		return nil, err
	}

	raw, err := requireKey(action, "comment", results)
	if err != nil {
		return nil, err
	}
	data, ok := NormalizeKeys(raw).(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: %s comment is %T, want an object", ErrUnexpectedResponse, action, raw)
	}
	return models.NewComment(data)
}

// requireKey returns results[key], failing with a MissingFieldError when the
// key is absent, null or false.
func requireKey(action, key string, results any) (any, error) {
	obj, ok := results.(map[string]any)
	if !ok {
		return nil, &MissingFieldError{Action: action, Key: key, Response: results}
	}
	value, ok := obj[key]
	if !ok || value == nil || value == false {
		return nil, &MissingFieldError{Action: action, Key: key, Response: results}
	}
	return value, nil
}
