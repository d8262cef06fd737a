package rightnow

import (
	"context"

	"github.com/s0up4200/rightnow/models"
)

// API defines the RightNow Community operations implemented by Client
type API interface {
	// Request performs an arbitrary signed action and returns the parsed JSON
	Request(ctx context.Context, action string, params Params, opts ...CallOption) (any, error)

	// Search runs a search query
	Search(ctx context.Context, params Params, opts ...CallOption) ([]*models.Post, error)

	// PostGet and PostGetMany retrieve full post details
	PostGet(ctx context.Context, post PostRef, opts ...CallOption) (*models.Post, error)
	PostGetMany(ctx context.Context, posts []PostRef, opts ...CallOption) ([]*models.Post, error)

	// UserGet and UserGetMany retrieve full user details
	UserGet(ctx context.Context, user UserRef, opts ...CallOption) (*models.User, error)
	UserGetMany(ctx context.Context, users []UserRef, opts ...CallOption) ([]*models.User, error)

	// Comment operations
	CommentList(ctx context.Context, postHash string, opts ...CallOption) ([]*models.Comment, error)
	CommentAdd(ctx context.Context, postHash, body string, opts ...CallOption) (*models.Comment, error)
	CommentUpdate(ctx context.Context, commentID int64, body string, opts ...CallOption) (*models.Comment, error)
	CommentDelete(ctx context.Context, commentID int64, opts ...CallOption) (any, error)
}

var _ API = (*Client)(nil)
