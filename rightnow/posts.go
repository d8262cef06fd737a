package rightnow

import (
	"context"

	"github.com/s0up4200/rightnow/models"
)

// PostRef refers to a post by hash or by an existing *models.Post.
type PostRef = Ref[*models.Post]

// PostHash refers to a post by its hash.
func PostHash(hash string) PostRef {
	return ByID[*models.Post](hash)
}

// PostEntity refers to an existing post, which PostGet updates in place.
func PostEntity(post *models.Post) PostRef {
	return ByEntity(post)
}

var postGet = BatchSpec[*models.Post]{
	Action:     "PostGet",
	IDParam:    "postHash",
	PayloadKey: "post",
	New:        models.NewPost,
}

// PostGet retrieves full details for one post. It returns nil without error
// when the response carries no post.
func (c *Client) PostGet(ctx context.Context, post PostRef, opts ...CallOption) (*models.Post, error) {
	posts, err := FetchMany(ctx, c, postGet, []PostRef{post}, opts...)
	if err != nil {
		return nil, err
	}
	return posts[0], nil
}

// PostGetMany retrieves full details for several posts in parallel. The
// result has one entry per input, in input order; entries are nil for posts
// the API returned nothing for.
func (c *Client) PostGetMany(ctx context.Context, posts []PostRef, opts ...CallOption) ([]*models.Post, error) {
	return FetchMany(ctx, c, postGet, posts, opts...)
}
