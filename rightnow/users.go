package rightnow

import (
	"context"

	"github.com/s0up4200/rightnow/models"
)

// UserRef refers to a user by hash or by an existing *models.User.
type UserRef = Ref[*models.User]

// UserHash refers to a user by its hash.
func UserHash(hash string) UserRef {
	return ByID[*models.User](hash)
}

// UserEntity refers to an existing user, which UserGet updates in place.
func UserEntity(user *models.User) UserRef {
	return ByEntity(user)
}

var userGet = BatchSpec[*models.User]{
	Action:     "UserGet",
	IDParam:    "UserHash",
	PayloadKey: "user",
	New:        models.NewUser,
}

// UserGet retrieves full details for one user.
func (c *Client) UserGet(ctx context.Context, user UserRef, opts ...CallOption) (*models.User, error) {
	users, err := FetchMany(ctx, c, userGet, []UserRef{user}, opts...)
	if err != nil {
		return nil, err
	}
	return users[0], nil
}

// UserGetMany retrieves full details for several users in parallel, one
// result per input in input order.
func (c *Client) UserGetMany(ctx context.Context, users []UserRef, opts ...CallOption) ([]*models.User, error) {
	return FetchMany(ctx, c, userGet, users, opts...)
}
