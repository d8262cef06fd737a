package models

import "fmt"

// User represents a community member
type User struct {
	GUID                              int         `mapstructure:"guid"`
	Hash                              string      `mapstructure:"hash"`
	WebURI                            string      `mapstructure:"web_uri"`
	APIURI                            string      `mapstructure:"api_uri"`
	LoginID                           string      `mapstructure:"login_id"`
	Name                              string      `mapstructure:"name"`
	Avatar                            string      `mapstructure:"avatar"`
	Email                             string      `mapstructure:"email"`
	Type                              int         `mapstructure:"type"`
	Status                            int         `mapstructure:"status"`
	Created                           string      `mapstructure:"created"`
	LastLogin                         string      `mapstructure:"last_login"`
	BuddyCount                        int         `mapstructure:"buddy_count"`
	GroupCount                        int         `mapstructure:"group_count"`
	HiveCount                         int         `mapstructure:"hive_count"`
	PostCount                         int         `mapstructure:"post_count"`
	CommentCount                      int         `mapstructure:"comment_count"`
	CommentsSelectedAsBestAnswerCount int         `mapstructure:"comments_selected_as_best_answer_count"`
	Reputation                        *Reputation `mapstructure:"reputation"`

	Extra map[string]any `mapstructure:"-"`
}

// Reputation holds a user's standing in the community
type Reputation struct {
	Level  string `mapstructure:"level"`
	Points int    `mapstructure:"points"`
	Title  string `mapstructure:"title"`
}

// NewUser creates an empty user
func NewUser() *User {
	return &User{}
}

// Key returns the user hash
func (u *User) Key() string {
	return u.Hash
}

// SetKey sets the user hash
func (u *User) SetKey(hash string) {
	u.Hash = hash
}

// Merge overwrites the user's attributes with those present in data
func (u *User) Merge(data map[string]any) error {
	if err := decode(withURIAlias(data), u, &u.Extra); err != nil {
		return fmt.Errorf("failed to decode user: %w", err)
	}
	if u.Hash == "" {
		u.Hash = hashFromURI(u.APIURI)
	}
	return nil
}

// DisplayName returns the best available name for the user
func (u *User) DisplayName() string {
	if u.Name != "" {
		return u.Name
	}
	if u.LoginID != "" {
		return u.LoginID
	}
	return u.Email
}

// Attributes returns the user as a flat attribute map
func (u *User) Attributes() (map[string]any, error) {
	return attributes(u, u.Extra)
}
