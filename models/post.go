package models

import "fmt"

// Post represents a community post
type Post struct {
	Hash         string `mapstructure:"hash"`
	APIURI       string `mapstructure:"api_uri"`
	WebURI       string `mapstructure:"web_uri"`
	Title        string `mapstructure:"title"`
	Body         string `mapstructure:"body"`
	Created      string `mapstructure:"created"`
	LastEdited   string `mapstructure:"last_edited"`
	ViewCount    int    `mapstructure:"view_count"`
	CommentCount int    `mapstructure:"comment_count"`
	RatingCount  int    `mapstructure:"rating_count"`

	Extra map[string]any `mapstructure:"-"`
}

// NewPost creates an empty post
func NewPost() *Post {
	return &Post{}
}

// Key returns the post hash
func (p *Post) Key() string {
	return p.Hash
}

// SetKey sets the post hash
func (p *Post) SetKey(hash string) {
	p.Hash = hash
}

// Merge overwrites the post's attributes with those present in data
func (p *Post) Merge(data map[string]any) error {
	if err := decode(withURIAlias(data), p, &p.Extra); err != nil {
		return fmt.Errorf("failed to decode post: %w", err)
	}
	if p.Hash == "" {
		p.Hash = hashFromURI(p.APIURI)
	}
	return nil
}

// Attributes returns the post as a flat attribute map
func (p *Post) Attributes() (map[string]any, error) {
	return attributes(p, p.Extra)
}
