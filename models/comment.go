package models

import "fmt"

// Comment represents a comment on a post
type Comment struct {
	ID          int64  `mapstructure:"id"`
	Value       string `mapstructure:"value"`
	Created     string `mapstructure:"created"`
	LastEdited  string `mapstructure:"last_edited"`
	RatingCount int    `mapstructure:"rating_count"`
	Status      int    `mapstructure:"status"`

	Extra map[string]any `mapstructure:"-"`
}

// NewComment creates a comment from a normalized payload
func NewComment(data map[string]any) (*Comment, error) {
	c := &Comment{}
	if err := decode(data, c, &c.Extra); err != nil {
		return nil, fmt.Errorf("failed to decode comment: %w", err)
	}
	return c, nil
}

// Attributes returns the comment as a flat attribute map
func (c *Comment) Attributes() (map[string]any, error) {
	return attributes(c, c.Extra)
}
