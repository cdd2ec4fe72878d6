package etherpad

import "context"

// CreateAuthor creates a new author with a display name.
func (c *Client) CreateAuthor(ctx context.Context, name string) (AuthorID, error) {
	var out AuthorID
	err := c.callInto(ctx, OpCreateAuthor, Args{
		"name": name,
	}, MethodPOST, &out)
	return out, err
}

// CreateAuthorIfNotExistsFor maps an application user id to a server
// author, creating the author on first use.
func (c *Client) CreateAuthorIfNotExistsFor(ctx context.Context, authorMapper, name string) (AuthorID, error) {
	if err := required(OpCreateAuthorIfNotExistsFor, param{"authorMapper", authorMapper}); err != nil {
		return AuthorID{}, err
	}

	var out AuthorID
	err := c.callInto(ctx, OpCreateAuthorIfNotExistsFor, Args{
		"authorMapper": authorMapper,
		"name":         name,
	}, MethodPOST, &out)
	return out, err
}
