package etherpad

import (
	"context"
	"time"
)

// Sessions tie an author to a group until a point in time. The session id
// is handed to the browser as the "sessionID" cookie.

// CreateSession creates a session valid until the given time. The server
// receives it as unix seconds.
func (c *Client) CreateSession(ctx context.Context, groupID, authorID string, validUntil time.Time) (SessionID, error) {
	if err := required(OpCreateSession,
		param{"groupID", groupID},
		param{"authorID", authorID},
	); err != nil {
		return SessionID{}, err
	}

	var out SessionID
	err := c.callInto(ctx, OpCreateSession, Args{
		"groupID":    groupID,
		"authorID":   authorID,
		"validUntil": validUntil.Unix(),
	}, MethodPOST, &out)
	return out, err
}

// DeleteSession deletes a session.
func (c *Client) DeleteSession(ctx context.Context, sessionID string) error {
	if err := required(OpDeleteSession, param{"sessionID", sessionID}); err != nil {
		return err
	}

	_, err := c.call(ctx, OpDeleteSession, Args{
		"sessionID": sessionID,
	}, MethodPOST)
	return err
}

// GetSessionInfo returns the group, author and expiry of a session.
func (c *Client) GetSessionInfo(ctx context.Context, sessionID string) (SessionInfo, error) {
	if err := required(OpGetSessionInfo, param{"sessionID", sessionID}); err != nil {
		return SessionInfo{}, err
	}

	var out SessionInfo
	err := c.callInto(ctx, OpGetSessionInfo, Args{
		"sessionID": sessionID,
	}, MethodGET, &out)
	return out, err
}

// ListSessionsOfGroup returns all sessions of a group.
func (c *Client) ListSessionsOfGroup(ctx context.Context, groupID string) (Sessions, error) {
	if err := required(OpListSessionsOfGroup, param{"groupID", groupID}); err != nil {
		return nil, err
	}

	var out Sessions
	err := c.callInto(ctx, OpListSessionsOfGroup, Args{
		"groupID": groupID,
	}, MethodGET, &out)
	return out, err
}

// ListSessionsOfAuthor returns all sessions of an author.
func (c *Client) ListSessionsOfAuthor(ctx context.Context, authorID string) (Sessions, error) {
	if err := required(OpListSessionsOfAuthor, param{"authorID", authorID}); err != nil {
		return nil, err
	}

	var out Sessions
	err := c.callInto(ctx, OpListSessionsOfAuthor, Args{
		"authorID": authorID,
	}, MethodGET, &out)
	return out, err
}
