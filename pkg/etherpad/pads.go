package etherpad

import "context"

// GetText returns the text of a pad. A nil rev selects the latest revision.
func (c *Client) GetText(ctx context.Context, padID string, rev *int) (Text, error) {
	if err := required(OpGetText, param{"padID", padID}); err != nil {
		return Text{}, err
	}

	var out Text
	err := c.callInto(ctx, OpGetText, withRevision(Args{
		"padID": padID,
	}, rev), MethodGET, &out)
	return out, err
}

// GetHTML returns the content of a pad as HTML. A nil rev selects the latest
// revision.
func (c *Client) GetHTML(ctx context.Context, padID string, rev *int) (HTML, error) {
	if err := required(OpGetHTML, param{"padID", padID}); err != nil {
		return HTML{}, err
	}

	var out HTML
	err := c.callInto(ctx, OpGetHTML, withRevision(Args{
		"padID": padID,
	}, rev), MethodGET, &out)
	return out, err
}

// SetText replaces the text of a pad.
func (c *Client) SetText(ctx context.Context, padID, text string) error {
	if err := required(OpSetText, param{"padID", padID}); err != nil {
		return err
	}

	_, err := c.call(ctx, OpSetText, Args{
		"padID": padID,
		"text":  text,
	}, MethodPOST)
	return err
}

// SetHTML replaces the content of a pad with the given HTML.
func (c *Client) SetHTML(ctx context.Context, padID, html string) error {
	if err := required(OpSetHTML, param{"padID", padID}); err != nil {
		return err
	}

	_, err := c.call(ctx, OpSetHTML, Args{
		"padID": padID,
		"html":  html,
	}, MethodPOST)
	return err
}

// CreatePad creates a public pad with initial text. Pad ids of public pads
// must not contain "$".
func (c *Client) CreatePad(ctx context.Context, padID, text string) error {
	if err := required(OpCreatePad, param{"padID", padID}); err != nil {
		return err
	}

	_, err := c.call(ctx, OpCreatePad, Args{
		"padID": padID,
		"text":  text,
	}, MethodPOST)
	return err
}

// GetRevisionsCount returns the number of revisions of a pad.
func (c *Client) GetRevisionsCount(ctx context.Context, padID string) (RevisionsCount, error) {
	if err := required(OpGetRevisionsCount, param{"padID", padID}); err != nil {
		return RevisionsCount{}, err
	}

	var out RevisionsCount
	err := c.callInto(ctx, OpGetRevisionsCount, Args{
		"padID": padID,
	}, MethodGET, &out)
	return out, err
}

// DeletePad deletes a pad.
func (c *Client) DeletePad(ctx context.Context, padID string) error {
	if err := required(OpDeletePad, param{"padID", padID}); err != nil {
		return err
	}

	_, err := c.call(ctx, OpDeletePad, Args{
		"padID": padID,
	}, MethodPOST)
	return err
}

// GetReadOnlyID returns the id of the read-only view of a pad.
func (c *Client) GetReadOnlyID(ctx context.Context, padID string) (ReadOnlyID, error) {
	if err := required(OpGetReadOnlyID, param{"padID", padID}); err != nil {
		return ReadOnlyID{}, err
	}

	var out ReadOnlyID
	err := c.callInto(ctx, OpGetReadOnlyID, Args{
		"padID": padID,
	}, MethodGET, &out)
	return out, err
}

// SetPublicStatus sets whether a group pad is reachable without a session.
func (c *Client) SetPublicStatus(ctx context.Context, padID string, publicStatus bool) error {
	if err := required(OpSetPublicStatus, param{"padID", padID}); err != nil {
		return err
	}

	_, err := c.call(ctx, OpSetPublicStatus, Args{
		"padID":        padID,
		"publicStatus": boolParam(publicStatus),
	}, MethodPOST)
	return err
}

// GetPublicStatus reports whether a group pad is public.
func (c *Client) GetPublicStatus(ctx context.Context, padID string) (PublicStatus, error) {
	if err := required(OpGetPublicStatus, param{"padID", padID}); err != nil {
		return PublicStatus{}, err
	}

	var out PublicStatus
	err := c.callInto(ctx, OpGetPublicStatus, Args{
		"padID": padID,
	}, MethodGET, &out)
	return out, err
}

// SetPassword protects a group pad with a password.
func (c *Client) SetPassword(ctx context.Context, padID, password string) error {
	if err := required(OpSetPassword, param{"padID", padID}); err != nil {
		return err
	}

	_, err := c.call(ctx, OpSetPassword, Args{
		"padID":    padID,
		"password": password,
	}, MethodPOST)
	return err
}

// IsPasswordProtected reports whether a group pad has a password.
func (c *Client) IsPasswordProtected(ctx context.Context, padID string) (PasswordProtection, error) {
	if err := required(OpIsPasswordProtected, param{"padID", padID}); err != nil {
		return PasswordProtection{}, err
	}

	var out PasswordProtection
	err := c.callInto(ctx, OpIsPasswordProtected, Args{
		"padID": padID,
	}, MethodGET, &out)
	return out, err
}
