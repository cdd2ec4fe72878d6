package etherpad

import "context"

// Pads can belong to a group. Group pads are named "<groupID>$<padName>" and
// are only reachable through a session for that group.

// CreateGroup creates a new group.
func (c *Client) CreateGroup(ctx context.Context) (GroupID, error) {
	var out GroupID
	err := c.callInto(ctx, OpCreateGroup, Args{}, MethodPOST, &out)
	return out, err
}

// CreateGroupIfNotExistsFor maps an application group id to a server group,
// creating the group on first use.
func (c *Client) CreateGroupIfNotExistsFor(ctx context.Context, groupMapper string) (GroupID, error) {
	if err := required(OpCreateGroupIfNotExistsFor, param{"groupMapper", groupMapper}); err != nil {
		return GroupID{}, err
	}

	var out GroupID
	err := c.callInto(ctx, OpCreateGroupIfNotExistsFor, Args{
		"groupMapper": groupMapper,
	}, MethodPOST, &out)
	return out, err
}

// DeleteGroup deletes a group and its pads.
func (c *Client) DeleteGroup(ctx context.Context, groupID string) error {
	if err := required(OpDeleteGroup, param{"groupID", groupID}); err != nil {
		return err
	}

	_, err := c.call(ctx, OpDeleteGroup, Args{
		"groupID": groupID,
	}, MethodPOST)
	return err
}

// ListPads returns all pads of a group.
func (c *Client) ListPads(ctx context.Context, groupID string) (PadIDs, error) {
	if err := required(OpListPads, param{"groupID", groupID}); err != nil {
		return PadIDs{}, err
	}

	var out PadIDs
	err := c.callInto(ctx, OpListPads, Args{
		"groupID": groupID,
	}, MethodGET, &out)
	return out, err
}

// CreateGroupPad creates a pad inside a group.
func (c *Client) CreateGroupPad(ctx context.Context, groupID, padName, text string) (PadID, error) {
	if err := required(OpCreateGroupPad,
		param{"groupID", groupID},
		param{"padName", padName},
	); err != nil {
		return PadID{}, err
	}

	var out PadID
	err := c.callInto(ctx, OpCreateGroupPad, Args{
		"groupID": groupID,
		"padName": padName,
		"text":    text,
	}, MethodPOST, &out)
	return out, err
}
