package catalog

import (
	"context"

	"github.com/hashicorp-forge/padclient/internal/cmd/base"
	"github.com/hashicorp-forge/padclient/pkg/etherpad"
)

// definitions lists one command per catalog operation.
var definitions = []definition{
	// Groups.
	{
		op:       etherpad.OpCreateGroup,
		synopsis: "Create a new group",
		run: func(ctx context.Context, c *etherpad.Client, _ *args) (any, error) {
			return c.CreateGroup(ctx)
		},
	},
	{
		op:       etherpad.OpCreateGroupIfNotExistsFor,
		synopsis: "Map an application group id to a group, creating it if needed",
		flags: func(f *base.FlagSet, a *args) {
			stringFlag(f, &a.groupMapper, "groupMapper", "Application group id")
		},
		run: func(ctx context.Context, c *etherpad.Client, a *args) (any, error) {
			return c.CreateGroupIfNotExistsFor(ctx, a.groupMapper)
		},
	},
	{
		op:       etherpad.OpDeleteGroup,
		synopsis: "Delete a group",
		flags:    groupIDFlag,
		run: func(ctx context.Context, c *etherpad.Client, a *args) (any, error) {
			return nil, c.DeleteGroup(ctx, a.groupID)
		},
	},
	{
		op:       etherpad.OpListPads,
		synopsis: "List the pads of a group",
		flags:    groupIDFlag,
		run: func(ctx context.Context, c *etherpad.Client, a *args) (any, error) {
			return c.ListPads(ctx, a.groupID)
		},
	},
	{
		op:       etherpad.OpCreateGroupPad,
		synopsis: "Create a pad in a group",
		flags: func(f *base.FlagSet, a *args) {
			groupIDFlag(f, a)
			stringFlag(f, &a.padName, "padName", "Name of the pad inside the group")
			stringFlag(f, &a.text, "text", "Initial text")
		},
		run: func(ctx context.Context, c *etherpad.Client, a *args) (any, error) {
			return c.CreateGroupPad(ctx, a.groupID, a.padName, a.text)
		},
	},

	// Authors.
	{
		op:       etherpad.OpCreateAuthor,
		synopsis: "Create a new author",
		flags:    nameFlag,
		run: func(ctx context.Context, c *etherpad.Client, a *args) (any, error) {
			return c.CreateAuthor(ctx, a.name)
		},
	},
	{
		op:       etherpad.OpCreateAuthorIfNotExistsFor,
		synopsis: "Map an application user id to an author, creating it if needed",
		flags: func(f *base.FlagSet, a *args) {
			stringFlag(f, &a.authorMapper, "authorMapper", "Application user id")
			nameFlag(f, a)
		},
		run: func(ctx context.Context, c *etherpad.Client, a *args) (any, error) {
			return c.CreateAuthorIfNotExistsFor(ctx, a.authorMapper, a.name)
		},
	},

	// Sessions.
	{
		op:       etherpad.OpCreateSession,
		synopsis: "Create a session for an author in a group",
		flags: func(f *base.FlagSet, a *args) {
			groupIDFlag(f, a)
			authorIDFlag(f, a)
			f.Int64Var(&a.validUntil, flagName("validUntil"), 0, "Expiry as unix seconds (overrides -ttl)")
			f.DurationVar(&a.ttl, "ttl", defaultSessionTTL, "Session lifetime when -valid-until is unset")
		},
		run: func(ctx context.Context, c *etherpad.Client, a *args) (any, error) {
			return c.CreateSession(ctx, a.groupID, a.authorID, a.expiry(a.now()))
		},
	},
	{
		op:       etherpad.OpDeleteSession,
		synopsis: "Delete a session",
		flags:    sessionIDFlag,
		run: func(ctx context.Context, c *etherpad.Client, a *args) (any, error) {
			return nil, c.DeleteSession(ctx, a.sessionID)
		},
	},
	{
		op:       etherpad.OpGetSessionInfo,
		synopsis: "Show the group, author and expiry of a session",
		flags:    sessionIDFlag,
		run: func(ctx context.Context, c *etherpad.Client, a *args) (any, error) {
			return c.GetSessionInfo(ctx, a.sessionID)
		},
	},
	{
		op:       etherpad.OpListSessionsOfGroup,
		synopsis: "List the sessions of a group",
		flags:    groupIDFlag,
		run: func(ctx context.Context, c *etherpad.Client, a *args) (any, error) {
			return c.ListSessionsOfGroup(ctx, a.groupID)
		},
	},
	{
		op:       etherpad.OpListSessionsOfAuthor,
		synopsis: "List the sessions of an author",
		flags:    authorIDFlag,
		run: func(ctx context.Context, c *etherpad.Client, a *args) (any, error) {
			return c.ListSessionsOfAuthor(ctx, a.authorID)
		},
	},

	// Pad content.
	{
		op:       etherpad.OpGetText,
		synopsis: "Print the text of a pad",
		flags: func(f *base.FlagSet, a *args) {
			padIDFlag(f, a)
			revFlag(f, a)
		},
		run: func(ctx context.Context, c *etherpad.Client, a *args) (any, error) {
			return c.GetText(ctx, a.padID, a.revision())
		},
	},
	{
		op:       etherpad.OpGetHTML,
		synopsis: "Print the content of a pad as HTML",
		flags: func(f *base.FlagSet, a *args) {
			padIDFlag(f, a)
			revFlag(f, a)
		},
		run: func(ctx context.Context, c *etherpad.Client, a *args) (any, error) {
			return c.GetHTML(ctx, a.padID, a.revision())
		},
	},
	{
		op:       etherpad.OpSetText,
		synopsis: "Replace the text of a pad",
		flags: func(f *base.FlagSet, a *args) {
			padIDFlag(f, a)
			stringFlag(f, &a.text, "text", "New text")
		},
		run: func(ctx context.Context, c *etherpad.Client, a *args) (any, error) {
			return nil, c.SetText(ctx, a.padID, a.text)
		},
	},
	{
		op:       etherpad.OpSetHTML,
		synopsis: "Replace the content of a pad with HTML",
		flags: func(f *base.FlagSet, a *args) {
			padIDFlag(f, a)
			stringFlag(f, &a.html, "html", "New content as HTML")
		},
		run: func(ctx context.Context, c *etherpad.Client, a *args) (any, error) {
			return nil, c.SetHTML(ctx, a.padID, a.html)
		},
	},

	// Pads.
	{
		op:       etherpad.OpCreatePad,
		synopsis: "Create a public pad",
		flags: func(f *base.FlagSet, a *args) {
			padIDFlag(f, a)
			stringFlag(f, &a.text, "text", "Initial text")
		},
		run: func(ctx context.Context, c *etherpad.Client, a *args) (any, error) {
			return nil, c.CreatePad(ctx, a.padID, a.text)
		},
	},
	{
		op:       etherpad.OpGetRevisionsCount,
		synopsis: "Print the number of revisions of a pad",
		flags:    padIDFlag,
		run: func(ctx context.Context, c *etherpad.Client, a *args) (any, error) {
			return c.GetRevisionsCount(ctx, a.padID)
		},
	},
	{
		op:       etherpad.OpDeletePad,
		synopsis: "Delete a pad",
		flags:    padIDFlag,
		run: func(ctx context.Context, c *etherpad.Client, a *args) (any, error) {
			return nil, c.DeletePad(ctx, a.padID)
		},
	},
	{
		op:       etherpad.OpGetReadOnlyID,
		synopsis: "Print the read-only id of a pad",
		flags:    padIDFlag,
		run: func(ctx context.Context, c *etherpad.Client, a *args) (any, error) {
			return c.GetReadOnlyID(ctx, a.padID)
		},
	},
	{
		op:       etherpad.OpSetPublicStatus,
		synopsis: "Make a group pad public or private",
		flags: func(f *base.FlagSet, a *args) {
			padIDFlag(f, a)
			f.BoolVar(&a.public, "public", false, "Whether the pad is public")
		},
		run: func(ctx context.Context, c *etherpad.Client, a *args) (any, error) {
			return nil, c.SetPublicStatus(ctx, a.padID, a.public)
		},
	},
	{
		op:       etherpad.OpGetPublicStatus,
		synopsis: "Show whether a group pad is public",
		flags:    padIDFlag,
		run: func(ctx context.Context, c *etherpad.Client, a *args) (any, error) {
			return c.GetPublicStatus(ctx, a.padID)
		},
	},
	{
		op:       etherpad.OpSetPassword,
		synopsis: "Protect a group pad with a password",
		flags: func(f *base.FlagSet, a *args) {
			padIDFlag(f, a)
			stringFlag(f, &a.password, "password", "New password")
		},
		run: func(ctx context.Context, c *etherpad.Client, a *args) (any, error) {
			return nil, c.SetPassword(ctx, a.padID, a.password)
		},
	},
	{
		op:       etherpad.OpIsPasswordProtected,
		synopsis: "Show whether a group pad has a password",
		flags:    padIDFlag,
		run: func(ctx context.Context, c *etherpad.Client, a *args) (any, error) {
			return c.IsPasswordProtected(ctx, a.padID)
		},
	},
}

func groupIDFlag(f *base.FlagSet, a *args) {
	stringFlag(f, &a.groupID, "groupID", "Group id, e.g. g.s8oes9dhwrvt0zif")
}

func authorIDFlag(f *base.FlagSet, a *args) {
	stringFlag(f, &a.authorID, "authorID", "Author id, e.g. a.s8oes9dhwrvt0zif")
}

func sessionIDFlag(f *base.FlagSet, a *args) {
	stringFlag(f, &a.sessionID, "sessionID", "Session id, e.g. s.s8oes9dhwrvt0zif")
}

func padIDFlag(f *base.FlagSet, a *args) {
	stringFlag(f, &a.padID, "padID", "Pad id; group pads are named <groupID>$<padName>")
}

func nameFlag(f *base.FlagSet, a *args) {
	stringFlag(f, &a.name, "name", "Display name of the author")
}
