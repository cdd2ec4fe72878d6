package etherpad

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreatePad_EndToEnd(t *testing.T) {
	fs := okServer(t, "")
	c, err := New("abc", WithBaseURL(fs.URL+"/api"))
	require.NoError(t, err)

	err = c.CreatePad(context.Background(), "mypad", "hello")
	require.NoError(t, err)

	req := fs.last(t)
	assert.Equal(t, "/api/1/createPad", req.Path)
	assert.Equal(t, map[string]any{
		"padID":  "mypad",
		"text":   "hello",
		"apikey": "abc",
	}, req.Args)
}

func TestGetText_NonexistentPad(t *testing.T) {
	fs := newFakeServer(t, func(string, map[string]any) string {
		return `{"code":1,"message":"padID does not exist"}`
	})
	c := fs.client(t)

	_, err := c.GetText(context.Background(), "missing", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidParameters)

	var e *Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, "padID does not exist", e.Message)
}

func TestGetText_OptionalRevision(t *testing.T) {
	fs := okServer(t, `{"text":"hello\n"}`)
	c := fs.client(t)

	text, err := c.GetText(context.Background(), "mypad", nil)
	require.NoError(t, err)
	assert.Equal(t, "hello\n", text.Text)
	assert.NotContains(t, fs.last(t).Args, "rev")

	_, err = c.GetText(context.Background(), "mypad", Rev(5))
	require.NoError(t, err)
	assert.Equal(t, float64(5), fs.last(t).Args["rev"])

	_, err = c.GetText(context.Background(), "mypad", Rev(0))
	require.NoError(t, err)
	assert.Equal(t, float64(0), fs.last(t).Args["rev"])
}

func TestGetHTML_OptionalRevision(t *testing.T) {
	fs := okServer(t, `{"html":"<p>hello</p>"}`)
	c := fs.client(t)

	html, err := c.GetHTML(context.Background(), "mypad", nil)
	require.NoError(t, err)
	assert.Equal(t, "<p>hello</p>", html.HTML)
	assert.NotContains(t, fs.last(t).Args, "rev")

	_, err = c.GetHTML(context.Background(), "mypad", Rev(5))
	require.NoError(t, err)
	assert.Equal(t, float64(5), fs.last(t).Args["rev"])
}

func TestSetPublicStatus_SendsStringBoolean(t *testing.T) {
	fs := okServer(t, "")
	c := fs.client(t)

	require.NoError(t, c.SetPublicStatus(context.Background(), "g.1$pad", true))
	assert.Equal(t, "true", fs.last(t).Args["publicStatus"])

	require.NoError(t, c.SetPublicStatus(context.Background(), "g.1$pad", false))
	assert.Equal(t, "false", fs.last(t).Args["publicStatus"])
}

func TestCreateSession_ValidUntilUnixSeconds(t *testing.T) {
	fs := okServer(t, `{"sessionID":"s.1"}`)
	c := fs.client(t)

	until := time.Unix(1893456000, 0)
	s, err := c.CreateSession(context.Background(), "g.1", "a.1", until)
	require.NoError(t, err)
	assert.Equal(t, "s.1", s.SessionID)
	assert.Equal(t, float64(1893456000), fs.last(t).Args["validUntil"])
}

func TestListSessions_NilEntries(t *testing.T) {
	fs := okServer(t, `{"s.1":{"groupID":"g.1","authorID":"a.1","validUntil":1893456000},"s.2":null}`)
	c := fs.client(t)

	sessions, err := c.ListSessionsOfGroup(context.Background(), "g.1")
	require.NoError(t, err)
	require.Len(t, sessions, 2)
	assert.Equal(t, &SessionInfo{GroupID: "g.1", AuthorID: "a.1", ValidUntil: 1893456000}, sessions["s.1"])
	assert.Nil(t, sessions["s.2"])
}

func TestListSessions_NullData(t *testing.T) {
	fs := okServer(t, "")
	c := fs.client(t)

	sessions, err := c.ListSessionsOfAuthor(context.Background(), "a.1")
	require.NoError(t, err)
	assert.Nil(t, sessions)
}

func TestRequiredIdentifiers(t *testing.T) {
	fs := okServer(t, "")
	c := fs.client(t)
	ctx := context.Background()

	calls := map[string]func() error{
		"DeleteGroup":    func() error { return c.DeleteGroup(ctx, "") },
		"ListPads":       func() error { _, err := c.ListPads(ctx, ""); return err },
		"CreateGroupPad": func() error { _, err := c.CreateGroupPad(ctx, "g.1", "", "x"); return err },
		"CreateSession":  func() error { _, err := c.CreateSession(ctx, "g.1", "", time.Now()); return err },
		"GetText":        func() error { _, err := c.GetText(ctx, "", nil); return err },
		"SetPassword":    func() error { return c.SetPassword(ctx, "", "pw") },
	}

	for name, call := range calls {
		t.Run(name, func(t *testing.T) {
			err := call()
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidParameters)
			assert.Contains(t, err.Error(), "cannot be blank")
		})
	}
	assert.Equal(t, 0, fs.count(), "validation must fail before any request")
}

// TestCatalog_Wiring checks every typed method against its catalog entry:
// the op name in the path, the arguments sent and the decoded payload.
func TestCatalog_Wiring(t *testing.T) {
	ctx := context.Background()
	until := time.Unix(1893456000, 0)

	tests := []struct {
		op       Operation
		data     string
		invoke   func(c *Client) (any, error)
		wantArgs map[string]any
		want     any
	}{
		{
			op:       OpCreateGroup,
			data:     `{"groupID":"g.1"}`,
			invoke:   func(c *Client) (any, error) { return c.CreateGroup(ctx) },
			wantArgs: map[string]any{},
			want:     GroupID{GroupID: "g.1"},
		},
		{
			op:       OpCreateGroupIfNotExistsFor,
			data:     `{"groupID":"g.1"}`,
			invoke:   func(c *Client) (any, error) { return c.CreateGroupIfNotExistsFor(ctx, "team-7") },
			wantArgs: map[string]any{"groupMapper": "team-7"},
			want:     GroupID{GroupID: "g.1"},
		},
		{
			op:       OpDeleteGroup,
			invoke:   func(c *Client) (any, error) { return nil, c.DeleteGroup(ctx, "g.1") },
			wantArgs: map[string]any{"groupID": "g.1"},
		},
		{
			op:       OpListPads,
			data:     `{"padIDs":["g.1$a"]}`,
			invoke:   func(c *Client) (any, error) { return c.ListPads(ctx, "g.1") },
			wantArgs: map[string]any{"groupID": "g.1"},
			want:     PadIDs{PadIDs: []string{"g.1$a"}},
		},
		{
			op:       OpCreateGroupPad,
			data:     `{"padID":"g.1$notes"}`,
			invoke:   func(c *Client) (any, error) { return c.CreateGroupPad(ctx, "g.1", "notes", "hi") },
			wantArgs: map[string]any{"groupID": "g.1", "padName": "notes", "text": "hi"},
			want:     PadID{PadID: "g.1$notes"},
		},
		{
			op:       OpCreateAuthor,
			data:     `{"authorID":"a.1"}`,
			invoke:   func(c *Client) (any, error) { return c.CreateAuthor(ctx, "Ada") },
			wantArgs: map[string]any{"name": "Ada"},
			want:     AuthorID{AuthorID: "a.1"},
		},
		{
			op:       OpCreateAuthorIfNotExistsFor,
			data:     `{"authorID":"a.1"}`,
			invoke:   func(c *Client) (any, error) { return c.CreateAuthorIfNotExistsFor(ctx, "user-7", "Ada") },
			wantArgs: map[string]any{"authorMapper": "user-7", "name": "Ada"},
			want:     AuthorID{AuthorID: "a.1"},
		},
		{
			op:       OpCreateSession,
			data:     `{"sessionID":"s.1"}`,
			invoke:   func(c *Client) (any, error) { return c.CreateSession(ctx, "g.1", "a.1", until) },
			wantArgs: map[string]any{"groupID": "g.1", "authorID": "a.1", "validUntil": float64(1893456000)},
			want:     SessionID{SessionID: "s.1"},
		},
		{
			op:       OpDeleteSession,
			invoke:   func(c *Client) (any, error) { return nil, c.DeleteSession(ctx, "s.1") },
			wantArgs: map[string]any{"sessionID": "s.1"},
		},
		{
			op:       OpGetSessionInfo,
			data:     `{"groupID":"g.1","authorID":"a.1","validUntil":1893456000}`,
			invoke:   func(c *Client) (any, error) { return c.GetSessionInfo(ctx, "s.1") },
			wantArgs: map[string]any{"sessionID": "s.1"},
			want:     SessionInfo{GroupID: "g.1", AuthorID: "a.1", ValidUntil: 1893456000},
		},
		{
			op:       OpListSessionsOfGroup,
			data:     `{}`,
			invoke:   func(c *Client) (any, error) { return c.ListSessionsOfGroup(ctx, "g.1") },
			wantArgs: map[string]any{"groupID": "g.1"},
			want:     Sessions{},
		},
		{
			op:       OpListSessionsOfAuthor,
			data:     `{}`,
			invoke:   func(c *Client) (any, error) { return c.ListSessionsOfAuthor(ctx, "a.1") },
			wantArgs: map[string]any{"authorID": "a.1"},
			want:     Sessions{},
		},
		{
			op:       OpGetText,
			data:     `{"text":"hello"}`,
			invoke:   func(c *Client) (any, error) { return c.GetText(ctx, "p", nil) },
			wantArgs: map[string]any{"padID": "p"},
			want:     Text{Text: "hello"},
		},
		{
			op:       OpGetHTML,
			data:     `{"html":"<b>hello</b>"}`,
			invoke:   func(c *Client) (any, error) { return c.GetHTML(ctx, "p", Rev(2)) },
			wantArgs: map[string]any{"padID": "p", "rev": float64(2)},
			want:     HTML{HTML: "<b>hello</b>"},
		},
		{
			op:       OpSetText,
			invoke:   func(c *Client) (any, error) { return nil, c.SetText(ctx, "p", "new") },
			wantArgs: map[string]any{"padID": "p", "text": "new"},
		},
		{
			op:       OpSetHTML,
			invoke:   func(c *Client) (any, error) { return nil, c.SetHTML(ctx, "p", "<p>new</p>") },
			wantArgs: map[string]any{"padID": "p", "html": "<p>new</p>"},
		},
		{
			op:       OpCreatePad,
			invoke:   func(c *Client) (any, error) { return nil, c.CreatePad(ctx, "p", "") },
			wantArgs: map[string]any{"padID": "p", "text": ""},
		},
		{
			op:       OpGetRevisionsCount,
			data:     `{"revisions":12}`,
			invoke:   func(c *Client) (any, error) { return c.GetRevisionsCount(ctx, "p") },
			wantArgs: map[string]any{"padID": "p"},
			want:     RevisionsCount{Revisions: 12},
		},
		{
			op:       OpDeletePad,
			invoke:   func(c *Client) (any, error) { return nil, c.DeletePad(ctx, "p") },
			wantArgs: map[string]any{"padID": "p"},
		},
		{
			op:       OpGetReadOnlyID,
			data:     `{"readOnlyID":"r.abc"}`,
			invoke:   func(c *Client) (any, error) { return c.GetReadOnlyID(ctx, "p") },
			wantArgs: map[string]any{"padID": "p"},
			want:     ReadOnlyID{ReadOnlyID: "r.abc"},
		},
		{
			op:       OpSetPublicStatus,
			invoke:   func(c *Client) (any, error) { return nil, c.SetPublicStatus(ctx, "p", true) },
			wantArgs: map[string]any{"padID": "p", "publicStatus": "true"},
		},
		{
			op:       OpGetPublicStatus,
			data:     `{"publicStatus":true}`,
			invoke:   func(c *Client) (any, error) { return c.GetPublicStatus(ctx, "p") },
			wantArgs: map[string]any{"padID": "p"},
			want:     PublicStatus{PublicStatus: true},
		},
		{
			op:       OpSetPassword,
			invoke:   func(c *Client) (any, error) { return nil, c.SetPassword(ctx, "p", "s3cret") },
			wantArgs: map[string]any{"padID": "p", "password": "s3cret"},
		},
		{
			op:       OpIsPasswordProtected,
			data:     `{"isPasswordProtected":false}`,
			invoke:   func(c *Client) (any, error) { return c.IsPasswordProtected(ctx, "p") },
			wantArgs: map[string]any{"padID": "p"},
			want:     PasswordProtection{IsPasswordProtected: false},
		},
	}

	require.Len(t, tests, len(Operations()), "every catalog entry needs a wiring case")

	for _, tt := range tests {
		t.Run(string(tt.op), func(t *testing.T) {
			fs := okServer(t, tt.data)
			c := fs.client(t)

			got, err := tt.invoke(c)
			require.NoError(t, err)
			if tt.want != nil {
				assert.Equal(t, tt.want, got)
			}

			req := fs.last(t)
			assert.Equal(t, "/api/1/"+string(tt.op), req.Path)

			tt.wantArgs["apikey"] = "abc"
			assert.Equal(t, tt.wantArgs, req.Args)

			_, ok := Lookup(tt.op)
			assert.True(t, ok, "operation missing from catalog")
		})
	}
}

func TestOperations(t *testing.T) {
	ops := Operations()
	require.Len(t, ops, 24)

	seen := map[Operation]bool{}
	for _, info := range ops {
		assert.False(t, seen[info.Name], "duplicate %s", info.Name)
		seen[info.Name] = true
		assert.Contains(t, []Method{MethodGET, MethodPOST}, info.Method)
	}

	info, ok := Lookup(OpGetText)
	require.True(t, ok)
	assert.Equal(t, MethodGET, info.Method)
	assert.Equal(t, ResourcePad, info.Resource)

	info, ok = Lookup(OpCreatePad)
	require.True(t, ok)
	assert.Equal(t, MethodPOST, info.Method)

	_, ok = Lookup("dropTables")
	assert.False(t, ok)

	ops[0].Name = "mutated"
	assert.Equal(t, OpCreateGroup, Operations()[0].Name)
}

func TestDecodeFailureIsMalformed(t *testing.T) {
	fs := okServer(t, `{"revisions":"many"}`)
	c := fs.client(t)

	_, err := c.GetRevisionsCount(context.Background(), "p")
	assert.ErrorIs(t, err, ErrMalformedEnvelope)
}
