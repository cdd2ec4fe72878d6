package etherpad

import (
	"strconv"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Operation is the name of a remote procedure, sent verbatim as the last
// path segment.
type Operation string

const (
	OpCreateGroup               Operation = "createGroup"
	OpCreateGroupIfNotExistsFor Operation = "createGroupIfNotExistsFor"
	OpDeleteGroup               Operation = "deleteGroup"
	OpListPads                  Operation = "listPads"
	OpCreateGroupPad            Operation = "createGroupPad"

	OpCreateAuthor               Operation = "createAuthor"
	OpCreateAuthorIfNotExistsFor Operation = "createAuthorIfNotExistsFor"

	OpCreateSession        Operation = "createSession"
	OpDeleteSession        Operation = "deleteSession"
	OpGetSessionInfo       Operation = "getSessionInfo"
	OpListSessionsOfGroup  Operation = "listSessionsOfGroup"
	OpListSessionsOfAuthor Operation = "listSessionsOfAuthor"

	OpGetText Operation = "getText"
	OpGetHTML Operation = "getHTML"
	OpSetText Operation = "setText"
	OpSetHTML Operation = "setHTML"

	OpCreatePad           Operation = "createPad"
	OpGetRevisionsCount   Operation = "getRevisionsCount"
	OpDeletePad           Operation = "deletePad"
	OpGetReadOnlyID       Operation = "getReadOnlyID"
	OpSetPublicStatus     Operation = "setPublicStatus"
	OpGetPublicStatus     Operation = "getPublicStatus"
	OpSetPassword         Operation = "setPassword"
	OpIsPasswordProtected Operation = "isPasswordProtected"
)

// Resource groups operations by the entity they act on.
type Resource string

const (
	ResourceGroup   Resource = "group"
	ResourceAuthor  Resource = "author"
	ResourceSession Resource = "session"
	ResourcePad     Resource = "pad"
)

// OperationInfo describes one catalog entry.
type OperationInfo struct {
	Name     Operation
	Method   Method
	Resource Resource
	Params   []string
}

var catalog = []OperationInfo{
	{OpCreateGroup, MethodPOST, ResourceGroup, nil},
	{OpCreateGroupIfNotExistsFor, MethodPOST, ResourceGroup, []string{"groupMapper"}},
	{OpDeleteGroup, MethodPOST, ResourceGroup, []string{"groupID"}},
	{OpListPads, MethodGET, ResourceGroup, []string{"groupID"}},
	{OpCreateGroupPad, MethodPOST, ResourceGroup, []string{"groupID", "padName", "text"}},

	{OpCreateAuthor, MethodPOST, ResourceAuthor, []string{"name"}},
	{OpCreateAuthorIfNotExistsFor, MethodPOST, ResourceAuthor, []string{"authorMapper", "name"}},

	{OpCreateSession, MethodPOST, ResourceSession, []string{"groupID", "authorID", "validUntil"}},
	{OpDeleteSession, MethodPOST, ResourceSession, []string{"sessionID"}},
	{OpGetSessionInfo, MethodGET, ResourceSession, []string{"sessionID"}},
	{OpListSessionsOfGroup, MethodGET, ResourceSession, []string{"groupID"}},
	{OpListSessionsOfAuthor, MethodGET, ResourceSession, []string{"authorID"}},

	{OpGetText, MethodGET, ResourcePad, []string{"padID", "rev?"}},
	{OpGetHTML, MethodGET, ResourcePad, []string{"padID", "rev?"}},
	{OpSetText, MethodPOST, ResourcePad, []string{"padID", "text"}},
	{OpSetHTML, MethodPOST, ResourcePad, []string{"padID", "html"}},
	{OpCreatePad, MethodPOST, ResourcePad, []string{"padID", "text"}},
	{OpGetRevisionsCount, MethodGET, ResourcePad, []string{"padID"}},
	{OpDeletePad, MethodPOST, ResourcePad, []string{"padID"}},
	{OpGetReadOnlyID, MethodGET, ResourcePad, []string{"padID"}},
	{OpSetPublicStatus, MethodPOST, ResourcePad, []string{"padID", "publicStatus"}},
	{OpGetPublicStatus, MethodGET, ResourcePad, []string{"padID"}},
	{OpSetPassword, MethodPOST, ResourcePad, []string{"padID", "password"}},
	{OpIsPasswordProtected, MethodGET, ResourcePad, []string{"padID"}},
}

// Operations returns a copy of the catalog. It is informational; calls go
// through the typed Client methods.
func Operations() []OperationInfo {
	out := make([]OperationInfo, len(catalog))
	copy(out, catalog)
	return out
}

// Lookup returns the catalog entry for op.
func Lookup(op Operation) (OperationInfo, bool) {
	for _, info := range catalog {
		if info.Name == op {
			return info, true
		}
	}
	return OperationInfo{}, false
}

// required rejects empty identifiers before a request is made.
func required(op Operation, fields ...param) error {
	for _, f := range fields {
		if err := validation.Validate(f.value, validation.Required); err != nil {
			verr := validation.Errors{f.name: err}
			return newError(KindInvalidParameters, string(op), verr.Error(), verr)
		}
	}
	return nil
}

type param struct {
	name  string
	value string
}

// withRevision adds rev only when it is set.
func withRevision(args Args, rev *int) Args {
	if rev != nil {
		args["rev"] = *rev
	}
	return args
}

// boolParam renders b the way the server expects boolean fields.
func boolParam(b bool) string {
	return strconv.FormatBool(b)
}

// Rev returns a pointer to n, for the optional revision of GetText and GetHTML.
func Rev(n int) *int {
	return &n
}
