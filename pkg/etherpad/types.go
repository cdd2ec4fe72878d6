package etherpad

// GroupID is returned by CreateGroup and CreateGroupIfNotExistsFor.
type GroupID struct {
	GroupID string `json:"groupID" yaml:"groupID"`
}

// PadIDs is returned by ListPads.
type PadIDs struct {
	PadIDs []string `json:"padIDs" yaml:"padIDs"`
}

// PadID is returned by CreateGroupPad. Group pads are named
// "<groupID>$<padName>".
type PadID struct {
	PadID string `json:"padID" yaml:"padID"`
}

// AuthorID is returned by CreateAuthor and CreateAuthorIfNotExistsFor.
type AuthorID struct {
	AuthorID string `json:"authorID" yaml:"authorID"`
}

// SessionID is returned by CreateSession.
type SessionID struct {
	SessionID string `json:"sessionID" yaml:"sessionID"`
}

// SessionInfo is returned by GetSessionInfo.
type SessionInfo struct {
	GroupID    string `json:"groupID" yaml:"groupID"`
	AuthorID   string `json:"authorID" yaml:"authorID"`
	ValidUntil int64  `json:"validUntil" yaml:"validUntil"`
}

// Sessions maps session IDs to their info. The server may report a nil
// entry for a session it could not load.
type Sessions map[string]*SessionInfo

// Text is returned by GetText.
type Text struct {
	Text string `json:"text" yaml:"text"`
}

// HTML is returned by GetHTML.
type HTML struct {
	HTML string `json:"html" yaml:"html"`
}

// RevisionsCount is returned by GetRevisionsCount.
type RevisionsCount struct {
	Revisions int `json:"revisions" yaml:"revisions"`
}

// ReadOnlyID is returned by GetReadOnlyID.
type ReadOnlyID struct {
	ReadOnlyID string `json:"readOnlyID" yaml:"readOnlyID"`
}

// PublicStatus is returned by GetPublicStatus.
type PublicStatus struct {
	PublicStatus bool `json:"publicStatus" yaml:"publicStatus"`
}

// PasswordProtection is returned by IsPasswordProtected.
type PasswordProtection struct {
	IsPasswordProtected bool `json:"isPasswordProtected" yaml:"isPasswordProtected"`
}
