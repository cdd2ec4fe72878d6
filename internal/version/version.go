package version

// Version is set at build time with
// -ldflags "-X github.com/hashicorp-forge/padclient/internal/version.Version=...".
var Version = "0.1.0-dev"
