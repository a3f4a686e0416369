// Package embedded provides embedded static assets for the application.
package embedded

import (
	"embed"
	"io/fs"
)

// Files contains the fixture payloads served by the local API server:
//   - fixtures/advisors.json
//   - fixtures/accounts.json
//   - fixtures/holdings.json
//
//go:embed fixtures
var Files embed.FS

// Fixtures returns the fixtures directory as its own filesystem root
func Fixtures() fs.FS {
	sub, err := fs.Sub(Files, "fixtures")
	if err != nil {
		// fixtures is embedded at build time; Sub only fails on an invalid path
		panic(err)
	}
	return sub
}
