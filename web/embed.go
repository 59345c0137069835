// Package web embeds the browser dashboard served under "/".
package web

import (
	"embed"
	"io/fs"
)

//go:embed static
var content embed.FS

// Static returns the dashboard files rooted at the static directory.
func Static() (fs.FS, error) {
	return fs.Sub(content, "static")
}
