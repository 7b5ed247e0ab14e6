// Package web embeds the site's browser assets.
package web

import (
	"embed"
	"io/fs"
)

//go:embed static
var assets embed.FS

// Static returns the tree served under /static, rooted inside the static
// directory so static/css/site.css is addressed as css/site.css.
func Static() (fs.FS, error) {
	return fs.Sub(assets, "static")
}
