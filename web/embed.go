// Package web embeds the browser-side assets of the chart page.
//
// The static/ directory holds the tooltip script that the HTML page either
// inlines or, under the preview server, loads from /static/tooltip.js.
//
// Usage in the preview server:
//
//	import "github.com/seenimoa/radialchart/web"
//	fs := web.StaticFS()  // returns io/fs.FS rooted at static/
package web

import (
	"embed"
	"fmt"
	"io/fs"
)

//go:embed static
var static embed.FS

//go:embed static/tooltip.js
var tooltipScript string

// StaticFS returns a filesystem rooted at the embedded static/ directory.
// This is ready to use with http.FileServerFS or http.FS.
func StaticFS() fs.FS {
	sub, err := fs.Sub(static, "static")
	if err != nil {
		panic(fmt.Sprintf("web.StaticFS: %v", err))
	}
	return sub
}

// TooltipScript returns the hover tooltip script for inlining into a page.
func TooltipScript() string {
	return tooltipScript
}
