// Package web embeds the browser client served at / when SERVE_WEB is set.
package web

import (
	"embed"
	"io/fs"
	"net/http"
)

//go:embed static
var files embed.FS

// StaticFS exposes the client rooted at the static directory.
func StaticFS() http.FileSystem {
	sub, err := fs.Sub(files, "static")
	if err != nil {
		// static is embedded at build time, so Sub cannot fail.
		panic(err)
	}
	return http.FS(sub)
}
