// Package templates embeds the HTML templates rendered by the controllers.
package templates

import "embed"

//go:embed *.html
var FS embed.FS
