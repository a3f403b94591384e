// Package static embeds the stylesheet and the payment checkout script.
package static

import "embed"

// FS is served under /static/.
//
//go:embed *.css *.js
var FS embed.FS
