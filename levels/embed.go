// Package levels embeds the built-in level files.
package levels

import "embed"

//go:embed *.yaml *.toml *.tengo
var FS embed.FS

// Default names the level used when no -level flag is given.
const Default = "default.yaml"
