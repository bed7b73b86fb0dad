// Package schemas embeds the JSON Schema documents for screener input files.
package schemas

import "embed"

// FS holds every *.schema.json file in this directory.
//
//go:embed *.schema.json
var FS embed.FS
