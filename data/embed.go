// Package data embeds the YAML lexicons shipped with text2num.
package data

import "embed"

// Lexicons holds lexicons/*.yaml. Each file is a lang.Spec document that
// lang.Load reads.
//
//go:embed lexicons/*.yaml
var Lexicons embed.FS
