// Package prelude embeds the host surface declarations loaded ahead of user
// units in every analysis.
package prelude

import _ "embed"

//go:embed host.vt
var hostSource []byte

// FileName is the virtual path the prelude appears under in diagnostics.
const FileName = "<prelude>/host.vt"

// Source returns the embedded host declarations. Callers must not mutate
// the returned slice.
func Source() []byte {
	return hostSource
}
