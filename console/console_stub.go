//go:build !(js || wasm)

package console

import (
	"fmt"
	"log/slog"
	"os"
)

// platformSink writes to stderr in non-WASM builds.
// The browser implementation is in console.go with js/wasm build tags.
func platformSink(_ slog.Level, line string) {
	fmt.Fprintln(os.Stderr, line)
}
