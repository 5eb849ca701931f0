package shotplan

import "github.com/rs/zerolog"

// Log is the package logger. It discards everything until the embedding
// application installs a real logger via SetLogger; the library never
// configures an output on its own.
var Log = zerolog.Nop()

// SetLogger installs the logger used by the whole package.
func SetLogger(l zerolog.Logger) {
	Log = l
}
