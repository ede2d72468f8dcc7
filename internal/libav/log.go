package libav

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/asticode/go-astiav"
)

var nativeLogOnce sync.Once

// setupNativeLog configures FFmpeg's own logging once per process. The
// native log level follows the application's slog level: quiet unless slog
// has debug enabled, in which case native messages are rerouted into slog
// as debug records instead of being written straight to stderr.
func setupNativeLog() {
	nativeLogOnce.Do(func() {
		if !slog.Default().Enabled(context.Background(), slog.LevelDebug) {
			astiav.SetLogLevel(astiav.LogLevelQuiet)
			return
		}
		astiav.SetLogLevel(astiav.LogLevelVerbose)
		astiav.SetLogCallback(func(_ astiav.Classer, l astiav.LogLevel, _, msg string) {
			slog.Debug("libav: native log", "level", int(l), "msg", strings.TrimSpace(msg))
		})
	})
}
