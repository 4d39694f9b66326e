// Package logging provides structured diagnostic logging for yuuskel.
//
// # Overview
//
// Logging package wraps Zap with:
//   - Custom Trace level (-2, below Debug)
//   - Console or JSON encoding to stderr
//   - Automatic context field injection (project root, run step)
//
// Diagnostic logs are not the user-facing progress output. Progress lines
// go through internal/report; this package is for --verbose troubleshooting.
//
// # Usage
//
//	cfg := logging.NewDefaultConfig()
//	logger, err := logging.NewLogger(cfg, os.Stderr)
//	if err != nil {
//	    return err
//	}
//	defer logger.Sync()
//
//	ctx = logging.WithProject(ctx, "/home/me/my_project")
//	ctx = logging.WithStep(ctx, "envfile")
//	logger.Debug(ctx, "reconciled", zap.Int("dropped", 3))
//
// # Testing
//
// Use TestLogger for test assertions:
//
//	tl := logging.NewTestLogger()
//	tl.Info(ctx, "test message", zap.String("key", "value"))
//	tl.AssertLogged(t, zapcore.InfoLevel, "test message")
//	tl.AssertField(t, "test message", "key", "value")
package logging
