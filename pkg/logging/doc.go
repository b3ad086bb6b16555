// Package logging provides the structured logger used across tmoapi.
//
// It is a thin layer over log/slog that tags every entry with a subsystem
// name. The CLI initializes it once at startup; output goes to stderr so it
// never mixes with command output on stdout.
//
//	logging.InitForCLI(logging.LevelWarn, os.Stderr)
//
//	logging.Debug("Client", "GET %s", url)
//	logging.Warn("Config", "Unknown environment %q, using US", env)
//	logging.Error("Profile", err, "Failed to read %s", path)
//
// The --debug flag lowers the level to LevelDebug. Messages logged before
// InitForCLI are dropped, which keeps library code and tests quiet.
//
// Credentials are never passed to the logger.
package logging
