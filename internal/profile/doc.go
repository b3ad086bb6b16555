// Package profile manages the persisted store of named connection profiles.
//
// A profile bundles the credentials and settings for one TMO database so
// users can switch between them with --profile instead of repeating
// --token and --database on every command.
//
// # Configuration File
//
// Profiles are stored in ~/.config/tmoapi/profiles.yaml:
//
//	profiles:
//	  - name: production
//	    token: abc123
//	    database: Fund A
//	    environment: us
//	    timeout: 45
//	  - name: canada
//	    token: def456
//	    database: Fund B
//	    environment: canada
//
// A missing file is treated as an empty store. The timeout falls back to
// 30 seconds when absent, unparsable or not positive.
//
// # Stores
//
// Storage is the file-backed store used by the CLI. MemoryStore holds
// profiles in memory and is used wherever a file would get in the way,
// mostly in tests. Both satisfy Loader, which is all the config resolver
// needs.
package profile
