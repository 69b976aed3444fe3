// Package config loads runtime configuration for the coursehub CLI.
//
// Sources are applied in order, later ones winning:
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected with -c or -config.
//  3. Command-line flags.
//
// Supported flags
//
//	-a string   base URL of the API, including the base path
//	-d string   path of the local session database
//	-t int      request timeout (seconds)
//
// JSON example:
//
//	{
//	  "server_url": "http://127.0.0.1:3001/api",
//	  "session_db_path": "coursehub.db",
//	  "request_timeout": "10s"
//	}
package config
