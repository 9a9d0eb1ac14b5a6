// Package config loads runtime configuration for the recipebook CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment variables, after loading an optional dotenv file selected
//     with -e or -env (see parseEnv).
//  3. Optional JSON file (see parseJson) selected via -c or -config.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the REST API (e.g. http://127.0.0.1:5001/api)
//	-t int      request timeout (seconds)
//	-d string   path of the local credential database
//	-r float    max API requests per second (0 = unlimited)
//	-l string   log level
//
// Environment
//
//	RECIPEBOOK_API_URL, RECIPEBOOK_REQUEST_TIMEOUT ("10s"),
//	RECIPEBOOK_STORE_PATH, RECIPEBOOK_RPS, RECIPEBOOK_LOG_LEVEL
//
// # JSON schema
//
//	{
//	  "server_base_url": "http://127.0.0.1:5001/api",
//	  "request_timeout": "10s",
//	  "store_path": "recipebook.db",
//	  "requests_per_second": 5,
//	  "log_level": "debug"
//	}
//
// Absent JSON keys leave the earlier value untouched.
package config
