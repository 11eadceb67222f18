// Package config loads runtime configuration for the riskadvisor client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment variables, with an optional .env file loaded first
//     (see parseEnv): RISKADVISOR_API_URL, RISKADVISOR_TIMEOUT,
//     RISKADVISOR_DB_PATH.
//  3. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the backend API
//	-t int      request timeout (seconds)
//	-d string   path to the local session database
//
// # JSON schema
//
// The JSON loader uses timex.Duration for the timeout, so values can be
// either strings like "30s" or integer nanoseconds:
//
//	{
//	  "server_endpoint_addr": "http://localhost:8000",
//	  "request_timeout": "30s",
//	  "database_path": "riskadvisor.db"
//	}
package config
