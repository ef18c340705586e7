// Package config handles configuration loading, parsing, and validation for
// the fixture tools. Values come from defaults, an optional config file, an
// optional .env file and THUNDERDOME_-prefixed environment variables, with
// explicit overrides (usually command-line flags) taking precedence.
package config
