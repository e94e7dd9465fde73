// Package cliconfig provides configuration types and loading for the
// radarmock CLI.
//
// Values are layered with the following precedence (highest to lowest):
//
//  1. Command-line flags
//  2. Environment variables (RADARMOCK_* prefix)
//  3. Local config file (.radarmockrc.yaml in the current directory)
//  4. Global config file (~/.config/radarmock/config.yaml)
//  5. Default values
//
// The source of every value is tracked in Config.Sources so `radarmock
// config` can explain where a setting came from.
package cliconfig
