// SPDX-License-Identifier: MPL-2.0

// Package config handles stylereg configuration using Viper with CUE as the file format.
//
// Configuration is read from the --config file when given, otherwise from
// config.cue in the platform config directory ($XDG_CONFIG_HOME/stylereg on
// Linux, ~/Library/Application Support/stylereg on macOS, %APPDATA%\stylereg
// on Windows), otherwise from config.cue in the working directory. Files are
// validated against the embedded #Config schema (config_schema.cue) and then
// merged over the defaults; STYLEREG_* environment variables override both.
package config
