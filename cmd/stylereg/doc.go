// SPDX-License-Identifier: MPL-2.0

// Package cmd contains the stylereg command tree.
//
// Every command is built from an App, which carries the configuration
// provider and output streams, so tests can run the whole tree against
// buffers and temporary config files.
package cmd
