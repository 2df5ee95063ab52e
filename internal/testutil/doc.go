// SPDX-License-Identifier: MPL-2.0

// Package testutil provides test helpers that fail the test on error instead
// of returning it.
//
// Environment helpers (MustSetenv, MustUnsetenv, SetHomeDir) register their
// restore step with t.Cleanup. Source tree helpers (WriteFile, WriteSourceTree)
// build fake LESS trees for existence checks.
package testutil
