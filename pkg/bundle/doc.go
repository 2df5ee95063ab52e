// SPDX-License-Identifier: MPL-2.0

// Package bundle plans the stylesheet bundles of a CSS distribution.
//
// A [Plan] lists every bundle a distribution publishes (one per supported
// theme, color scheme and size scheme, plus an external common bundle when
// the distribution keeps common styles separate) together with the ordered
// source files each bundle compiles. Plans are deterministic: each bundle
// carries a BLAKE3 digest of its file list, so downstream build steps can
// skip recompiling bundles whose inputs did not change.
//
// Plans can be encoded as JSON, YAML or TOML manifests with [Encode] and
// written atomically with [WriteManifest].
package bundle
