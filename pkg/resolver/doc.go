// SPDX-License-Identifier: MPL-2.0

// Package resolver answers "which stylesheet sources, in which order, make up
// this bundle?" for a [catalog.Catalog].
//
// The three queries are:
//
//   - [Resolver.ResolveModuleOrder]: expand requested modules with their
//     requirements into a duplicate-free build order.
//   - [Resolver.CommonFiles]: concatenate the theme-independent common files
//     of a module list.
//   - [Resolver.ThemeFiles]: build the layered file list for one module,
//     theme, color scheme and optional size scheme.
//
// A Resolver holds no mutable state. The only side effect is the injected
// [ExistsFunc], which filters a module's base files; with a pure predicate
// every query is deterministic and the Resolver is safe for concurrent use.
//
// Unknown modules are skipped silently in dependency expansion and common
// file aggregation. ThemeFiles instead reports lookup misses as a
// *ThemeLookupError, so callers can tell "no such theme" from an empty list.
package resolver
