// SPDX-License-Identifier: MPL-2.0

// Package catalog holds the static registry of stylesheet modules, themes and
// CSS distributions that the resolver reads from.
//
// A [Catalog] is built once, either from the compiled-in table returned by
// [Default] or from a catalog file decoded by [LoadFile], and is never
// mutated afterwards. Every accessor is safe for concurrent use.
//
// # Shapes
//
//   - [Module]: a named unit of distributable styles with requirements on
//     other modules and an optional [StyleInfo].
//   - [StyleInfo]: the module's LESS root plus its common, base and per-theme
//     file lists.
//   - [KnownTheme] and [ModuleTheme]: both embed [ThemeInfo] (name and color
//     schemes); the former adds a public name, the latter the theme's files.
//   - [Distribution]: a bundling profile restricting modules, themes and size
//     schemes.
//
// # Catalog files
//
// Catalog files may be written in CUE (validated against the embedded
// #Catalog schema) or in JSON with comments and trailing commas:
//
//	modules: [{
//		name: "framework"
//		style_info: {
//			less_root:         "framework"
//			common_less_files: ["framework.less"]
//		}
//	}]
package catalog
