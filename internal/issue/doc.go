// SPDX-License-Identifier: MPL-2.0

// Package issue provides actionable errors and Markdown guidance for stylereg.
//
// An [ActionableError] says which operation failed, on which resource, and
// what the user can try next. Errors that match a known situation carry an
// [Id]; the CLI renders the matching [Issue] with glamour below the error.
package issue
