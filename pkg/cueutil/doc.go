// SPDX-License-Identifier: MPL-2.0

// Package cueutil provides the CUE parsing steps shared by catalog files and
// configuration files:
//
//  1. Compile the embedded schema
//  2. Compile user data and unify it with the schema definition
//  3. Validate and decode into a Go value
//
// # Usage
//
//	//go:embed catalog_schema.cue
//	var schemaBytes []byte
//
//	result, err := cueutil.ParseAndDecode[catalog.Definition](
//	    schemaBytes,
//	    userFileBytes,
//	    "#Catalog",
//	    cueutil.WithFilename("catalog.cue"),
//	)
//	if err != nil {
//	    return nil, err // includes the CUE path of the offending field
//	}
package cueutil
