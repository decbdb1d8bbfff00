// Copyright 2024 Erraggy
// SPDX-License-Identifier: MIT

// Package pathutil provides JSON Pointer reference utilities for OpenAPI
// documents.
//
// # Reference Builders
//
// Functions for building local references to schema components:
//
//	ref := pathutil.SchemaRef("Pet")     // "#/components/schemas/Pet"
//	ref := pathutil.DefinitionRef("Pet") // "#/definitions/Pet"
//
// # Reference Splitting
//
// [SplitSchemaRef] decomposes a local schema reference into its prefix, the
// first path segment after the prefix (the schema name), and any remaining
// nested member path:
//
//	prefix, name, rest, ok := pathutil.SplitSchemaRef("#/definitions/Pet/properties/id")
//	// prefix: "#/definitions/", name: "Pet", rest: "/properties/id", ok: true
//
// References that do not point into a local schema namespace return ok=false
// and must be passed through untouched by callers.
package pathutil
