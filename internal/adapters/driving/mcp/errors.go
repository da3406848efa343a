// Package mcp provides an MCP (Model Context Protocol) server adapter for
// clonegroup. It lets AI assistants group near-duplicate documents in a
// local directory tree.
package mcp

import "errors"

// ErrMissingGroupingService is returned when the grouping service is not provided.
var ErrMissingGroupingService = errors.New("mcp: grouping service is required")
