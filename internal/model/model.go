// Package model defines data structures for mcp-upnote.
//
// This package contains:
//   - JSON-RPC 2.0: request/response/error structures
//   - MCP: initialize/tools protocol structures
//   - Config: server and debug wrapper configuration
package model
