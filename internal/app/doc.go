// Package app wires the client-side dependency graph for the CLI: config
// loading, the HTTP client, the session, and the transfer service.
package app
