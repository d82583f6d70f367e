// Package joyce implements the Joyce voice assistant backend: a LiveKit
// token server plus the connection-bootstrap client used by front ends.
//
// The module provides:
//   - Token issuance for LiveKit rooms (POST /api/token)
//   - Connection bootstrap for clients (pkg/bootstrap)
//   - Session tracking with LiveKit room synchronization via polling
//   - Optional JWT authentication via JWKS
//
// The server entrypoint is cmd/server; cmd/joyce-cli is a development
// client that exercises the full bootstrap-and-join flow.
package joyce
