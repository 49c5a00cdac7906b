// Package api implements the HTTP REST API and WebSocket server for the gateway.
//
// This package provides:
//   - Read endpoints for the canonical record, single fields, the parameter
//     registry, projections and poll history
//   - JWT-protected endpoints to force a poll and write a parameter
//   - WebSocket hub pushing record, projection and poll events
//   - Middleware stack (request ID, logging, recovery, CORS, body limit)
//   - TLS support
//
// # Architecture
//
// The server reads from the gateway's published record and never blocks the
// poll loop. The Hub is registered as a gateway sink, so WebSocket clients
// see each record change at the same time as MQTT subscribers.
//
// # Security
//
// Reads are open on the local network. POST /poll and PUT /parameters/{name}
// need a bearer token issued by "easycontrols token"; the token's role must
// grant the matching permission. GET /auth/me describes the caller's token.
//
// # Graceful Degradation
//
// MQTT and the history store are optional. Without history, GET /history
// answers 503; everything else keeps working.
package api
