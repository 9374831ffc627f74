// Package http serves the vault REST API under /api.
//
// Public routes cover registration, login and the server version. Entry
// routes under /api/passwords require a bearer token; the owner is taken
// from its claims and never from the request body. Middleware adds trace
// ids, access logs, gzip and optional X-Payload-Hash verification.
package http
