// Package clocksdk provides the typed request/response contracts for the
// timeclock HTTP API, the error envelope shared by server and clients, and
// a small HTTP client.
//
// The server's HTTP handlers use the types here to shape responses, so any
// Go integrator consuming the API gets the exact wire structs the service
// produces. The client is deliberately thin: it adds the bearer token,
// encodes/decodes JSON and turns non-2xx responses into *APIError values.
package clocksdk
