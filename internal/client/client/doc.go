// Package client talks to the coursehub HTTP API and bootstraps the CLI's
// local session database.
//
// Transport failures surface as ErrUnavailable, 401 and 403 responses as
// ErrUnauthorized, and any other non-2xx response as an *APIError carrying
// the server's message. Match them with errors.Is / errors.As.
package client
