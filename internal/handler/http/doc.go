// Package http implements the HTTP transport of the reference delivery
// server and the middlewares shared with the client's local API.
//
// Device authentication, payload integrity, request logging, trace ids and
// compression are handled here before a delivery reaches the service layer.
package http
