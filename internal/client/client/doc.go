// Package client is the HTTP transport to the Jabuspark API.
//
// # Overview
//
// The package provides:
//  1. A transport contract (see the Client interface) with JSON GET, POST and
//     DELETE calls, query encoding, and multipart form submission.
//  2. A concrete implementation (see HTTPClient) bound to one base URL. Every
//     outgoing request passes through a RoundTripper that reads the current
//     token from a TokenSource and attaches "Authorization: Bearer <token>"
//     when one is stored. Every response passes through an optional
//     ResponseHook, the extension point for centralized failure handling.
//  3. Helpers for the backend's inconsistent envelopes: Unwrap strips a
//     {success, data} wrapper when present, ExtractList tolerates a bare
//     array or an object holding the array under a named field.
//
// # Error Handling
//
// Non-2xx responses are returned as *Error, carrying the server's "error" or
// "message" text when the body has one. *Error matches the sentinels
// ErrUnauthorized (401, 403), ErrNotFound (404) and ErrUnavailable (502, 503,
// 504) through errors.Is. Transport failures are returned unchanged. Nothing
// is retried.
//
// # Concurrency & Contexts
//
// HTTPClient is safe for concurrent use. Calls are independent; there is no
// deduplication, caching or cancellation beyond the caller's context.
package client
