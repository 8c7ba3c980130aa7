// Package api provides the HTTP implementation of domain.ConvertClient.
//
// The conversion server exposes three JSON endpoints:
//   - GET  /public-key         -> { serverPublicKey }
//   - POST /client-public-key  <- { clientId, publicKeyPem }
//   - POST /upload-encrypted   <- { clientId, encryptedKey, encryptedData, mediaType }
//
// All requests accept a context for cancellation and deadlines. A non-2xx
// status or an "error" field in the response body is returned as an error
// with the method, path and server detail to aid diagnostics. Retry and
// backoff are deliberately the caller's concern.
package api
