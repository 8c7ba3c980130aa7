// Package server implements the conversion server side of the protocol.
//
// It owns an in-memory RSA keypair generated at startup, a registry of
// client public keys, and a pluggable media Converter. The handler exposes
// the three endpoints the client core consumes: /public-key,
// /client-public-key and /upload-encrypted. Uploads are unwrapped and
// decrypted with the server key, converted, and the result is sealed under
// a fresh symmetric key wrapped to the registered client key.
package server
