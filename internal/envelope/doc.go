// Package envelope packs and unpacks the {nonce, ciphertext, tag} triple
// carried between client and server.
//
// The wire form is a JSON record with exactly the keys "nonce", "ciphertext"
// and "tag", each field standard-base64 encoded, and the serialized record
// base64 encoded once more into a single transport-safe opaque string. The
// double encoding matches what the conversion server expects on
// /upload-encrypted and emits in its encryptedResult.
package envelope
