package domain

import "context"

// ConvertClient is how we talk to the conversion server's three endpoints.
// Transport-layer failures are the client's to report; the crypto core only
// judges the bytes it is given.
type ConvertClient interface {
	// FetchServerKey returns the server's public key as a PEM blob.
	FetchServerKey(ctx context.Context) (string, error)

	// RegisterClientKey registers our exported public key under clientId.
	// Trust on first register; the server does not authenticate ownership.
	RegisterClientKey(ctx context.Context, id ClientID, publicKeyPEM string) error

	// UploadEncrypted submits a wrapped key plus packed envelope and returns
	// the server's result encrypted back to our own public key.
	UploadEncrypted(ctx context.Context, id ClientID, encryptedKey, encryptedData, mediaType string) (UploadResult, error)
}

// TransferService drives one encrypted conversion session, step by step.
// Each step is gated on the session state reached by the previous one and
// fails with ErrPrecondition otherwise.
type TransferService interface {
	// FetchServerKey fetches and imports the server key, returning its
	// fingerprint for trust-on-first-use display.
	FetchServerKey(ctx context.Context) (string, error)

	// GenerateKeys creates our own RSA keypair for the session.
	GenerateKeys() error

	// Register publishes our public key under the session's client id.
	Register(ctx context.Context) error

	// EncryptAndUpload seals plaintext for the server, uploads it, and
	// stores the encrypted result on the session.
	EncryptAndUpload(ctx context.Context, plaintext []byte, mediaType string) error

	// DecryptResult opens the stored result with our private key.
	DecryptResult() (Result, error)
}
