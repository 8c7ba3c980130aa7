// Package hybrid implements the two end-to-end envelope operations:
// encrypt-for-recipient and decrypt-as-owner.
//
// Encryption generates a fresh AES-256 key per call, seals the plaintext
// with AES-GCM, packs {nonce, ciphertext, tag} into the opaque envelope
// string, and wraps the raw key bytes to the recipient's RSA-OAEP public
// key. Decryption reverses the order. Neither function retains state across
// calls beyond what the caller stores; key material is wiped before return.
package hybrid
