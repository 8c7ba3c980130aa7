// Package commands defines the sealbox CLI: uploading a file to the
// conversion server over the hybrid encryption envelope and retrieving the
// decrypted result.
package commands
