// Package store persists the conversion server's registry of client public
// keys as JSON on disk, so registrations survive a restart.
//
// Only public key material is stored; private keys are never written
// anywhere. Writes go through a temp file and an atomic rename.
package store
