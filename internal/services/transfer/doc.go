// Package transfer orchestrates one encrypted conversion session.
//
// A transfer walks the session through its states in order: fetch the
// server's public key, generate our own keypair, register its public half,
// encrypt and upload the payload, and finally decrypt the server's result.
// Each step requires the data produced by the one before it and fails with
// domain.ErrPrecondition otherwise, leaving the session untouched. The
// session lock is held for the whole step, so two in-flight calls can never
// interleave their key or envelope state.
package transfer
