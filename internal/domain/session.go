package domain

import (
	"crypto/rsa"
	"fmt"
	"sync"
)

// State names the furthest step a session has completed. States advance in
// order; every transition requires the data produced by the prior one.
type State int

const (
	StateIdle State = iota
	StateServerKeyFetched
	StateOwnKeyGenerated
	StateKeyRegistered
	StatePayloadEncrypted
	StateResultDecrypted
)

var stateNames = map[State]string{
	StateIdle:             "Idle",
	StateServerKeyFetched: "ServerKeyFetched",
	StateOwnKeyGenerated:  "OwnKeyGenerated",
	StateKeyRegistered:    "KeyRegistered",
	StatePayloadEncrypted: "PayloadEncrypted",
	StateResultDecrypted:  "ResultDecrypted",
}

func (s State) String() string {
	if n, ok := stateNames[s]; ok {
		return n
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Session is the mutable state of one client interaction. It is created at
// the start of the interaction, mutated in place by each orchestration step,
// and discarded when the interaction ends; nothing is persisted.
//
// The mutex serializes in-flight orchestration calls so one call can never
// overwrite another's in-progress key or envelope state.
type Session struct {
	mu    sync.Mutex
	state State

	ClientID ClientID

	// Set by the server-key fetch.
	ServerKeyPEM string
	ServerKey    *rsa.PublicKey

	// Set by key generation; the private half stays in this process.
	Keys *KeyPair

	// Set by the upload: the server's result encrypted back to us.
	ResultEnvelope   string
	ResultWrappedKey string
	ResultMediaType  string
}

// NewSession returns an idle session for the given client identifier.
func NewSession(id ClientID) *Session {
	return &Session{ClientID: id}
}

// State reports the session's current state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Step runs fn while holding the session lock, requiring the session to be
// exactly in from. On success the session advances to to; on any error the
// state is left unchanged. fn must only assign session fields once it can no
// longer fail, so a failed step never partially mutates the session.
func (s *Session) Step(from, to State, fn func() error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != from {
		return fmt.Errorf("%w: %s requires state %s, session is %s",
			ErrPrecondition, to, from, s.state)
	}
	if err := fn(); err != nil {
		return err
	}
	s.state = to
	return nil
}
