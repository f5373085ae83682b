// Package session holds the authenticated identity and the portfolio
// ledger scoped to it. Exactly one identity (or none) is active at a
// time; leaving the authenticated state clears the ledger.
package session

import (
	"github.com/sixex/sixex/internal/ledger"
)

// State is the session lifecycle state.
type State int

const (
	// Anonymous means no credential is held.
	Anonymous State = iota
	// Authenticated means a credential and identity are active.
	Authenticated
)

// Identity is the authenticated user.
type Identity struct {
	ID    string
	Email string
}

// CredentialSink receives credential lifecycle events so the host can
// persist the bearer token across restarts.
type CredentialSink interface {
	OnCredentialObtained(token string) error
	OnCredentialCleared() error
}

// Session is the single mutable cell for identity, credential and
// ledger. It is driven by one actor at a time; the epoch counter lets
// callers discard async results that started under an earlier session.
type Session struct {
	state      State
	identity   Identity
	credential string
	ledger     ledger.Ledger
	epoch      int
	sink       CredentialSink
}

// New creates an anonymous session. sink may be nil.
func New(sink CredentialSink) *Session {
	return &Session{sink: sink}
}

// State returns the current lifecycle state.
func (s *Session) State() State { return s.state }

// IsAuthenticated reports whether an identity is active.
func (s *Session) IsAuthenticated() bool { return s.state == Authenticated }

// Identity returns the active identity. Only meaningful when
// authenticated.
func (s *Session) Identity() Identity { return s.identity }

// Credential returns the active bearer token, or "" when anonymous.
func (s *Session) Credential() string { return s.credential }

// Epoch returns the current session generation. Async work launched
// under an older epoch must discard its result on completion.
func (s *Session) Epoch() int { return s.epoch }

// Ledger returns the portfolio ledger for the active identity.
func (s *Session) Ledger() ledger.Ledger { return s.ledger }

// Authenticate installs an identity and credential and seeds the ledger
// from the profile's holdings. The persisted credential hook fires; a
// persistence failure is non-fatal since the session itself is live.
func (s *Session) Authenticate(id Identity, credential string, holdings []ledger.Holding) {
	s.state = Authenticated
	s.identity = id
	s.credential = credential
	s.ledger = ledger.FromHoldings(holdings)

	if s.sink != nil {
		_ = s.sink.OnCredentialObtained(credential)
	}
}

// ReplaceLedger installs the server's authoritative holdings list,
// superseding any locally computed state. No-op when anonymous.
func (s *Session) ReplaceLedger(holdings []ledger.Holding) {
	if s.state != Authenticated {
		return
	}
	s.ledger = ledger.FromHoldings(holdings)
}

// Logout drops the identity, credential and ledger and bumps the epoch
// so in-flight results are discarded when they arrive.
func (s *Session) Logout() {
	s.clear()
	if s.sink != nil {
		_ = s.sink.OnCredentialCleared()
	}
}

// Invalidate handles a rejected or expired credential reported by a
// collaborator. Same effect as Logout.
func (s *Session) Invalidate() {
	s.Logout()
}

func (s *Session) clear() {
	s.state = Anonymous
	s.identity = Identity{}
	s.credential = ""
	s.ledger = ledger.Ledger{}
	s.epoch++
}
