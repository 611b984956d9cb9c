package frost

import (
	"fmt"
	"io"
	"sync"

	"github.com/rs/zerolog"

	"github.com/puzzlehq/aleo-frost/pkg/account"
)

// SessionState tracks a session's progress through the protocol order.
type SessionState int

const (
	// StateIdle is the initial state, no nonce material exists yet.
	StateIdle SessionState = iota
	// StatePreprocessed means the nonce is held and the commitment published.
	StatePreprocessed
	// StateBound means the signing set and message are fixed.
	StateBound
	// StatePartiallySigned means the own contribution is computed and the
	// nonce is spent.
	StatePartiallySigned
	// StateAggregated is the terminal success state.
	StateAggregated
	// StateFailed is the terminal failure state. A failed session cannot be
	// retried, a new one must start from preprocessing with a fresh nonce.
	StateFailed
)

func (s SessionState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StatePreprocessed:
		return "preprocessed"
	case StateBound:
		return "bound"
	case StatePartiallySigned:
		return "partially signed"
	case StateAggregated:
		return "aggregated"
	case StateFailed:
		return "failed"
	default:
		return fmt.Sprintf("unknown(%d)", int(s))
	}
}

// Session drives one signing attempt for a single participant through
//
//	Idle → Preprocessed → Bound → PartiallySigned → Aggregated,
//
// enforcing the ordering that the pure functions of this package assume.
// Round exchange stays with the caller: publish the commitment returned by
// Preprocess, hand the collected commitments to Bind, publish the partial
// from PartialSign and hand the collected partials to Aggregate.
//
// Operation failures move the session to StateFailed, which is terminal.
// Calling an operation in the wrong state returns ErrSessionState and
// leaves the session untouched.
//
// A Session may be shared between goroutines. Log defaults to a disabled
// logger, set it before the first operation to observe transitions.
type Session struct {
	mtx sync.Mutex
	Log zerolog.Logger

	share *KeyShare
	state SessionState
	err   error

	nonce      *SigningNonce
	commitment *SigningCommitment
	set        *SigningSet
	message    []byte
	partial    *PartialSignature
}

// NewSession creates an idle session for the given share.
func NewSession(share *KeyShare) (*Session, error) {
	if err := share.Validate(); err != nil {
		return nil, err
	}
	return &Session{
		Log:   zerolog.Nop(),
		share: share,
		state: StateIdle,
	}, nil
}

// State returns the current session state.
func (s *Session) State() SessionState {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	return s.state
}

// Err returns the failure that moved the session to StateFailed, if any.
func (s *Session) Err() error {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	return s.err
}

// Preprocess generates this session's nonce pair and returns the commitment
// to publish to the other participants.
func (s *Session) Preprocess(rand io.Reader) (*SigningCommitment, error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	if s.state != StateIdle {
		return nil, fmt.Errorf("%w: preprocess in state %s", ErrSessionState, s.state)
	}

	nonces, commitments, err := Preprocess(s.share.Curve(), 1, s.share.ID, rand)
	if err != nil {
		return nil, s.fail(err)
	}
	s.nonce = nonces[0]
	s.commitment = commitments[0]
	s.state = StatePreprocessed
	s.Log.Debug().Stringer("party", s.share.ID).Msg("preprocessed")
	return s.commitment, nil
}

// Bind fixes the message and the signing set for this session. The
// commitments are the ones collected from the participating parties; the
// session's own commitment is added if the caller did not include it.
func (s *Session) Bind(message []byte, commitments []*SigningCommitment) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	if s.state != StatePreprocessed {
		return fmt.Errorf("%w: bind in state %s", ErrSessionState, s.state)
	}

	all := commitments
	ownIncluded := false
	for _, commitment := range commitments {
		if commitment != nil && commitment.ID == s.share.ID {
			ownIncluded = true
			break
		}
	}
	if !ownIncluded {
		all = append(append([]*SigningCommitment(nil), commitments...), s.commitment)
	}

	set, err := NewSigningSet(s.share.Curve(), all)
	if err != nil {
		return s.fail(err)
	}
	s.set = set
	s.message = append([]byte(nil), message...)
	s.state = StateBound
	s.Log.Debug().Stringer("party", s.share.ID).Int("signers", set.Len()).Msg("bound")
	return nil
}

// PartialSign computes the session's own contribution, spending the nonce.
func (s *Session) PartialSign() (*PartialSignature, error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	if s.state != StateBound {
		return nil, fmt.Errorf("%w: partial sign in state %s", ErrSessionState, s.state)
	}

	partial, err := PartialSign(s.share, s.nonce, s.set, s.message)
	if err != nil {
		return nil, s.fail(err)
	}
	s.partial = partial
	s.state = StatePartiallySigned
	s.Log.Debug().Stringer("party", s.share.ID).Msg("partially signed")
	return partial, nil
}

// Aggregate folds the collected partial signatures into the final
// signature. The session's own partial is added if the caller did not
// include it.
func (s *Session) Aggregate(partials []*PartialSignature) (*account.Signature, error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	if s.state != StatePartiallySigned {
		return nil, fmt.Errorf("%w: aggregate in state %s", ErrSessionState, s.state)
	}

	all := partials
	ownIncluded := false
	for _, partial := range partials {
		if partial != nil && partial.ID == s.share.ID {
			ownIncluded = true
			break
		}
	}
	if !ownIncluded {
		all = append(append([]*PartialSignature(nil), partials...), s.partial)
	}

	signature, err := Aggregate(s.share.GroupKey, s.set, s.message, all)
	if err != nil {
		return nil, s.fail(err)
	}
	s.state = StateAggregated
	s.Log.Info().Stringer("party", s.share.ID).Msg("aggregated")
	return signature, nil
}

// fail records the error and moves the session to its terminal failure
// state. Must be called with the mutex held.
func (s *Session) fail(err error) error {
	s.state = StateFailed
	s.err = err
	s.Log.Error().Stringer("party", s.share.ID).Err(err).Msg("session failed")
	return err
}
