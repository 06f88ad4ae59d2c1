// Package apperr defines the error taxonomy shared by services and the HTTP
// error middleware.
package apperr

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrRoomNotFound is returned when the backing interview record does not
	// exist (never created or deleted).
	ErrRoomNotFound = errors.New("interview room not found")

	// ErrRoomClosed is returned for any mutating operation against a room in
	// the terminal closed phase.
	ErrRoomClosed = errors.New("interview room is closed")

	ErrCandidateNotFound = errors.New("candidate not found")
	ErrSettingsNotFound  = errors.New("deliberation settings not found")
	ErrLevelNotFound     = errors.New("level not found")

	// ErrDeliberationClosed gates non-privileged voters while the settings
	// record has open=false.
	ErrDeliberationClosed = errors.New("deliberations are closed")

	// ErrAlreadyFinalized rejects a second finalization pass after a prior
	// successful commit.
	ErrAlreadyFinalized = errors.New("deliberation already finalized")

	// ErrCommitConflict signals a version mismatch on a whole-row update.
	// Callers retry with a fresh read up to a bounded count before surfacing.
	ErrCommitConflict = errors.New("commit conflict")

	// ErrFinalizeInProgress is returned when the exclusive finalize marker is
	// already held by another initiator.
	ErrFinalizeInProgress = errors.New("finalization already in progress")

	ErrForbidden    = errors.New("forbidden")
	ErrUnauthorized = errors.New("unauthorized")

	// ErrTransportUnavailable is returned when the event bus cannot be
	// reached. Background workers surface it at startup; the container logs
	// it and continues in a degraded no-worker mode, never fatal.
	ErrTransportUnavailable = errors.New("channel transport unavailable")
)

// GateFailure reports the candidates that block finalization. No writes have
// occurred when this error is returned.
type GateFailure struct {
	CandidateIDs []string
}

func (e *GateFailure) Error() string {
	return fmt.Sprintf("finalization gate failed: missing feedback for denied candidates [%s]",
		strings.Join(e.CandidateIDs, ", "))
}

// AsGateFailure unwraps err into a *GateFailure if it is one.
func AsGateFailure(err error) (*GateFailure, bool) {
	var gf *GateFailure
	if errors.As(err, &gf) {
		return gf, true
	}
	return nil, false
}
