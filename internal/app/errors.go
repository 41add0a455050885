// internal/app/errors.go
package app

import (
	"errors"
	"fmt"
)

// Reason is the machine-readable cause of a rejected command.
type Reason string

const (
	ReasonTooCloseToCore     Reason = "TOO_CLOSE_TO_CORE"
	ReasonObstruction        Reason = "OBSTRUCTION"
	ReasonSpaceOccupied      Reason = "SPACE_OCCUPIED"
	ReasonInsufficientEnergy Reason = "INSUFFICIENT_ENERGY"
	ReasonConnectionExists   Reason = "CONNECTION_EXISTS"
	ReasonPathBlocked        Reason = "PATH_BLOCKED"
	ReasonUnknownTowerType   Reason = "UNKNOWN_TOWER_TYPE"
	ReasonNodeNotFound       Reason = "NODE_NOT_FOUND"
	ReasonSameNode           Reason = "SAME_NODE"
	ReasonCannotSellCore     Reason = "CANNOT_SELL_CORE"
	ReasonWaveActive         Reason = "WAVE_ACTIVE"
	ReasonNoPreview          Reason = "NO_PREVIEW"
	ReasonInvalidCommand     Reason = "INVALID_COMMAND"
)

// Rejection — команда не прошла проверку; состояние не изменилось.
type Rejection struct {
	Reason  Reason
	Message string
	Err     error
}

func (e *Rejection) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Reason, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Reason, e.Message)
}

func (e *Rejection) Unwrap() error {
	return e.Err
}

func rejectf(reason Reason, format string, args ...any) error {
	return &Rejection{Reason: reason, Message: fmt.Sprintf(format, args...)}
}

func wrapReject(reason Reason, message string, err error) error {
	return &Rejection{Reason: reason, Message: message, Err: err}
}

// ReasonOf extracts the rejection reason, or "" if err is not a Rejection.
func ReasonOf(err error) Reason {
	var r *Rejection
	if errors.As(err, &r) {
		return r.Reason
	}
	return ""
}
