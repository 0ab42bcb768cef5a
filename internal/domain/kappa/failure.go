package kappa

import "errors"

type FailureCode string

const (
	FailureNoKappa        FailureCode = "NO_KAPPA"
	FailureAlreadyDead    FailureCode = "ALREADY_DEAD"
	FailureNotAllowed     FailureCode = "NOT_ALLOWED"
	FailureNotEnoughCoins FailureCode = "NOT_ENOUGH_COINS"
)

// Failure is an expected domain outcome, not a defect. A handler that returns
// one leaves the state untouched and emits no events.
type Failure struct {
	Code    FailureCode `json:"code"`
	Message string      `json:"message"`
}

func (f *Failure) Error() string {
	return string(f.Code) + ": " + f.Message
}

func failNoKappa() error {
	return &Failure{Code: FailureNoKappa, Message: "no kappa in room"}
}

func failAlreadyDead() error {
	return &Failure{Code: FailureAlreadyDead, Message: "kappa is dead"}
}

func failNotAllowed(msg string) error {
	return &Failure{Code: FailureNotAllowed, Message: msg}
}

func failNotEnoughCoins() error {
	return &Failure{Code: FailureNotEnoughCoins, Message: "not enough coins"}
}

// AsFailure unwraps a domain failure from an error chain.
func AsFailure(err error) (*Failure, bool) {
	var f *Failure
	if errors.As(err, &f) {
		return f, true
	}
	return nil, false
}
