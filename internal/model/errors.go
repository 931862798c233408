package model

import (
	"errors"
	"fmt"
)

// ErrContract marks a transport that does not conform to the capability
// contract. it signals a broken integration, not a failed remote call, and
// must never be translated into a service error.
var ErrContract = errors.New("non-conforming transport")

// ContractError reports which capability the transport's response failed to
// expose. matches [ErrContract] under [errors.Is].
type ContractError struct {
	Missing string
}

func (e *ContractError) Error() string {
	return fmt.Sprintf("non-conforming transport: missing %s", e.Missing)
}

func (e *ContractError) Unwrap() error { return ErrContract }
