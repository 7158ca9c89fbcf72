// Package config
package config

import "fmt"

type validType int

const (
	PASS validType = iota
	FAIL
)

// ValidResult is returned by every section check; OriginErr keeps the underlying parse error if any
type ValidResult struct {
	validType validType
	err       error
	originErr error
}

func ValidPass() *ValidResult {
	return &ValidResult{validType: PASS}
}

func ValidFail(err error) *ValidResult {
	return &ValidResult{validType: FAIL, err: err}
}

func ValidFailWith(err error, originErr error) *ValidResult {
	return &ValidResult{validType: FAIL, err: err, originErr: originErr}
}

func ValidFailF(format string, v ...interface{}) *ValidResult {
	return ValidFail(fmt.Errorf(format, v...))
}

func (r *ValidResult) IsFail() bool {
	return r.validType == FAIL
}

func (r *ValidResult) Error() error {
	return r.err
}

func (r *ValidResult) OriginErr() error { return r.originErr }

// Cause prefers the origin error, falling back to the summary
func (r *ValidResult) Cause() error {
	if r.originErr != nil {
		return r.originErr
	}
	return r.err
}
