// Package log
package log

import (
	"context"

	"github.com/half-nothing/airport-booking/internal/interfaces/global"
)

// NullLogger drops everything, used where no sink is wired such as tests
type NullLogger struct{}

func NewNullLogger() *NullLogger { return &NullLogger{} }

func (*NullLogger) Init(bool) {}

func (*NullLogger) ShutdownCallback() global.Callable {
	return global.CallableFunc(func(context.Context) error { return nil })
}

func (*NullLogger) Debug(string, ...interface{})  {}
func (*NullLogger) DebugF(string, ...interface{}) {}
func (*NullLogger) Info(string, ...interface{})   {}
func (*NullLogger) InfoF(string, ...interface{})  {}
func (*NullLogger) Warn(string, ...interface{})   {}
func (*NullLogger) WarnF(string, ...interface{})  {}
func (*NullLogger) Error(string, ...interface{})  {}
func (*NullLogger) ErrorF(string, ...interface{}) {}
func (*NullLogger) Fatal(string, ...interface{})  {}
func (*NullLogger) FatalF(string, ...interface{}) {}
