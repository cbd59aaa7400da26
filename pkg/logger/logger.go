package logger

import (
	"go.uber.org/zap"
)

var l = zap.NewNop()

// Init builds the process logger: JSON in production, console otherwise.
func Init(production bool) (*zap.Logger, error) {
	var (
		lg  *zap.Logger
		err error
	)
	if production {
		lg, err = zap.NewProduction()
	} else {
		lg, err = zap.NewDevelopment()
	}
	if err != nil {
		return nil, err
	}
	l = lg
	return lg, nil
}

func L() *zap.Logger { return l }

func Sync() { _ = l.Sync() }
