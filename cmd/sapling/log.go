package main

import (
	"go.uber.org/zap"
)

// logger writes progress messages to stderr when verbose is enabled
type logger struct {
	sugar *zap.SugaredLogger
}

func (rcc *rootCmdConfig) Logf(format string, a ...interface{}) {
	rcc.log().Infof(format, a...)
}

func (rcc *rootCmdConfig) log() *zap.SugaredLogger {
	if rcc.sugar != nil {
		return rcc.sugar
	}
	l := zap.NewNop()
	if rcc.verbose {
		config := zap.NewDevelopmentConfig()
		config.DisableStacktrace = true
		if dl, err := config.Build(); err == nil {
			l = dl
		}
	}
	rcc.sugar = l.Sugar()
	return rcc.sugar
}

func (rcc *rootCmdConfig) syncLog() {
	if rcc.sugar != nil {
		rcc.sugar.Sync()
	}
}
