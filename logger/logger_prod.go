//go:build !dev
// +build !dev

package logger

import "go.uber.org/zap"

func newConfig() zap.Config {
	cfg := zap.NewProductionConfig()
	cfg.DisableStacktrace = true
	cfg.Sampling = nil
	return cfg
}
