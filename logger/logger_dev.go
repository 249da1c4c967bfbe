//go:build dev
// +build dev

package logger

import "go.uber.org/zap"

// Dev builds log human readable lines with caller and stack information
func newConfig() zap.Config {
	return zap.NewDevelopmentConfig()
}
