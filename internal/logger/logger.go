package logger

import (
	"strings"

	"go.uber.org/zap"
)

// New builds a JSON production logger for "prod" and a console development
// logger for anything else.
func New(mode string) (*zap.Logger, error) {
	var cfg zap.Config
	switch strings.ToLower(mode) {
	case "prod", "production":
		cfg = zap.NewProductionConfig()
	default:
		cfg = zap.NewDevelopmentConfig()
	}
	return cfg.Build()
}
