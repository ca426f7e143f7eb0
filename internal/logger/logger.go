package logger

import "go.uber.org/zap"

// New monta o logger da aplicação. Construído uma única vez no main e
// passado explicitamente para quem precisa (nada de singleton global).
func New(env string) (*zap.Logger, error) {
	if env == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
