package utils

import (
	"go.uber.org/zap"
)

// NewLogger builds a sugared zap logger; development gets the human-readable
// console encoder, anything else the production JSON one.
func NewLogger(env string) (*zap.SugaredLogger, error) {
	var z *zap.Logger
	var err error
	if env == "development" {
		z, err = zap.NewDevelopmentConfig().Build()
	} else {
		z, err = zap.NewProduction()
	}
	if err != nil {
		return nil, err
	}
	return z.Sugar(), nil
}
