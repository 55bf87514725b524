package utils

import "github.com/google/uuid"

// TraceIDGenerator issues request trace ids. Time-ordered v7 ids are
// preferred so that log lines sort by arrival.
type TraceIDGenerator struct{}

func NewTraceIDGenerator() *TraceIDGenerator {
	return &TraceIDGenerator{}
}

func (g *TraceIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
