package models

import "encoding/json"

// Envelope is the wrapper every backend response uses.
type Envelope[T any] struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    T      `json:"data"`
}

// RawEnvelope keeps the payload undecoded.
type RawEnvelope = Envelope[json.RawMessage]

// MessageOr returns the server message or fallback when it is empty.
func (e Envelope[T]) MessageOr(fallback string) string {
	if e.Message != "" {
		return e.Message
	}
	return fallback
}
