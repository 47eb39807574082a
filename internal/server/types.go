package server

import "github.com/verte-zerg/typemaster/internal/model"

// Engine is the session engine the HTTP surface drives.
type Engine interface {
	Snapshot() model.Snapshot
	Start() model.Snapshot
	Reset() model.Snapshot
	Submit(text string) model.Snapshot
	SetTimeLimit(seconds int) model.Snapshot
	SetMode(mode model.Mode) model.Snapshot
	Subscribe() (<-chan model.Snapshot, func())
}

// InputRequest is the body of POST /v1/session/input.
type InputRequest struct {
	Text string `json:"text"`
}

// TimeLimitRequest is the body of PUT /v1/session/time-limit.
type TimeLimitRequest struct {
	Seconds int `json:"seconds"`
}

// ModeRequest is the body of PUT /v1/session/mode.
type ModeRequest struct {
	Mode string `json:"mode"`
}

// ErrorResponse is returned with every non-2xx status.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}
