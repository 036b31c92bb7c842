package controller

import (
	m "github.com/mouse-blink/bodyscan/internal/model"
)

// Message types.
type renderMsg struct {
	state m.RenderState
}

type noticeMsg struct {
	notice m.Notice
}

type resultMsg struct {
	result m.Result
	err    error
}

type pulseMsg struct{}
