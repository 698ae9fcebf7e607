// Package activity is the boundary to the status/activity display. Calls are
// fire-and-forget: a broken or missing display must never affect a dispatch
// result, so every implementation swallows its own failures.
package activity

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"go.uber.org/zap"
)

// State is the assistant's externally visible activity state
type State string

const (
	StateIdle       State = "idle"
	StateListening  State = "listening"
	StateThinking   State = "thinking"
	StateResponding State = "responding"
	StateError      State = "error"
)

// Sink receives activity updates from the engine
type Sink interface {
	Log(message string)
	SetState(state State, message string)
}

// NopSink discards all activity updates
type NopSink struct{}

func (NopSink) Log(string)             {}
func (NopSink) SetState(State, string) {}

// ConsoleSink renders activity to the terminal with colored state markers
type ConsoleSink struct {
	stateColors map[State]*color.Color
}

// NewConsoleSink creates a terminal-backed activity sink
func NewConsoleSink() *ConsoleSink {
	return &ConsoleSink{
		stateColors: map[State]*color.Color{
			StateIdle:       color.New(color.FgGreen),
			StateListening:  color.New(color.FgCyan),
			StateThinking:   color.New(color.FgYellow),
			StateResponding: color.New(color.FgBlue),
			StateError:      color.New(color.FgRed, color.Bold),
		},
	}
}

// Log prints a timestamped activity line
func (s *ConsoleSink) Log(message string) {
	defer func() { _ = recover() }()
	fmt.Printf("  [%s] %s\n", time.Now().Format("15:04:05"), message)
}

// SetState prints the new state with its color
func (s *ConsoleSink) SetState(state State, message string) {
	defer func() { _ = recover() }()
	c, ok := s.stateColors[state]
	if !ok {
		c = color.New(color.FgWhite)
	}
	c.Printf("● %s", state)
	if message != "" {
		fmt.Printf(": %s", message)
	}
	fmt.Println()
}

// LoggerSink forwards activity into a zap logger
type LoggerSink struct {
	logger *zap.Logger
}

// NewLoggerSink creates a zap-backed activity sink
func NewLoggerSink(logger *zap.Logger) *LoggerSink {
	return &LoggerSink{logger: logger}
}

func (s *LoggerSink) Log(message string) {
	s.logger.Info("activity", zap.String("message", message))
}

func (s *LoggerSink) SetState(state State, message string) {
	s.logger.Info("state change", zap.String("state", string(state)), zap.String("message", message))
}
