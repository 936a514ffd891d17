// Package effects describes the side effects of a submission step as data.
// Core packages return effects; the app layer performs them in order.
package effects

// Effect is one side effect to perform.
type Effect interface {
	EffectType() string
}

// Level is the severity of a LogEffect.
type Level int

const (
	LevelInfo Level = iota
	LevelDebug
	LevelWarn
	LevelError
)

// LogEffect asks the shell to write a structured log entry.
type LogEffect struct {
	Level   Level
	Message string
	Fields  map[string]any
}

func (e LogEffect) EffectType() string { return "log" }

// CompositeEffect is performed in order and stops at the first failing member.
type CompositeEffect struct {
	Effects []Effect
}

func (e CompositeEffect) EffectType() string { return "composite" }

// NoEffect does nothing.
type NoEffect struct{}

func (e NoEffect) EffectType() string { return "none" }
