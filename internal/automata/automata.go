// Package automata is a small pushdown state machine. States are kept on an
// explicit stack so nesting depth is bounded by memory, not by the Go call
// stack.
package automata

import (
	"errors"
)

var (
	ErrNoInitialState = errors.New("automata: no initial state")
	ErrEmptyStack     = errors.New("automata: state stack is empty")
)

// State is one node of the machine. Run may push, pop or replace states
// through m; returning an error halts the machine.
type State[C any] interface {
	Run(m *Machine[C]) error
	Name() string
}

// Event identifies a stack operation reported to tracers.
type Event uint8

const (
	EventPush Event = iota
	EventPop
	EventTransition
	EventTerminate
	EventFatal
)

func (e Event) String() string {
	switch e {
	case EventPush:
		return "PUSH"
	case EventPop:
		return "POP"
	case EventTransition:
		return "TRANSITION"
	case EventTerminate:
		return "TERMINATE"
	case EventFatal:
		return "FATAL"
	}
	return "UNKNOWN"
}

// Tracer observes the machine after every stack operation.
type Tracer[C any] func(ev Event, m *Machine[C])

type Machine[C any] struct {
	ctx     C
	stack   []State[C]
	tracers []Tracer[C]
	done    bool
}

func New[C any](ctx C, initial State[C]) *Machine[C] {
	m := &Machine[C]{ctx: ctx}
	if initial != nil {
		m.stack = append(m.stack, initial)
	}
	return m
}

func (m *Machine[C]) Context() C { return m.ctx }

func (m *Machine[C]) Depth() int { return len(m.stack) }

// Current returns the state on top of the stack, or nil.
func (m *Machine[C]) Current() State[C] {
	if len(m.stack) == 0 {
		return nil
	}
	return m.stack[len(m.stack)-1]
}

// Stack returns the state names from bottom to top.
func (m *Machine[C]) Stack() []string {
	names := make([]string, len(m.stack))
	for i, s := range m.stack {
		names[i] = s.Name()
	}
	return names
}

func (m *Machine[C]) AddTracer(t Tracer[C]) { m.tracers = append(m.tracers, t) }

func (m *Machine[C]) trace(ev Event) {
	for _, t := range m.tracers {
		t(ev, m)
	}
}

func (m *Machine[C]) Push(s State[C]) {
	m.stack = append(m.stack, s)
	m.trace(EventPush)
}

// Transition replaces the current state with s.
func (m *Machine[C]) Transition(s State[C]) error {
	if len(m.stack) == 0 {
		return ErrEmptyStack
	}
	m.stack[len(m.stack)-1] = s
	m.trace(EventTransition)
	return nil
}

func (m *Machine[C]) Pop() error {
	if len(m.stack) == 0 {
		return ErrEmptyStack
	}
	m.stack[len(m.stack)-1] = nil
	m.stack = m.stack[:len(m.stack)-1]
	m.trace(EventPop)
	return nil
}

// Terminate clears the stack so RunUntilComplete returns after the
// current step.
func (m *Machine[C]) Terminate() {
	clear(m.stack)
	m.stack = m.stack[:0]
	m.done = true
	m.trace(EventTerminate)
}

// Update runs the current state once.
func (m *Machine[C]) Update() error {
	s := m.Current()
	if s == nil {
		return ErrEmptyStack
	}
	if err := s.Run(m); err != nil {
		m.trace(EventFatal)
		return err
	}
	return nil
}

// RunUntilComplete steps the machine until its stack is empty.
func (m *Machine[C]) RunUntilComplete() error {
	if len(m.stack) == 0 && !m.done {
		return ErrNoInitialState
	}
	for len(m.stack) > 0 {
		if err := m.Update(); err != nil {
			return err
		}
	}
	return nil
}
