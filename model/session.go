package model

import (
	"math/rand"

	"github.com/pkg/errors"
)

// Command is a discrete control signal mapped from user input by the driver
type Command int

const (
	CommandStart Command = iota
	CommandPause
	CommandClear
	CommandStep
	CommandRandomize
	CommandPatterns
	CommandScatter
)

var commandNames = map[Command]string{
	CommandStart:     "start",
	CommandPause:     "pause",
	CommandClear:     "clear",
	CommandStep:      "step",
	CommandRandomize: "randomize",
	CommandPatterns:  "patterns",
	CommandScatter:   "scatter",
}

func (c Command) String() string {
	if name, ok := commandNames[c]; ok {
		return name
	}
	return "unknown"
}

// ErrUnknownCommand is returned by Apply for commands it does not handle
var ErrUnknownCommand = errors.New("unknown command")

// Status summarises the session for display
type Status string

const (
	StatusPaused   Status = "Paused"
	StatusActive   Status = "Active"
	StatusStagnant Status = "Stagnant"
	StatusExtinct  Status = "Extinct"
)

// Session owns a board and its run state. The driver holds one and feeds it
// commands, clicks and ticks
type Session struct {
	grid       *Grid
	engine     *Engine
	history    History
	running    bool
	generation int
	stagnant   bool

	density   float64
	noiseSeed int64
	rng       *rand.Rand
}

// SessionOptions configures a new session
type SessionOptions struct {
	Columns   int
	Rows      int
	Workers   int
	Density   float64 // live fraction used by CommandRandomize and CommandScatter
	NoiseSeed int64   // first noise seed, incremented per CommandRandomize; also seeds CommandScatter
}

// NewSession creates a paused session over an all-dead grid
func NewSession(opts SessionOptions) *Session {
	return &Session{
		grid:      NewGrid(opts.Columns, opts.Rows),
		engine:    NewEngine(opts.Workers),
		density:   opts.Density,
		noiseSeed: opts.NoiseSeed,
		rng:       rand.New(rand.NewSource(opts.NoiseSeed)),
	}
}

// Grid returns the session's board
func (s *Session) Grid() *Grid {
	return s.grid
}

// Running reports whether ticks advance the board
func (s *Session) Running() bool {
	return s.running
}

// Generation returns the number of generations advanced since the last reset
func (s *Session) Generation() int {
	return s.generation
}

// Apply executes a control command
func (s *Session) Apply(cmd Command) error {
	switch cmd {
	case CommandStart:
		s.running = true
	case CommandPause:
		s.running = false
	case CommandClear:
		s.grid.Clear()
		s.reset()
	case CommandStep:
		if !s.running {
			s.advance()
		}
	case CommandRandomize:
		SeedNoise(s.grid, s.density, s.noiseSeed)
		s.noiseSeed++
		s.reset()
	case CommandPatterns:
		AddDemoPatterns(s.grid)
		s.reset()
	case CommandScatter:
		Randomize(s.grid, s.density, s.rng)
		s.reset()
	default:
		return errors.Wrapf(ErrUnknownCommand, "[Session.Apply] command %d", int(cmd))
	}
	return nil
}

// Click toggles a cell while the session is paused. It reports whether the
// cell changed
func (s *Session) Click(column, row int) bool {
	if s.running || !s.grid.Contains(column, row) {
		return false
	}
	s.grid.Toggle(column, row)
	s.stagnant = false
	s.history.Reset()
	return true
}

// ClickAt hit-tests a pixel against the layout and toggles the cell under it
func (s *Session) ClickAt(l Layout, x, y int) bool {
	column, row, ok := l.CellAtPoint(s.grid, x, y)
	if !ok {
		return false
	}
	return s.Click(column, row)
}

// Tick advances the board by exactly one generation when running
func (s *Session) Tick() {
	if s.running {
		s.advance()
	}
}

// Status returns the display status of the session
func (s *Session) Status() Status {
	switch {
	case !s.running:
		return StatusPaused
	case s.grid.CountLivingCells() == 0:
		return StatusExtinct
	case s.stagnant:
		return StatusStagnant
	default:
		return StatusActive
	}
}

// advance hashes each generation once: the digest of the new board is checked
// against history and then recorded as the predecessor of the next one
func (s *Session) advance() {
	if s.history.Len() == 0 {
		s.history.Record(s.grid.Hash())
	}
	s.engine.Advance(s.grid)
	s.generation++

	d := s.grid.Hash()
	s.stagnant = s.history.Stagnant(d)
	s.history.Record(d)
}

func (s *Session) reset() {
	s.generation = 0
	s.stagnant = false
	s.history.Reset()
}
