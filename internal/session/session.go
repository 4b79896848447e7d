package session

import (
	"math/rand/v2"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/vancomm/minesweeper/internal/mines"
)

// Hooks are called without the session lock held, so they may read the
// session. OnTick runs on the stopwatch goroutine; the rest run on the caller's.
// Every field is optional.
type Hooks struct {
	OnInteraction func()
	OnGameOver    func(mines.MoveResult)
	OnGameWin     func(mines.MoveResult)
	OnReset       func(mines.GameParams)
	OnTick        func(elapsed time.Duration)
}

type Options struct {
	Params       mines.GameParams
	Layout       string /* fixed mine layout, overrides Params */
	Rand         *rand.Rand
	TickInterval time.Duration
	Hooks        Hooks
	Logger       *logrus.Logger
}

// Session drives one player's games: it owns the current board, starts the
// stopwatch on the first interaction and stops it when the game ends or is
// replaced.
type Session struct {
	ID uuid.UUID

	mu      sync.Mutex
	board   *mines.Board
	rng     *rand.Rand
	started bool /* first interaction seen since the last reset */
	watch   *Stopwatch
	hooks   Hooks
	log     *logrus.Entry
}

func New(opts Options) (*Session, error) {
	var (
		board *mines.Board
		err   error
	)
	if opts.Layout != "" {
		board, err = mines.NewBoardFromLayout(opts.Layout)
	} else {
		board, err = mines.NewBoard(opts.Params, opts.Rand)
	}
	if err != nil {
		return nil, err
	}

	logger := opts.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	id := uuid.New()
	s := &Session{
		ID:    id,
		board: board,
		rng:   opts.Rand,
		hooks: opts.Hooks,
		log:   logger.WithField("session", id.String()),
	}
	s.watch = NewStopwatch(opts.TickInterval, opts.Hooks.OnTick)

	s.log.WithField("params", board.GameParams.String()).Info("session started")
	return s, nil
}

type move func(b *mines.Board, row, col int) (mines.MoveResult, error)

func (s *Session) Reveal(row, col int) (mines.MoveResult, error) {
	return s.play("reveal", (*mines.Board).Reveal, row, col)
}

func (s *Session) ToggleFlag(row, col int) (mines.MoveResult, error) {
	return s.play("flag", (*mines.Board).ToggleFlag, row, col)
}

func (s *Session) Chord(row, col int) (mines.MoveResult, error) {
	return s.play("chord", (*mines.Board).Chord, row, col)
}

func (s *Session) play(name string, m move, row, col int) (mines.MoveResult, error) {
	s.mu.Lock()
	if _, err := s.board.Cell(row, col); err != nil {
		s.mu.Unlock()
		return mines.MoveResult{Status: s.board.Status(), Flags: s.board.Flags()}, err
	}

	first := !s.started
	if first {
		s.started = true
		s.watch.Start()
	}

	res, err := m(s.board, row, col)
	over := res.Changed && res.Status != mines.Playing
	s.mu.Unlock()

	if over {
		s.watch.Stop()
	}

	log := s.log.WithFields(logrus.Fields{
		"move":    name,
		"row":     row,
		"col":     col,
		"changed": res.Changed,
	})
	log.Debug("move")

	if first && s.hooks.OnInteraction != nil {
		s.hooks.OnInteraction()
	}
	if res.Changed {
		switch res.Status {
		case mines.Lost:
			log.WithField("elapsed", s.Elapsed().String()).Info("game lost")
			if s.hooks.OnGameOver != nil {
				s.hooks.OnGameOver(res)
			}
		case mines.Won:
			log.WithField("elapsed", s.Elapsed().String()).Info("game won")
			if s.hooks.OnGameWin != nil {
				s.hooks.OnGameWin(res)
			}
		}
	}
	return res, err
}

// Reset starts a new game with the current parameters.
func (s *Session) Reset() {
	s.mu.Lock()
	s.board.Reset()
	s.started = false
	params := s.board.GameParams
	s.mu.Unlock()
	s.watch.Clear()

	s.log.WithField("params", params.String()).Debug("reset")
	if s.hooks.OnReset != nil {
		s.hooks.OnReset(params)
	}
}

// SetDifficulty replaces the board with a fresh random one. The current game
// is kept if params are invalid.
func (s *Session) SetDifficulty(params mines.GameParams) error {
	board, err := mines.NewBoard(params, s.rng)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.board = board
	s.started = false
	s.mu.Unlock()
	s.watch.Clear()

	s.log.WithField("params", params.String()).Info("difficulty changed")
	if s.hooks.OnReset != nil {
		s.hooks.OnReset(params)
	}
	return nil
}

func (s *Session) Snapshot() mines.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.board.Snapshot()
}

func (s *Session) Params() mines.GameParams {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.board.GameParams
}

func (s *Session) Status() mines.Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.board.Status()
}

func (s *Session) Elapsed() time.Duration {
	return s.watch.Elapsed()
}

func (s *Session) TimerRunning() bool {
	return s.watch.Running()
}

// Close stops the stopwatch. The session must not be used afterwards.
func (s *Session) Close() {
	if s.watch.Stop() {
		s.log.Debug("timer stopped on close")
	}
}
