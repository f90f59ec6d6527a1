package engine

import (
	"context"
	"errors"
	"fmt"
	"time"

	"zen/agent"
	"zen/experiments/metrics"
	"zen/game"
	"zen/meta"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

var (
	ErrAgentExhausted   = errors.New("agent found no legal move")
	ErrIllegalAgentMove = errors.New("agent proposed an illegal move")
	ErrGameOver         = errors.New("game is over")
)

// Ending tells how a match stopped.
type Ending int

const (
	EndingNone Ending = iota
	EndingWin
	EndingTie
	EndingTurnLimit
)

func (e Ending) String() string {
	switch e {
	case EndingWin:
		return "win"
	case EndingTie:
		return "tie"
	case EndingTurnLimit:
		return "turn_limit"
	default:
		return "none"
	}
}

type Result struct {
	MatchID string
	Ending  Ending
	Winner  game.Owner // NoOwner unless Ending is EndingWin
	Loser   game.Owner
	Turns   int
	Scores  [2]int // cumulative, PlayerA first
}

func (r Result) IsTie() bool {
	return r.Ending == EndingTie
}

// Outcome describes one applied move.
type Outcome struct {
	Mover    game.Owner
	Move     game.MoveIntent
	Captured *game.Piece
	Over     bool
}

type Engine struct {
	ID    string
	State *game.State

	seats     [2]Controller
	config    game.Config
	layout    game.Layout
	starting  game.Owner
	maxTurns  int
	collab    Collaborator
	collector metrics.Collector

	turns     int
	result    *Result
	startTime time.Time
	endTime   time.Time
	moves     []metrics.MoveMetric
}

type Option func(*Engine)

// WithMaxTurns caps the number of applied moves; 0 removes the cap.
func WithMaxTurns(n int) Option {
	return func(e *Engine) {
		if n >= 0 {
			e.maxTurns = n
		}
	}
}

// WithCollaborator sets who is told about applied moves and the end of the
// game. Human seats carry their own collaborator for prompts.
func WithCollaborator(c Collaborator) Option {
	return func(e *Engine) {
		e.collab = c
	}
}

func WithMetrics(c metrics.Collector) Option {
	return func(e *Engine) {
		e.collector = c
	}
}

func WithStartingPlayer(side game.Owner) Option {
	return func(e *Engine) {
		e.starting = side
	}
}

func WithMatchID(id string) Option {
	return func(e *Engine) {
		e.ID = id
	}
}

// WithBoardSize plays the standard opening on a size×size board.
func WithBoardSize(size int) Option {
	return func(e *Engine) {
		e.config.Size = size
		e.layout = game.StandardLayout(size)
	}
}

// WithLayout plays on a custom board instead of the standard opening.
func WithLayout(cfg game.Config, layout game.Layout) Option {
	return func(e *Engine) {
		e.config = cfg
		e.layout = layout
	}
}

// New sets up a match between a (PlayerA) and b (PlayerB).
func New(a, b Controller, options ...Option) (*Engine, error) {
	if a == nil || b == nil {
		return nil, fmt.Errorf("cannot create engine: need two controllers")
	}
	e := &Engine{
		ID:        uuid.NewString(),
		seats:     [2]Controller{a, b},
		config:    game.Config{Size: meta.BOARD_SIZE, PiecesPerPlayer: meta.PIECES_PER_PLAYER},
		layout:    game.StandardLayout(meta.BOARD_SIZE),
		starting:  game.PlayerA,
		maxTurns:  meta.MAX_TURNS,
		collab:    nopCollaborator{},
		collector: metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(e)
	}
	if e.starting != game.PlayerA && e.starting != game.PlayerB {
		return nil, fmt.Errorf("cannot start a match with %s", e.starting)
	}
	if err := e.reset(); err != nil {
		return nil, err
	}
	return e, nil
}

// reset puts fresh pieces on the starting layout, keeping the scores.
func (e *Engine) reset() error {
	s, err := game.NewState(e.config, e.seats[0].Name(), e.seats[1].Name(), e.layout)
	if err != nil {
		return fmt.Errorf("cannot set up match: %w", err)
	}
	if e.State != nil {
		for i, p := range e.State.Players {
			s.Players[i].Score = p.Score
		}
	}
	s.SetActive(e.starting)

	e.State = s
	e.turns = 0
	e.result = nil
	e.moves = nil
	e.startTime = time.Now()
	e.endTime = time.Time{}
	return nil
}

// Replay starts a new match on the same seats under a new ID.
func (e *Engine) Replay() error {
	if err := e.reset(); err != nil {
		return err
	}
	e.ID = uuid.NewString()
	log.Info().Str("match", e.ID).Msgf("replaying, score %d:%d", e.State.Players[0].Score, e.State.Players[1].Score)
	return nil
}

// Run drives the match until it ends. Rejected human moves are re-prompted;
// a failing agent or collaborator aborts the match and leaves the state as it
// was before the failed turn.
func (e *Engine) Run(ctx context.Context) (Result, error) {
	if e.result != nil {
		return *e.result, ErrGameOver
	}
	log.Info().Str("match", e.ID).Msgf("%s is starting", e.State.Player(e.State.Active()).Name)

	for e.result == nil {
		if e.maxTurns > 0 && e.turns >= e.maxTurns {
			e.finish(EndingTurnLimit, game.NoOwner)
			break
		}
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}

		m, err := e.await(ctx)
		if err != nil {
			log.Error().Str("match", e.ID).Err(err).Msgf("aborting after %d turns", e.turns)
			aborted := e.collector.Complete()
			aborted.Aborted = true
			e.moves = append(e.moves, aborted)
			return Result{}, err
		}

		out, err := e.Play(m)
		if err != nil {
			panic(fmt.Sprintf("validated move %s rejected: %v", m, err))
		}
		e.collector.SetCapture(out.Captured != nil)
		e.moves = append(e.moves, e.collector.Complete())
	}
	return *e.result, nil
}

// await asks the active seat until it proposes a move the validator accepts.
func (e *Engine) await(ctx context.Context) (game.MoveIntent, error) {
	side := e.State.Active()
	self, opponent := e.State.Player(side), e.State.Player(side.Opponent())
	seat := e.seat(side)
	e.collector.Start(e.ID, e.turns+1, self.Name)

	for {
		m, err := seat.NextMove(ctx, e.State, self, opponent)
		if err != nil {
			return game.MoveIntent{}, err
		}
		if r, ok := seat.(agent.Reporter); ok {
			d := r.LastDecision()
			e.collector.SetTier(d.Tier.String())
			e.collector.AddAttempts(d.Attempts)
		} else {
			e.collector.AddAttempts(1)
		}

		reason := game.Validate(e.State, side, m)
		if reason == nil {
			return m, nil
		}
		log.Debug().Str("match", e.ID).Msgf("%s tried %s: %v", self.Name, m, reason)
		if err := seat.Reject(self, m, reason); err != nil {
			return game.MoveIntent{}, err
		}
	}
}

// Play applies m for the active player, then checks both sides for a
// connected set. Rule violations come back as returned by game.Validate and
// leave the state untouched.
func (e *Engine) Play(m game.MoveIntent) (Outcome, error) {
	if e.result != nil {
		return Outcome{}, ErrGameOver
	}
	side := e.State.Active()
	captured, err := e.State.Apply(side, m)
	if err != nil {
		return Outcome{}, err
	}
	e.turns++
	self := e.State.Player(side)
	log.Debug().Str("match", e.ID).Msgf("turn %d: %s plays %s", e.turns, self.Name, m)
	if captured != nil {
		log.Info().Str("match", e.ID).Msgf("%s captured %s piece %d on %s", self.Name, captured.Owner, captured.ID, captured.Pos)
	}

	e.State.SetActive(side.Opponent())
	e.collab.NotifyMoveApplied(self, m)

	connectedA, connectedB := e.State.Connected(game.PlayerA), e.State.Connected(game.PlayerB)
	switch {
	case connectedA && connectedB:
		e.finish(EndingTie, game.NoOwner)
	case connectedA:
		e.finish(EndingWin, game.PlayerA)
	case connectedB:
		e.finish(EndingWin, game.PlayerB)
	}

	return Outcome{Mover: side, Move: m, Captured: captured, Over: e.result != nil}, nil
}

func (e *Engine) finish(ending Ending, winner game.Owner) {
	r := Result{
		MatchID: e.ID,
		Ending:  ending,
		Winner:  game.NoOwner,
		Loser:   game.NoOwner,
		Turns:   e.turns,
	}
	switch ending {
	case EndingWin:
		r.Winner, r.Loser = winner, winner.Opponent()
		e.State.Player(winner).Score++
	case EndingTie:
		for _, p := range e.State.Players {
			p.Score++
		}
	}
	for i, p := range e.State.Players {
		r.Scores[i] = p.Score
	}
	e.result = &r
	e.endTime = time.Now()

	if ending == EndingWin {
		log.Info().Str("match", e.ID).Msgf("%s wins after %d turns", e.State.Player(winner).Name, e.turns)
	} else {
		log.Info().Str("match", e.ID).Msgf("game ended by %s after %d turns", ending, e.turns)
	}
	e.collab.NotifyGameOver(r)
}

// Result returns the outcome once the match is over.
func (e *Engine) Result() (Result, bool) {
	if e.result == nil {
		return Result{}, false
	}
	return *e.result, true
}

func (e *Engine) Turns() int {
	return e.turns
}

// Metrics summarises the current match and returns the per-move records
// gathered by Run.
func (e *Engine) Metrics() (metrics.GameMetric, []metrics.MoveMetric) {
	gm := metrics.GameMetric{
		MatchID:        e.ID,
		StartingPlayer: e.State.Player(e.starting).Name,
		StartTime:      e.startTime,
		EndTime:        e.endTime,
		TotalMoves:     e.turns,
	}
	if e.result != nil {
		gm.Ending = e.result.Ending.String()
		if e.result.Ending == EndingWin {
			gm.Winner = e.State.Player(e.result.Winner).Name
		}
		gm.Duration = e.endTime.Sub(e.startTime)
	}
	return gm, e.moves
}

func (e *Engine) seat(side game.Owner) Controller {
	if side == game.PlayerB {
		return e.seats[1]
	}
	return e.seats[0]
}
