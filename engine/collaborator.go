package engine

import (
	"context"
	"errors"
	"sync"

	"zen/game"

	"github.com/rs/zerolog/log"
)

var (
	ErrNoCollaborator     = errors.New("no collaborator to ask for moves")
	ErrCollaboratorClosed = errors.New("collaborator closed")
)

// Collaborator is the outside world of a match: whoever renders it and
// collects human input.
type Collaborator interface {
	// RequestMove blocks until the player proposes a move or ctx is done.
	RequestMove(ctx context.Context, player *game.PlayerState) (game.MoveIntent, error)
	NotifyIllegalMove(player *game.PlayerState, reason error)
	NotifyZenBlocked(player *game.PlayerState)
	NotifyMoveApplied(player *game.PlayerState, m game.MoveIntent)
	NotifyGameOver(r Result)
}

type nopCollaborator struct{}

func (nopCollaborator) RequestMove(ctx context.Context, player *game.PlayerState) (game.MoveIntent, error) {
	return game.MoveIntent{}, ErrNoCollaborator
}
func (nopCollaborator) NotifyIllegalMove(player *game.PlayerState, reason error)      {}
func (nopCollaborator) NotifyZenBlocked(player *game.PlayerState)                     {}
func (nopCollaborator) NotifyMoveApplied(player *game.PlayerState, m game.MoveIntent) {}
func (nopCollaborator) NotifyGameOver(r Result)                                       {}

type EventKind int

const (
	EventIllegalMove EventKind = iota
	EventZenBlocked
	EventMoveApplied
	EventGameOver
)

func (k EventKind) String() string {
	switch k {
	case EventIllegalMove:
		return "illegal_move"
	case EventZenBlocked:
		return "zen_blocked"
	case EventMoveApplied:
		return "move_applied"
	case EventGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Event is a notification as seen by a channel consumer.
type Event struct {
	Kind   EventKind
	Player game.PlayerState // zero for EventGameOver
	Move   game.MoveIntent
	Reason game.Reason
	Err    error
	Result Result
}

// Prompt asks the consumer for a move on behalf of Player.
type Prompt struct {
	Player game.PlayerState
}

// ChannelCollaborator hands prompts and events to another goroutine, usually
// a UI loop, and takes moves back through Submit. Events are never dropped:
// once the buffer is full the engine waits for the consumer, so a consumer
// that walks away must call Close.
type ChannelCollaborator struct {
	prompts chan Prompt
	moves   chan game.MoveIntent
	events  chan Event

	done      chan struct{}
	closeOnce sync.Once
}

// NewChannelCollaborator buffers up to buffer events ahead of the consumer.
func NewChannelCollaborator(buffer int) *ChannelCollaborator {
	return &ChannelCollaborator{
		prompts: make(chan Prompt),
		moves:   make(chan game.MoveIntent),
		events:  make(chan Event, buffer),
		done:    make(chan struct{}),
	}
}

// Close releases the engine from pending sends and prompts. Events still in
// the buffer stay readable.
func (c *ChannelCollaborator) Close() {
	c.closeOnce.Do(func() { close(c.done) })
}

func (c *ChannelCollaborator) Prompts() <-chan Prompt {
	return c.prompts
}

func (c *ChannelCollaborator) Events() <-chan Event {
	return c.events
}

// Submit answers the pending prompt.
func (c *ChannelCollaborator) Submit(ctx context.Context, m game.MoveIntent) error {
	select {
	case c.moves <- m:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (c *ChannelCollaborator) RequestMove(ctx context.Context, player *game.PlayerState) (game.MoveIntent, error) {
	select {
	case c.prompts <- Prompt{Player: detach(player)}:
	case <-c.done:
		return game.MoveIntent{}, ErrCollaboratorClosed
	case <-ctx.Done():
		return game.MoveIntent{}, ctx.Err()
	}
	select {
	case m := <-c.moves:
		return m, nil
	case <-c.done:
		return game.MoveIntent{}, ErrCollaboratorClosed
	case <-ctx.Done():
		return game.MoveIntent{}, ctx.Err()
	}
}

func (c *ChannelCollaborator) NotifyIllegalMove(player *game.PlayerState, reason error) {
	c.send(Event{Kind: EventIllegalMove, Player: detach(player), Reason: game.ReasonOf(reason), Err: reason})
}

func (c *ChannelCollaborator) NotifyZenBlocked(player *game.PlayerState) {
	c.send(Event{Kind: EventZenBlocked, Player: detach(player), Reason: game.ReasonZenReturn, Err: game.ErrZenReturn})
}

func (c *ChannelCollaborator) NotifyMoveApplied(player *game.PlayerState, m game.MoveIntent) {
	c.send(Event{Kind: EventMoveApplied, Player: detach(player), Move: m})
}

func (c *ChannelCollaborator) NotifyGameOver(r Result) {
	c.send(Event{Kind: EventGameOver, Result: r})
}

// send blocks until the consumer takes ev or the collaborator is closed.
func (c *ChannelCollaborator) send(ev Event) {
	select {
	case c.events <- ev:
	case <-c.done:
		log.Warn().Msgf("%s event not delivered: collaborator closed", ev.Kind)
	}
}

// detach copies p so the consumer never shares the engine's piece slice.
func detach(p *game.PlayerState) game.PlayerState {
	c := *p
	c.Pieces = append([]game.PieceRef(nil), p.Pieces...)
	return c
}
