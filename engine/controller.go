package engine

import (
	"context"
	"errors"
	"fmt"

	"zen/agent"
	"zen/game"
)

// Controller occupies one seat of a match.
type Controller interface {
	Name() string
	NextMove(ctx context.Context, s *game.State, self, opponent *game.PlayerState) (game.MoveIntent, error)
	// Reject is told why m was refused. A nil return asks for another move,
	// an error ends the match.
	Reject(self *game.PlayerState, m game.MoveIntent, reason error) error
}

// AgentController seats an agent. Agents are trusted to return legal moves:
// a failure or an illegal move aborts the match.
type AgentController struct {
	name  string
	agent agent.Agent
}

func NewAgentController(name string, a agent.Agent) *AgentController {
	return &AgentController{name: name, agent: a}
}

func (c *AgentController) Name() string {
	return c.name
}

func (c *AgentController) NextMove(ctx context.Context, s *game.State, self, opponent *game.PlayerState) (game.MoveIntent, error) {
	m, err := c.agent.ChooseMove(s, self, opponent)
	if err != nil {
		return game.MoveIntent{}, fmt.Errorf("%s: %w: %w", c.name, ErrAgentExhausted, err)
	}
	return m, nil
}

func (c *AgentController) Reject(self *game.PlayerState, m game.MoveIntent, reason error) error {
	return fmt.Errorf("%s proposed %s: %w: %w", c.name, m, ErrIllegalAgentMove, reason)
}

func (c *AgentController) LastDecision() agent.Decision {
	if r, ok := c.agent.(agent.Reporter); ok {
		return r.LastDecision()
	}
	return agent.Decision{}
}

// HumanController asks a collaborator for moves and re-prompts on every
// rejection.
type HumanController struct {
	name   string
	collab Collaborator
}

func NewHumanController(name string, c Collaborator) *HumanController {
	return &HumanController{name: name, collab: c}
}

func (c *HumanController) Name() string {
	return c.name
}

func (c *HumanController) NextMove(ctx context.Context, s *game.State, self, opponent *game.PlayerState) (game.MoveIntent, error) {
	m, err := c.collab.RequestMove(ctx, self)
	if err != nil {
		return game.MoveIntent{}, fmt.Errorf("cannot get a move from %s: %w", c.name, err)
	}
	return m, nil
}

func (c *HumanController) Reject(self *game.PlayerState, m game.MoveIntent, reason error) error {
	if errors.Is(reason, game.ErrZenReturn) {
		c.collab.NotifyZenBlocked(self)
	} else {
		c.collab.NotifyIllegalMove(self, reason)
	}
	return nil
}
