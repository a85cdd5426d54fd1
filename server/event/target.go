package event

import (
	"errors"

	"github.com/basalt-mc/basalt/server/world"
)

// ErrNilTarget is returned when a nil entity is passed to SetTarget. Removing
// a target is done explicitly through ClearTarget.
var ErrNilTarget = errors.New("event: target entity must not be nil, use ClearTarget to remove the target")

// AITargetChange describes an agent's AI switching to a new target entity.
// The agent is fixed at creation; the new target may be replaced or removed
// by handlers. The host applies the final target after dispatch, but only if
// the event was not cancelled.
type AITargetChange struct {
	agent  world.Agent
	target world.Entity
}

// NewAITargetChange returns an AITargetChange for the agent passed, with
// target as the proposed new target. A nil target proposes removing the
// agent's current target.
func NewAITargetChange(agent world.Agent, target world.Entity) *AITargetChange {
	return &AITargetChange{agent: agent, target: target}
}

// Agent returns the agent whose AI target is changing.
func (ev *AITargetChange) Agent() world.Agent {
	return ev.agent
}

// Target returns the new target of the agent. The second return value is
// false if the change removes the agent's target.
func (ev *AITargetChange) Target() (world.Entity, bool) {
	if ev.target == nil {
		return nil, false
	}
	return ev.target, true
}

// SetTarget replaces the new target of the agent. It returns ErrNilTarget if
// the entity passed is nil; the event is unchanged in that case.
func (ev *AITargetChange) SetTarget(target world.Entity) error {
	if target == nil {
		return ErrNilTarget
	}
	ev.target = target
	return nil
}

// ClearTarget removes the new target, turning the change into a removal of
// the agent's current target.
func (ev *AITargetChange) ClearTarget() {
	ev.target = nil
}
