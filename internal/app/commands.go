// internal/app/commands.go
package app

import (
	"go-core-defense/internal/defs"
	"go-core-defense/internal/event"
	"go-core-defense/internal/types"
)

type CommandType string

const (
	CmdBuild          CommandType = "build"
	CmdSell           CommandType = "sell"
	CmdUpgrade        CommandType = "upgrade"
	CmdConnect        CommandType = "connect"
	CmdStartWave      CommandType = "start_wave"
	CmdToggleSandbox  CommandType = "toggle_sandbox"
	CmdSelectBuild    CommandType = "select_build"
	CmdToggleConnect  CommandType = "toggle_connect"
	CmdClickGround    CommandType = "click_ground"
	CmdClickNode      CommandType = "click_node"
	CmdConfirmPreview CommandType = "confirm_preview"
	CmdCancel         CommandType = "cancel"
)

// Command is a discrete player action, applied between ticks.
type Command struct {
	Type  CommandType    `json:"type"`
	X     float64        `json:"x,omitempty"`
	Z     float64        `json:"z,omitempty"`
	Tower defs.TowerType `json:"tower,omitempty"`
	Node  types.EntityID `json:"node,omitempty"`
	A     types.EntityID `json:"a,omitempty"`
	B     types.EntityID `json:"b,omitempty"`
}

// Result reports the outcome of Apply.
type Result struct {
	OK      bool           `json:"ok"`
	Reason  Reason         `json:"reason,omitempty"`
	Message string         `json:"message,omitempty"`
	ID      types.EntityID `json:"id,omitempty"`
	Value   int            `json:"value,omitempty"`
}

// Apply runs a command and converts its outcome to a Result.
func (g *Game) Apply(cmd Command) Result {
	var (
		id    types.EntityID
		value int
		err   error
	)
	switch cmd.Type {
	case CmdBuild:
		id, err = g.Build(cmd.X, cmd.Z, cmd.Tower)
	case CmdSell:
		value, err = g.Sell(cmd.Node)
	case CmdUpgrade:
		err = g.Upgrade(cmd.Node)
	case CmdConnect:
		id, err = g.Connect(cmd.A, cmd.B)
	case CmdStartWave:
		err = g.StartWave()
	case CmdToggleSandbox:
		if g.ToggleSandbox() {
			value = 1
		}
	case CmdSelectBuild:
		err = g.SelectBuildType(cmd.Tower)
	case CmdToggleConnect:
		if g.ToggleConnectMode() {
			value = 1
		}
	case CmdClickGround:
		id, err = g.ClickGround(cmd.X, cmd.Z)
	case CmdClickNode:
		id, err = g.ClickNode(cmd.Node)
	case CmdConfirmPreview:
		id, err = g.ConfirmPreview()
	case CmdCancel:
		g.CancelInteraction()
	default:
		err = rejectf(ReasonInvalidCommand, "unknown command %q", cmd.Type)
	}

	if err != nil {
		g.log.Debug("Command rejected", "command", cmd.Type, "error", err)
		reason := ReasonOf(err)
		g.EventDispatcher.Dispatch(event.Event{
			Type:  event.CommandRejected,
			Frame: g.ECS.Frame,
			Data:  map[string]any{"command": cmd.Type, "reason": reason},
		})
		return Result{Reason: reason, Message: err.Error()}
	}
	return Result{OK: true, ID: id, Value: value}
}
