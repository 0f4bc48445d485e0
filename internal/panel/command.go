package panel

import "github.com/daemonp/visonic2mqtt/internal/visonic"

// Command is a recognized inbound command.
type Command int

const (
	CommandUnknown Command = iota
	CommandArmAway
	CommandDisarm
	CommandArmNight
	CommandArmStay
)

func (c Command) String() string {
	switch c {
	case CommandArmAway:
		return visonic.StateAway
	case CommandDisarm:
		return visonic.StateDisarm
	case CommandArmNight:
		return visonic.StateNight
	case CommandArmStay:
		return visonic.StateStay
	default:
		return "UNKNOWN"
	}
}

// ParseCommand maps inbound message text to a command. Anything other than
// the four literal state names is CommandUnknown.
func ParseCommand(text string) Command {
	switch text {
	case visonic.StateAway:
		return CommandArmAway
	case visonic.StateDisarm:
		return CommandDisarm
	case visonic.StateNight:
		return CommandArmNight
	case visonic.StateStay:
		return CommandArmStay
	default:
		return CommandUnknown
	}
}
