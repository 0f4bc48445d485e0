package mqtt

import "fmt"

// Topics derives every topic the bridge uses from the configured prefix.
type Topics struct {
	prefix string
}

func NewTopics(prefix string) *Topics {
	return &Topics{prefix: prefix}
}

// Command carries inbound state-change commands.
func (t *Topics) Command() string {
	return fmt.Sprintf("%s/command", t.prefix)
}

// Result carries the terminal outcome of each command.
func (t *Topics) Result() string {
	return fmt.Sprintf("%s/result", t.prefix)
}

// Info carries the panel info snapshot.
func (t *Topics) Info() string {
	return fmt.Sprintf("%s/info", t.prefix)
}

// Availability carries the online/offline presence payloads, including the
// broker-sent last will.
func (t *Topics) Availability() string {
	return fmt.Sprintf("%s/availability", t.prefix)
}
