package visonic

import (
	"errors"
	"fmt"

	"github.com/daemonp/visonic2mqtt/internal/util"
)

// ErrRetriesExhausted is returned when completion polling never observed a
// successful process status within the attempt budget.
var ErrRetriesExhausted = errors.New("retries exhausted")

// VersionError reports that the service does not offer the protocol version
// this client speaks. Versions holds the full list the service reported.
type VersionError struct {
	Versions []string
}

func (e *VersionError) Error() string {
	return fmt.Sprintf("rest api version %s not supported, server offers %s", restVersion, util.JoinWithOr(e.Versions))
}

// HTTPError wraps any transport, status or decode failure from the panel
// service. Status is 0 when the failure happened before a response arrived.
type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("http error %d: %s", e.Status, e.Message)
}
