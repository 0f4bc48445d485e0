package visonic

import (
	"context"
	"fmt"
	"net/url"
)

// Arm states understood by the set_state endpoint.
const (
	StateAway   = "AWAY"
	StateDisarm = "DISARM"
	StateNight  = "NIGHT"
	StateStay   = "STAY"
)

const (
	processSucceeded = "succeeded"
	pollAttempts     = 5
)

// Arm requests full away arming and waits for the panel to confirm it.
func (s *Session) Arm(ctx context.Context) error {
	return s.changeState(ctx, StateAway)
}

// Disarm disarms the panel and waits for confirmation.
func (s *Session) Disarm(ctx context.Context) error {
	return s.changeState(ctx, StateDisarm)
}

// ArmNight arms the panel in night mode and waits for confirmation.
func (s *Session) ArmNight(ctx context.Context) error {
	return s.changeState(ctx, StateNight)
}

// ArmStay arms the panel in stay mode and waits for confirmation.
func (s *Session) ArmStay(ctx context.Context) error {
	return s.changeState(ctx, StateStay)
}

// changeState submits the state change and polls the resulting process
// token until the panel reports it succeeded. A failure from the submit
// call aborts immediately; poll failures are absorbed by the retry loop.
func (s *Session) changeState(ctx context.Context, state string) error {
	token, err := s.setState(ctx, state)
	if err != nil {
		return err
	}
	s.client.log.Debug("State change to %s queued, process token %s", state, token)

	_, err = s.awaitProcess(ctx, token)
	return err
}

func (s *Session) setState(ctx context.Context, state string) (string, error) {
	req := reqSetState{
		Partition: s.client.cfg.Partition,
		State:     state,
	}

	var res respProcessToken
	if err := s.client.postJSON(ctx, s.client.uri(resSetState), req, s.userToken, s.sessionToken, &res); err != nil {
		return "", err
	}
	return res.ProcessToken, nil
}

// awaitProcess polls the process status list until any entry for the queued
// operation reports succeeded, or the attempt budget runs out.
func (s *Session) awaitProcess(ctx context.Context, token string) ([]ProcessStatus, error) {
	return executeWhile(ctx,
		func(ctx context.Context) ([]ProcessStatus, error) {
			return s.processStatus(ctx, token)
		},
		func(records []ProcessStatus) bool {
			for _, r := range records {
				if r.Status == processSucceeded {
					return true
				}
			}
			return false
		},
		pollAttempts, s.client.pollInterval)
}

func (s *Session) processStatus(ctx context.Context, token string) ([]ProcessStatus, error) {
	target := fmt.Sprintf("%s?process_tokens=%s", s.client.uri(resProcessStatus), url.QueryEscape(token))

	var res []ProcessStatus
	if err := s.client.getJSON(ctx, target, s.userToken, s.sessionToken, &res); err != nil {
		s.client.log.Debug("Process status poll failed: %v", err)
		return nil, err
	}
	return res, nil
}
