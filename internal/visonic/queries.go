package visonic

import "context"

// Status returns the decoded panel status.
func (s *Session) Status(ctx context.Context) (*Status, error) {
	var res Status
	if err := s.client.getJSON(ctx, s.client.uri(resStatus), s.userToken, s.sessionToken, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// StatusText returns the status endpoint body verbatim.
func (s *Session) StatusText(ctx context.Context) (string, error) {
	return s.getText(ctx, resStatus)
}

func (s *Session) Events(ctx context.Context) (string, error) {
	return s.getText(ctx, resEvents)
}

func (s *Session) Alarms(ctx context.Context) (string, error) {
	return s.getText(ctx, resAlarms)
}

func (s *Session) Alerts(ctx context.Context) (string, error) {
	return s.getText(ctx, resAlerts)
}

func (s *Session) Troubles(ctx context.Context) (string, error) {
	return s.getText(ctx, resTroubles)
}

func (s *Session) PanelInfo(ctx context.Context) (string, error) {
	return s.getText(ctx, resPanelInfo)
}

func (s *Session) WakeupSMS(ctx context.Context) (string, error) {
	return s.getText(ctx, resWakeupSMS)
}

func (s *Session) Devices(ctx context.Context) (string, error) {
	return s.getText(ctx, resDevices)
}

func (s *Session) Locations(ctx context.Context) (string, error) {
	return s.getText(ctx, resLocations)
}

func (s *Session) getText(ctx context.Context, path string) (string, error) {
	return s.client.getText(ctx, s.client.uri(path), s.userToken, s.sessionToken)
}
