package visonic

import (
	"context"

	"github.com/daemonp/visonic2mqtt/internal/util"
)

// Session is the dual-token credential produced by a completed login
// sequence. It is immutable and belongs to the command that created it;
// tokens are never shared or reused across commands.
type Session struct {
	client       *Client
	userToken    string
	sessionToken string
}

func (c *Client) version(ctx context.Context) ([]string, error) {
	var res respVersion
	if err := c.getJSON(ctx, c.base+resVersions, "", "", &res); err != nil {
		return nil, err
	}
	return res.RestVersions, nil
}

// CheckVersion fails fast against deployments that no longer offer the
// protocol version this client implements.
func (c *Client) CheckVersion(ctx context.Context) error {
	versions, err := c.version(ctx)
	if err != nil {
		return err
	}
	if !util.Contains(versions, restVersion) {
		return &VersionError{Versions: versions}
	}
	return nil
}

func (c *Client) accountLogin(ctx context.Context) (string, error) {
	req := reqAccountLogin{
		Email:    c.cfg.UserEmail,
		Password: c.cfg.UserPassword,
		AppID:    c.cfg.AppID,
	}

	var res respAccountLogin
	if err := c.postJSON(ctx, c.uri(resAuth), req, "", "", &res); err != nil {
		return "", err
	}
	return res.UserToken, nil
}

func (c *Client) panelLogin(ctx context.Context, userToken string) (string, error) {
	req := reqPanelLogin{
		UserCode:    c.cfg.UserCode,
		AppType:     appType,
		AppID:       c.cfg.AppID,
		PanelSerial: c.cfg.PanelID,
	}

	var res respPanelLogin
	if err := c.postJSON(ctx, c.uri(resPanelLogin), req, userToken, "", &res); err != nil {
		return "", err
	}
	return res.SessionToken, nil
}

// Login runs the full handshake: version check, account login, panel login.
// The first failing stage aborts the attempt; no partial session is ever
// returned.
func (c *Client) Login(ctx context.Context) (*Session, error) {
	if err := c.CheckVersion(ctx); err != nil {
		return nil, err
	}

	userToken, err := c.accountLogin(ctx)
	if err != nil {
		return nil, err
	}
	c.log.Debug("Account login succeeded")

	sessionToken, err := c.panelLogin(ctx, userToken)
	if err != nil {
		return nil, err
	}
	c.log.Debug("Panel login succeeded for panel %s", c.cfg.PanelID)

	return &Session{
		client:       c,
		userToken:    userToken,
		sessionToken: sessionToken,
	}, nil
}
