package visonic

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/daemonp/visonic2mqtt/internal/config"
	"github.com/daemonp/visonic2mqtt/internal/log"
)

// PowerManage REST protocol constants.
const (
	restVersion = "10.0"
	appType     = "com.visonic.PowerMaxApp"
)

// Endpoint paths under /rest_api/{version}. resVersions is the one
// exception: it lives at /rest_api/version with no version segment.
const (
	resAuth          = "/auth"
	resPanelLogin    = "/panel/login"
	resStatus        = "/status"
	resVersions      = "/version"
	resSetState      = "/set_state"
	resProcessStatus = "/process_status"
	resEvents        = "/events"
	resAlarms        = "/alarms"
	resAlerts        = "/alerts"
	resTroubles      = "/troubles"
	resPanelInfo     = "/panel_info"
	resWakeupSMS     = "/wakeup_sms"
	resDevices       = "/devices"
	resLocations     = "/locations"
)

// Client performs HTTP requests against one PowerManage deployment. It holds
// no session state; callers obtain a Session through Login.
type Client struct {
	cfg          *config.VisonicConfig
	log          *log.Logger
	http         *http.Client
	base         string
	pollInterval time.Duration
}

func NewClient(cfg *config.VisonicConfig, logger *log.Logger) *Client {
	// An explicit scheme in the hostname is honored, for deployments not
	// fronted by TLS.
	base := "https://" + cfg.Hostname + "/rest_api"
	if strings.Contains(cfg.Hostname, "://") {
		base = cfg.Hostname + "/rest_api"
	}

	return &Client{
		cfg:          cfg,
		log:          logger,
		http:         &http.Client{Timeout: 30 * time.Second},
		base:         base,
		pollInterval: time.Second,
	}
}

// uri builds a versioned endpoint URL.
func (c *Client) uri(path string) string {
	return fmt.Sprintf("%s/%s%s", c.base, restVersion, path)
}

// setTokenHeaders attaches whichever of the token pair is present. During
// account login neither exists; during panel login only the user token does.
func setTokenHeaders(req *http.Request, userToken, sessionToken string) {
	if userToken != "" {
		req.Header.Set("User-Token", userToken)
	}
	if sessionToken != "" {
		req.Header.Set("Session-Token", sessionToken)
	}
}

// do performs one HTTP call and returns the response body. Transport
// failures, non-2xx statuses and unreadable bodies all come back as
// *HTTPError; the status is 0 when no response arrived at all.
func (c *Client) do(ctx context.Context, method, url string, body interface{}, userToken, sessionToken string) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, &HTTPError{Message: fmt.Sprintf("encode request: %v", err)}
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, &HTTPError{Message: err.Error()}
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	setTokenHeaders(req, userToken, sessionToken)

	c.log.Trace("%s %s", method, url)
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &HTTPError{Message: err.Error()}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &HTTPError{Status: resp.StatusCode, Message: fmt.Sprintf("read response: %v", err)}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &HTTPError{Status: resp.StatusCode, Message: strings.TrimSpace(string(data))}
	}

	return data, nil
}

func (c *Client) getJSON(ctx context.Context, url, userToken, sessionToken string, out interface{}) error {
	data, err := c.do(ctx, http.MethodGet, url, nil, userToken, sessionToken)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, out); err != nil {
		return &HTTPError{Message: fmt.Sprintf("decode response: %v", err)}
	}
	return nil
}

func (c *Client) postJSON(ctx context.Context, url string, body interface{}, userToken, sessionToken string, out interface{}) error {
	data, err := c.do(ctx, http.MethodPost, url, body, userToken, sessionToken)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, out); err != nil {
		return &HTTPError{Message: fmt.Sprintf("decode response: %v", err)}
	}
	return nil
}

func (c *Client) getText(ctx context.Context, url, userToken, sessionToken string) (string, error) {
	data, err := c.do(ctx, http.MethodGet, url, nil, userToken, sessionToken)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
