package visonic

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"time"

	"github.com/daemonp/visonic2mqtt/internal/config"
	"github.com/daemonp/visonic2mqtt/internal/log"
)

// fakePanelService is an httptest-backed double for the PowerManage REST
// API, recording enough about each call to assert on the protocol.
type fakePanelService struct {
	mu sync.Mutex

	versions []string

	failAuth      bool
	failSetState  bool
	failPollUntil int // polls up to this count return 500

	authCalls     int
	panelCalls    int
	setStateCalls int
	pollCalls     int

	lastAuthBody       reqAccountLogin
	lastAuthHeaders    http.Header
	lastPanelBody      reqPanelLogin
	lastPanelUserToken string
	lastSetStateBody   reqSetState
	lastSetStateHdr    http.Header
	lastPollQuery      string
	lastPollHdr        http.Header

	// pollResponses is consumed one entry per poll; the final entry repeats.
	pollResponses [][]ProcessStatus
}

func newFakePanelService() *fakePanelService {
	return &fakePanelService{
		versions:      []string{"8.0", "10.0"},
		pollResponses: [][]ProcessStatus{{{Token: "pt-1", Status: "succeeded"}}},
	}
}

func (f *fakePanelService) server() *httptest.Server {
	mux := http.NewServeMux()

	mux.HandleFunc("/rest_api/version", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, respVersion{RestVersions: f.versions})
	})

	mux.HandleFunc("/rest_api/10.0/auth", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		f.authCalls++
		f.lastAuthHeaders = r.Header.Clone()
		json.NewDecoder(r.Body).Decode(&f.lastAuthBody)
		if f.failAuth {
			http.Error(w, "bad credentials", http.StatusUnauthorized)
			return
		}
		writeJSON(w, respAccountLogin{UserToken: "ut-1"})
	})

	mux.HandleFunc("/rest_api/10.0/panel/login", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		f.panelCalls++
		f.lastPanelUserToken = r.Header.Get("User-Token")
		json.NewDecoder(r.Body).Decode(&f.lastPanelBody)
		writeJSON(w, respPanelLogin{SessionToken: "st-1"})
	})

	mux.HandleFunc("/rest_api/10.0/set_state", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		f.setStateCalls++
		f.lastSetStateHdr = r.Header.Clone()
		json.NewDecoder(r.Body).Decode(&f.lastSetStateBody)
		if f.failSetState {
			http.Error(w, "panel offline", http.StatusBadGateway)
			return
		}
		writeJSON(w, respProcessToken{ProcessToken: "pt-1"})
	})

	mux.HandleFunc("/rest_api/10.0/status", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, Status{
			Connected:  true,
			Partitions: []Partition{{ID: 1, State: "Home", Status: "disarmed", Ready: true}},
		})
	})

	for path, body := range map[string]string{
		"/rest_api/10.0/panel_info": "panel info body",
		"/rest_api/10.0/devices":    "devices body",
		"/rest_api/10.0/locations":  "locations body",
		"/rest_api/10.0/events":     "events body",
		"/rest_api/10.0/alarms":     "alarms body",
		"/rest_api/10.0/alerts":     "alerts body",
		"/rest_api/10.0/troubles":   "troubles body",
		"/rest_api/10.0/wakeup_sms": "wakeup sms body",
	} {
		body := body
		mux.HandleFunc(path, func(w http.ResponseWriter, r *http.Request) {
			if r.Header.Get("User-Token") == "" || r.Header.Get("Session-Token") == "" {
				http.Error(w, "missing tokens", http.StatusUnauthorized)
				return
			}
			w.Write([]byte(body))
		})
	}

	mux.HandleFunc("/rest_api/10.0/process_status", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		f.pollCalls++
		f.lastPollQuery = r.URL.RawQuery
		f.lastPollHdr = r.Header.Clone()
		if f.pollCalls <= f.failPollUntil {
			http.Error(w, "try later", http.StatusServiceUnavailable)
			return
		}
		idx := f.pollCalls - f.failPollUntil - 1
		if idx >= len(f.pollResponses) {
			idx = len(f.pollResponses) - 1
		}
		writeJSON(w, f.pollResponses[idx])
	})

	return httptest.NewServer(mux)
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

func newTestClient(serverURL string) *Client {
	cfg := &config.VisonicConfig{
		Hostname:     serverURL,
		UserCode:     "1234",
		AppID:        "app-1",
		Partition:    -1,
		UserEmail:    "user@example.com",
		UserPassword: "secret",
		PanelID:      "PANEL01",
	}
	c := NewClient(cfg, log.NewLogger("error"))
	c.pollInterval = time.Millisecond
	return c
}
