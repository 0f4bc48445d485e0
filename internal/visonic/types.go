package visonic

type reqAccountLogin struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	AppID    string `json:"app_id"`
}

type respAccountLogin struct {
	UserToken string `json:"user_token"`
}

type reqPanelLogin struct {
	UserCode    string `json:"user_code"`
	AppType     string `json:"app_type"`
	AppID       string `json:"app_id"`
	PanelSerial string `json:"panel_serial"`
}

type respPanelLogin struct {
	SessionToken string `json:"session_token"`
}

type respVersion struct {
	RestVersions []string `json:"rest_versions"`
}

type reqSetState struct {
	Partition int    `json:"partition"`
	State     string `json:"state"`
}

type respProcessToken struct {
	ProcessToken string `json:"process_token"`
}

// ProcessStatus is one entry from the process status list: the state of a
// single queued operation on the panel.
type ProcessStatus struct {
	Token  string `json:"token"`
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// Partition is the per-partition slice of the panel status.
type Partition struct {
	ID     int    `json:"id"`
	State  string `json:"state"`
	Status string `json:"status"`
	Ready  bool   `json:"ready"`
}

// Status is the decoded panel status.
type Status struct {
	Connected  bool        `json:"connected"`
	Partitions []Partition `json:"partitions"`
}
