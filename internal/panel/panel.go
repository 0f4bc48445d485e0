package panel

import (
	"context"
	"fmt"
	"time"

	"github.com/daemonp/visonic2mqtt/internal/config"
	"github.com/daemonp/visonic2mqtt/internal/log"
	"github.com/daemonp/visonic2mqtt/internal/visonic"
)

// ResultError is published in place of the command name when a recognized
// command could not be completed. It is the only failure detail that ever
// leaves the process; causes go to the log.
const ResultError = "ERROR"

// Panel ties the configured identity to the Visonic REST client and turns
// inbound command text into completed state changes.
type Panel struct {
	cfg    *config.Config
	log    *log.Logger
	client *visonic.Client
}

func NewPanel(cfg *config.Config, logger *log.Logger) *Panel {
	return &Panel{
		cfg:    cfg,
		log:    logger,
		client: visonic.NewClient(&cfg.Visonic, logger),
	}
}

// HandleCommand executes one inbound command to completion. It returns the
// text to publish on the result topic; ok is false when the payload was not
// a recognized command and nothing should be published.
func (p *Panel) HandleCommand(ctx context.Context, text string) (result string, ok bool) {
	cmd := ParseCommand(text)
	if cmd == CommandUnknown {
		p.log.Info("Ignoring unknown command: %s", text)
		return "", false
	}

	// Each command performs its own full login; tokens never outlive the
	// command that created them.
	session, err := p.client.Login(ctx)
	if err != nil {
		p.log.Error("Failed to log in to panel: %v", err)
		return ResultError, true
	}

	if err := p.execute(ctx, session, cmd); err != nil {
		p.log.Error("Command %s failed: %v", cmd, err)
		return ResultError, true
	}

	p.log.Info("Command %s completed", cmd)
	return cmd.String(), true
}

func (p *Panel) execute(ctx context.Context, session *visonic.Session, cmd Command) error {
	switch cmd {
	case CommandArmAway:
		return session.Arm(ctx)
	case CommandDisarm:
		return session.Disarm(ctx)
	case CommandArmNight:
		return session.ArmNight(ctx)
	case CommandArmStay:
		return session.ArmStay(ctx)
	default:
		return fmt.Errorf("unhandled command %s", cmd)
	}
}

// Snapshot is the read-only inventory the bridge fetches once at startup.
type Snapshot struct {
	Info      string    `json:"info"`
	Devices   string    `json:"devices"`
	Locations string    `json:"locations"`
	FetchedAt time.Time `json:"fetched_at"`
}

// FetchSnapshot logs in and pulls the panel info and inventory published at
// startup. The session is discarded when the fetch completes.
func (p *Panel) FetchSnapshot(ctx context.Context) (*Snapshot, error) {
	session, err := p.client.Login(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to log in to panel: %v", err)
	}

	status, err := session.Status(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get panel status: %v", err)
	}
	p.log.Info("Panel connected: %t", status.Connected)
	for _, part := range status.Partitions {
		p.log.Debug("Partition %d: state=%s status=%s ready=%t", part.ID, part.State, part.Status, part.Ready)
	}

	info, err := session.PanelInfo(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get panel info: %v", err)
	}

	devices, err := session.Devices(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get devices: %v", err)
	}

	locations, err := session.Locations(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get locations: %v", err)
	}

	return &Snapshot{
		Info:      info,
		Devices:   devices,
		Locations: locations,
		FetchedAt: time.Now(),
	}, nil
}
