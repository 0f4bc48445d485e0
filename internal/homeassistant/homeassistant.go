package homeassistant

import (
	"fmt"

	"github.com/daemonp/visonic2mqtt/internal/config"
	"github.com/daemonp/visonic2mqtt/internal/log"
	"github.com/daemonp/visonic2mqtt/internal/mqtt"
	"github.com/daemonp/visonic2mqtt/internal/util"
	"github.com/daemonp/visonic2mqtt/internal/visonic"
)

// HomeAssistant publishes MQTT discovery config so the panel shows up as an
// alarm_control_panel entity without manual configuration.
type HomeAssistant struct {
	config  *config.HomeAssistantConfig
	visonic *config.VisonicConfig
	mqtt    mqtt.Client
	log     *log.Logger
}

func New(cfg *config.Config, mqttClient mqtt.Client, logger *log.Logger) *HomeAssistant {
	return &HomeAssistant{
		config:  &cfg.HomeAssistant,
		visonic: &cfg.Visonic,
		mqtt:    mqttClient,
		log:     logger,
	}
}

func (ha *HomeAssistant) Start() {
	ha.log.Info("Starting Home Assistant integration")
	ha.publishPanelConfig()
}

func (ha *HomeAssistant) publishPanelConfig() {
	panelSlug := util.Slugify(ha.visonic.PanelID)
	topics := ha.mqtt.Topics()

	entity := map[string]interface{}{
		"name":               fmt.Sprintf("Visonic %s", ha.visonic.PanelID),
		"unique_id":          fmt.Sprintf("%s_panel_%s", ha.mqtt.Prefix(), panelSlug),
		"command_topic":      topics.Command(),
		"availability_topic": topics.Availability(),
		"payload_arm_away":   visonic.StateAway,
		"payload_arm_home":   visonic.StateStay,
		"payload_arm_night":  visonic.StateNight,
		"payload_disarm":     visonic.StateDisarm,
		"device": map[string]interface{}{
			"identifiers":  []string{ha.visonic.PanelID},
			"manufacturer": "Visonic",
		},
	}

	topic := fmt.Sprintf("%s/alarm_control_panel/%s/%s/config", ha.config.Prefix, ha.mqtt.Prefix(), panelSlug)
	ha.mqtt.Publish(topic, entity, true)
}
