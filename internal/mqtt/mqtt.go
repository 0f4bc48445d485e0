package mqtt

import (
	"context"
	"encoding/json"
	"fmt"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	"github.com/daemonp/visonic2mqtt/internal/config"
	"github.com/daemonp/visonic2mqtt/internal/log"
	"github.com/daemonp/visonic2mqtt/internal/panel"
)

const (
	offlinePayload = "offline"
	onlinePayload  = "online"
)

type MQTT struct {
	config *config.MQTTConfig
	panel  *panel.Panel
	log    *log.Logger
	client mqtt.Client
	topics *Topics
}

func NewMQTT(cfg *config.MQTTConfig, p *panel.Panel, logger *log.Logger) *MQTT {
	return &MQTT{
		config: cfg,
		panel:  p,
		log:    logger,
		topics: NewTopics(cfg.Prefix),
	}
}

func (m *MQTT) Connect() error {
	opts := mqtt.NewClientOptions()
	opts.AddBroker(fmt.Sprintf("tcp://%s:%d", m.config.Host, m.config.Port))
	opts.SetClientID(m.config.ClientID)
	opts.SetUsername(m.config.Username)
	opts.SetPassword(m.config.Password)
	opts.SetCleanSession(m.config.Clean)
	opts.SetAutoReconnect(true)
	opts.SetOnConnectHandler(m.onConnect)
	opts.SetConnectionLostHandler(m.onDisconnect)

	opts.SetWill(m.topics.Availability(), offlinePayload, byte(m.config.QOS), true)

	m.client = mqtt.NewClient(opts)

	if token := m.client.Connect(); token.Wait() && token.Error() != nil {
		return fmt.Errorf("failed to connect to MQTT broker: %v", token.Error())
	}

	m.log.Info("Connected to MQTT broker: %s:%d", m.config.Host, m.config.Port)
	return nil
}

func (m *MQTT) onConnect(client mqtt.Client) {
	m.log.Info("MQTT connection established")
	m.Publish(m.topics.Availability(), onlinePayload, true)
	m.subscribeCommandTopic()
}

func (m *MQTT) onDisconnect(client mqtt.Client, err error) {
	m.log.Error("MQTT connection lost: %v", err)
}

func (m *MQTT) subscribeCommandTopic() {
	topic := m.topics.Command()
	token := m.client.Subscribe(topic, byte(m.config.QOS), m.handleMessage)
	if token.Wait() && token.Error() != nil {
		m.log.Error("Failed to subscribe to topic %s: %v", topic, token.Error())
	} else {
		m.log.Debug("Subscribed to topic: %s", topic)
	}
}

// handleMessage runs one inbound command to completion and publishes its
// outcome. Paho delivers messages to this handler in order, so commands are
// handled sequentially per connection.
func (m *MQTT) handleMessage(client mqtt.Client, msg mqtt.Message) {
	payload := string(msg.Payload())
	m.log.Debug("Received message on topic %s: %s", msg.Topic(), payload)

	result, ok := m.panel.HandleCommand(context.Background(), payload)
	if !ok {
		return
	}
	m.Publish(m.topics.Result(), result, m.config.Retain)
}

// PublishInfo publishes the panel info snapshot, retained so late joiners
// see it.
func (m *MQTT) PublishInfo(info string) {
	m.Publish(m.topics.Info(), info, true)
}

// Publish sends a message. Strings and byte slices go out verbatim;
// anything else is JSON encoded.
func (m *MQTT) Publish(topic string, message interface{}, retain bool) {
	var payload []byte
	switch v := message.(type) {
	case string:
		payload = []byte(v)
	case []byte:
		payload = v
	default:
		encoded, err := json.Marshal(message)
		if err != nil {
			m.log.Error("Failed to marshal message for topic %s: %v", topic, err)
			return
		}
		payload = encoded
	}

	token := m.client.Publish(topic, byte(m.config.QOS), retain, payload)
	if token.Wait() && token.Error() != nil {
		m.log.Error("Failed to publish message to topic %s: %v", topic, token.Error())
	} else {
		m.log.Debug("Published message to topic: %s", topic)
	}
}

func (m *MQTT) Topics() *Topics {
	return m.topics
}

func (m *MQTT) Prefix() string {
	return m.config.Prefix
}

func (m *MQTT) Close() {
	if m.client != nil && m.client.IsConnected() {
		m.Publish(m.topics.Availability(), offlinePayload, true)
		m.client.Disconnect(250)
	}
}
