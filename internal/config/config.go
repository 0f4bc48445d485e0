package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Visonic       VisonicConfig       `yaml:"visonic"`
	MQTT          MQTTConfig          `yaml:"mqtt"`
	HomeAssistant HomeAssistantConfig `yaml:"homeassistant"`
	Log           string              `yaml:"log"`
	Cache         bool                `yaml:"cache"`
}

// VisonicConfig identifies one panel on the PowerManage service. All fields
// are fixed for the lifetime of the process.
type VisonicConfig struct {
	Hostname     string `yaml:"hostname"`
	UserCode     string `yaml:"user_code"`
	AppID        string `yaml:"app_id"`
	Partition    int    `yaml:"partition"`
	UserEmail    string `yaml:"user_email"`
	UserPassword string `yaml:"user_password"`
	PanelID      string `yaml:"panel_id"`
}

type MQTTConfig struct {
	ClientID  string `yaml:"client_id"`
	Host      string `yaml:"host"`
	Port      int    `yaml:"port"`
	Keepalive int    `yaml:"keepalive"`
	Username  string `yaml:"username"`
	Password  string `yaml:"password"`
	QOS       int    `yaml:"qos"`
	Retain    bool   `yaml:"retain"`
	Prefix    string `yaml:"prefix"`
	Clean     bool   `yaml:"clean"`
}

type HomeAssistantConfig struct {
	Discovery bool   `yaml:"discovery"`
	Prefix    string `yaml:"prefix"`
}

func LoadConfig(configFile string) (*Config, error) {
	data, err := os.ReadFile(configFile)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %v", err)
	}

	var config Config
	err = yaml.Unmarshal(data, &config)
	if err != nil {
		return nil, fmt.Errorf("error parsing config file: %v", err)
	}

	// Set default values
	if config.MQTT.ClientID == "" {
		config.MQTT.ClientID = "visonic2mqtt"
	}
	if config.MQTT.Host == "" {
		config.MQTT.Host = "localhost"
	}
	if config.MQTT.Port == 0 {
		config.MQTT.Port = 1883
	}
	if config.MQTT.Keepalive == 0 {
		config.MQTT.Keepalive = 60
	}
	if config.MQTT.Prefix == "" {
		config.MQTT.Prefix = "visonic2mqtt"
	}
	if config.HomeAssistant.Prefix == "" {
		config.HomeAssistant.Prefix = "homeassistant"
	}
	if config.Log == "" {
		config.Log = "info"
	}
	if config.Visonic.Partition == 0 {
		// -1 addresses all partitions on the panel.
		config.Visonic.Partition = -1
	}

	return &config, nil
}
