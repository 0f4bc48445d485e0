package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/daemonp/visonic2mqtt/internal/cache"
	"github.com/daemonp/visonic2mqtt/internal/config"
	"github.com/daemonp/visonic2mqtt/internal/homeassistant"
	"github.com/daemonp/visonic2mqtt/internal/log"
	"github.com/daemonp/visonic2mqtt/internal/mqtt"
	"github.com/daemonp/visonic2mqtt/internal/panel"
)

func main() {
	configFile := flag.String("config", "config.yml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.LoadConfig(*configFile)
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Create logger
	logger := log.NewLogger(cfg.Log)

	// Create panel
	p := panel.NewPanel(cfg, logger)

	ctx := context.Background()

	// Load snapshot from cache if enabled, otherwise fetch it from the
	// panel service. The fetch doubles as a startup check of the login
	// handshake.
	var snapshot *panel.Snapshot
	if cfg.Cache {
		snapshot, err = cache.Load()
		if err != nil {
			logger.Warn("Failed to load cache: %v", err)
		} else if snapshot != nil {
			logger.Info("Loaded panel snapshot from cache (fetched %s)", snapshot.FetchedAt)
		}
	}

	if snapshot == nil {
		snapshot, err = p.FetchSnapshot(ctx)
		if err != nil {
			logger.Error("Failed to fetch panel snapshot: %v", err)
			os.Exit(1)
		}
		if cfg.Cache {
			if err := cache.Save(snapshot); err != nil {
				logger.Warn("Failed to save cache: %v", err)
			} else {
				logger.Info("Saved panel snapshot to cache")
			}
		}
	}

	// Connect to MQTT broker
	mqttClient := mqtt.NewMQTT(&cfg.MQTT, p, logger)
	if err := mqttClient.Connect(); err != nil {
		logger.Error("Failed to connect to MQTT broker: %v", err)
		os.Exit(1)
	}

	mqttClient.PublishInfo(snapshot.Info)

	// Home Assistant discovery if enabled
	if cfg.HomeAssistant.Discovery {
		ha := homeassistant.New(cfg, mqttClient, logger)
		ha.Start()
	}

	// Wait for termination signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	logger.Info("Shutting down...")
	mqttClient.Close()

	if cfg.Cache {
		if err := cache.Delete(); err != nil {
			logger.Warn("Failed to delete cache: %v", err)
		}
	}
}
