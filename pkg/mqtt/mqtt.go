// Package mqtt publishes moderation events to an MQTT broker so external
// tooling (dashboards, escalation bots) can follow the moderation feed
// without touching the database.
package mqtt

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/MythicStudios/MythicBotGo/pkg/logger"
	"github.com/MythicStudios/MythicBotGo/pkg/models"
	"github.com/google/uuid"

	mqtt "github.com/eclipse/paho.mqtt.golang"
)

const topicRoot = "mythicbot"

// ActionEvent is the wire form of a moderation action on the broker
type ActionEvent struct {
	EventID   string            `json:"eventId"`
	Action    models.ModAction  `json:"action"`
	EmittedAt time.Time         `json:"emittedAt"`
	Extra     map[string]string `json:"extra,omitempty"`
}

// Bridge connects the bot to the MQTT broker and publishes moderation
// events. Publishing is best effort; a disconnected broker never blocks
// a command.
type Bridge struct {
	client   mqtt.Client
	clientID string
	mu       sync.RWMutex
	handlers map[string]func(topic string, payload []byte)
}

var (
	bridge *Bridge
	once   sync.Once
)

// Init initializes the global MQTT bridge
func Init(host, port, username, password, clientID string) *Bridge {
	once.Do(func() {
		bridge = NewBridge(host, port, username, password, clientID)
	})
	return bridge
}

// Get returns the global MQTT bridge
func Get() *Bridge {
	return bridge
}

// NewBridge creates and connects a new MQTT bridge
func NewBridge(host, port, username, password, clientID string) *Bridge {
	b := &Bridge{
		clientID: clientID,
		handlers: make(map[string]func(topic string, payload []byte)),
	}

	uniqueID := fmt.Sprintf("%s_%s", clientID, uuid.New().String())

	opts := mqtt.NewClientOptions().
		AddBroker(fmt.Sprintf("tcp://%s:%s", host, port)).
		SetClientID(uniqueID).
		SetUsername(username).
		SetPassword(password).
		SetAutoReconnect(true).
		SetConnectRetry(true).
		SetConnectRetryInterval(5 * time.Second).
		SetOnConnectHandler(func(c mqtt.Client) {
			logger.Success(fmt.Sprintf("Conectado al broker MQTT como %s", clientID), "MQTT")
			b.resubscribe()
		}).
		SetConnectionLostHandler(func(c mqtt.Client, err error) {
			logger.Error(fmt.Sprintf("Conexión MQTT perdida: %v", err), "MQTT")
		})

	b.client = mqtt.NewClient(opts)

	token := b.client.Connect()
	if token.Wait() && token.Error() != nil {
		logger.Error(fmt.Sprintf("Error de conexión MQTT: %v", token.Error()), "MQTT")
	}

	return b
}

// Destroy closes the MQTT connection
func (b *Bridge) Destroy() {
	if b.client != nil && b.client.IsConnected() {
		b.client.Disconnect(250)
		logger.System("Conexión MQTT cerrada exitosamente.", "MQTT")
	} else {
		logger.Warn("El cliente MQTT no estaba conectado, no se necesita cerrar.", "MQTT")
	}
}

// IsConnected returns true if connected to the broker
func (b *Bridge) IsConnected() bool {
	return b.client != nil && b.client.IsConnected()
}

// PublishAction emits a moderation action on mythicbot/modlog/<guildID>.
// Each event carries a fresh UUID so consumers can deduplicate.
func (b *Bridge) PublishAction(action models.ModAction) error {
	event := ActionEvent{
		EventID:   uuid.New().String(),
		Action:    action,
		EmittedAt: time.Now(),
	}
	topic := fmt.Sprintf("%s/modlog/%s", topicRoot, action.GuildID)
	return b.publish(topic, event)
}

// PublishStatus emits bot lifecycle events on mythicbot/status
func (b *Bridge) PublishStatus(status string, extra map[string]string) error {
	event := ActionEvent{
		EventID:   uuid.New().String(),
		EmittedAt: time.Now(),
		Extra:     extra,
	}
	if event.Extra == nil {
		event.Extra = map[string]string{}
	}
	event.Extra["status"] = status
	return b.publish(topicRoot+"/status", event)
}

// publish marshals and sends a payload to a topic
func (b *Bridge) publish(topic string, payload interface{}) error {
	jsonData, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	token := b.client.Publish(topic, 0, false, jsonData)
	token.Wait()
	return token.Error()
}

// EnableRemoteStatus answers requests published under mythicbot/control so
// external tooling can poll the bot over the broker without reaching the
// web API. info is re-evaluated on every request.
func (b *Bridge) EnableRemoteStatus(info func() map[string]string) error {
	return b.Subscribe(topicRoot+"/control/#", func(topic string, payload []byte) {
		if !topicMatch(topicRoot+"/control/status", topic) {
			return
		}
		if err := b.PublishStatus("status_reply", info()); err != nil {
			logger.Error(fmt.Sprintf("No se pudo responder la consulta de estado: %v", err), "MQTT")
		}
	})
}

// Subscribe registers a message handler for a topic. Subscriptions are
// replayed after every reconnect.
func (b *Bridge) Subscribe(topic string, handler func(topic string, payload []byte)) error {
	b.mu.Lock()
	b.handlers[topic] = handler
	b.mu.Unlock()

	token := b.client.Subscribe(topic, 0, func(c mqtt.Client, msg mqtt.Message) {
		handler(msg.Topic(), msg.Payload())
	})
	token.Wait()
	return token.Error()
}

// Unsubscribe removes a topic subscription
func (b *Bridge) Unsubscribe(topic string) error {
	b.mu.Lock()
	delete(b.handlers, topic)
	b.mu.Unlock()

	token := b.client.Unsubscribe(topic)
	token.Wait()
	return token.Error()
}

// resubscribe restores all registered subscriptions after a reconnect
func (b *Bridge) resubscribe() {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for topic, handler := range b.handlers {
		h := handler
		b.client.Subscribe(topic, 0, func(c mqtt.Client, msg mqtt.Message) {
			h(msg.Topic(), msg.Payload())
		})
	}
}

// topicMatch checks if a received topic matches a pattern (with wildcards)
// '+' matches exactly one topic level
// '#' matches zero or more topic levels and must be the last character
func topicMatch(pattern, topic string) bool {
	patternParts := strings.Split(pattern, "/")
	topicParts := strings.Split(topic, "/")

	patternLen := len(patternParts)
	topicLen := len(topicParts)

	for i := 0; i < patternLen; i++ {
		if patternParts[i] == "#" {
			return true
		}

		if i >= topicLen {
			return false
		}

		if patternParts[i] == "+" {
			continue
		}

		if patternParts[i] != topicParts[i] {
			return false
		}
	}

	return patternLen == topicLen
}
