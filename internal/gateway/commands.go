package gateway

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/nerrad567/easycontrols-gateway/internal/infrastructure/mqtt"
)

// setTimeout bounds a write that arrives over MQTT, including the refresh poll.
const setTimeout = 30 * time.Second

// SetHandler returns an MQTT handler for easycontrols/{site}/set/{name}.
//
// The payload is the raw parameter text. Errors are returned to the MQTT
// client, which logs them; there is no reply topic.
func (g *Gateway) SetHandler(topics mqtt.Topics) mqtt.MessageHandler {
	return func(topic string, payload []byte) error {
		name, ok := topics.ParseSet(topic)
		if !ok {
			return fmt.Errorf("%w: topic %q", ErrUnknownParameter, topic)
		}

		ctx, cancel := context.WithTimeout(context.Background(), setTimeout)
		defer cancel()

		_, err := g.Set(ctx, name, strings.TrimRight(string(payload), "\r\n"))
		return err
	}
}
