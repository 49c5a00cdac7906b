// Package mqtt provides MQTT client connectivity for the easyControls gateway.
//
// This package manages:
//   - Connection to a Mosquitto broker with auto-reconnect
//   - Message publishing with QoS guarantees
//   - Topic subscriptions with wildcard support
//   - Last Will and Testament (LWT) for offline detection
//
// # Architecture
//
// The gateway publishes the canonical record and each projection as retained
// messages so that home automation controllers see the latest state on
// subscribe. Writes arrive on the set tree and are forwarded to the unit.
//
//	Ventilation unit ↔ Gateway ↔ MQTT Broker ↔ Controllers
//
// # Security Considerations
//
//   - Use TLS outside a trusted LAN (cfg.Broker.TLS=true)
//   - Anyone allowed to publish to easycontrols/{site}/set/# can change
//     unit settings, so restrict it with broker ACLs
//
// # Usage
//
//	client, err := mqtt.Connect(cfg.MQTT, cfg.Site.ID)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
//
//	err = client.PublishRetained(client.Topics().View("booster"), payload)
package mqtt
