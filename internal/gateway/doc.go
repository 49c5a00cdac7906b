// Package gateway runs the poll loop that keeps the canonical record in step
// with the ventilation unit and fans every cycle out to the configured sinks.
//
// Each cycle fetches the configured XML pages, merges them into one frame
// and applies it to the record store. Readers always see a complete record.
// A failed fetch or a malformed document leaves the record at its last good
// state and is reported to the sinks as a failed cycle.
//
// Writes go the other way: Set resolves a canonical name to its label,
// validates the text against the parameter's kind, posts it to the unit and
// then polls so the record reflects what the unit accepted.
//
//	gw := gateway.New(gateway.Config{SiteID: "home", PollInterval: 30 * time.Second}, client)
//	gw.AddSink("mqtt", gateway.NewMQTTSink(mqttClient, mqttClient.Topics()))
//	go gw.Run(ctx)
package gateway
