// Package influxdb provides InfluxDB connectivity for the easyControls gateway.
//
// It wraps the official influxdb-client-go v2 library for connection
// management, metric writing, and health monitoring.
//
// # Purpose
//
// Every settled record is written as one point in the "ventilation"
// measurement, tagged with the site ID, with one float field per numeric
// parameter. Poll outcomes go to "gateway_poll".
//
// # Usage
//
//	client, err := influxdb.Connect(cfg.InfluxDB)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
//
//	client.WriteRecord(cfg.Site.ID, rec.Metrics(), time.Now())
//
// # Error Handling
//
// Write operations are non-blocking and batch errors are delivered via the
// SetOnError callback. Connection and health check errors are returned
// directly.
package influxdb
