package influxdb

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api"

	"github.com/nerrad567/easycontrols-gateway/internal/infrastructure/config"
)

const (
	connectTimeout = 10 * time.Second
	pingTimeout    = 5 * time.Second

	// Applied when the config leaves batching unset.
	defaultBatchSize     = 100
	defaultFlushInterval = 10 // seconds
)

// Client writes gateway telemetry through the non-blocking WriteAPI.
//
// Points are batched by the library and sent in the background; write
// failures surface through the SetOnError callback, never as return values.
// All methods are safe for concurrent use.
type Client struct {
	client influxdb2.Client
	writer api.WriteAPI

	open    atomic.Bool
	onError atomic.Pointer[func(error)]
}

// Connect pings the server and returns a client bound to cfg.Org/cfg.Bucket.
// It returns ErrDisabled without touching the network when cfg.Enabled is false.
func Connect(cfg config.InfluxDBConfig) (*Client, error) {
	if !cfg.Enabled {
		return nil, ErrDisabled
	}

	client := influxdb2.NewClientWithOptions(cfg.URL, cfg.Token, writeOptions(cfg))

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()
	if err := ping(ctx, client); err != nil {
		client.Close()
		return nil, fmt.Errorf("%w: %w", ErrConnectionFailed, err)
	}

	c := &Client{
		client: client,
		writer: client.WriteAPI(cfg.Org, cfg.Bucket),
	}
	c.open.Store(true)
	go c.forwardErrors(c.writer.Errors())

	return c, nil
}

// writeOptions maps the config onto client options, filling in defaults
// for unset or negative values.
func writeOptions(cfg config.InfluxDBConfig) *influxdb2.Options {
	batch := cfg.BatchSize
	if batch <= 0 {
		batch = defaultBatchSize
	}
	flush := cfg.FlushInterval
	if flush <= 0 {
		flush = defaultFlushInterval
	}

	// #nosec G115 -- both values are positive here
	return influxdb2.DefaultOptions().
		SetBatchSize(uint(batch)).
		SetFlushInterval(uint(flush) * uint(time.Second/time.Millisecond))
}

func ping(ctx context.Context, client influxdb2.Client) error {
	healthy, err := client.Ping(ctx)
	if err != nil {
		return err
	}
	if !healthy {
		return errUnhealthy
	}
	return nil
}

// forwardErrors drains the async error channel into the current callback.
// It exits when the write API is closed.
func (c *Client) forwardErrors(errs <-chan error) {
	for err := range errs {
		if fn := c.onError.Load(); fn != nil {
			(*fn)(err)
		}
	}
}

// SetOnError installs the callback for asynchronous write failures.
func (c *Client) SetOnError(fn func(err error)) {
	if fn == nil {
		c.onError.Store(nil)
		return
	}
	c.onError.Store(&fn)
}

// IsConnected reports whether the client is open. It does not ping; use
// HealthCheck for that.
func (c *Client) IsConnected() bool {
	return c.open.Load()
}

// HealthCheck pings the server.
func (c *Client) HealthCheck(ctx context.Context) error {
	if !c.IsConnected() {
		return ErrNotConnected
	}

	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := ping(ctx, c.client); err != nil {
		return fmt.Errorf("influxdb health check failed: %w", err)
	}
	return nil
}

// Close flushes buffered points and releases the client. Writes after
// Close are dropped. Safe on a zero Client and safe to call twice.
func (c *Client) Close() error {
	if c.client == nil {
		return nil
	}
	if c.open.Swap(false) {
		c.writer.Flush()
		c.client.Close()
	}
	return nil
}
