// easyControls gateway
//
// Polls a Helios easyControls ventilation unit over its web interface and
// republishes the settings and readings as a typed record over REST,
// WebSocket, MQTT and InfluxDB.
//
// Usage:
//
//	easycontrols                          run the gateway (default)
//	easycontrols run                      run the gateway
//	easycontrols token <subject> [role]   print a signed access token
//	easycontrols fields                   print the parameter registry
//	easycontrols migrate [up|down|status] manage the database schema
//	easycontrols version                  print build information
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"
	"time"

	"golang.org/x/sync/errgroup"

	_ "github.com/nerrad567/easycontrols-gateway/migrations"

	"github.com/nerrad567/easycontrols-gateway/internal/api"
	"github.com/nerrad567/easycontrols-gateway/internal/auth"
	"github.com/nerrad567/easycontrols-gateway/internal/easycontrols"
	"github.com/nerrad567/easycontrols-gateway/internal/gateway"
	"github.com/nerrad567/easycontrols-gateway/internal/history"
	"github.com/nerrad567/easycontrols-gateway/internal/infrastructure/config"
	"github.com/nerrad567/easycontrols-gateway/internal/infrastructure/database"
	"github.com/nerrad567/easycontrols-gateway/internal/infrastructure/influxdb"
	"github.com/nerrad567/easycontrols-gateway/internal/infrastructure/logging"
	"github.com/nerrad567/easycontrols-gateway/internal/infrastructure/mqtt"
	"github.com/nerrad567/easycontrols-gateway/internal/parameter"
)

// Version information - set at build time via ldflags
// Example: go build -ldflags "-X main.version=1.0.0 -X main.commit=abc123"
var (
	version = "dev"     // Semantic version (e.g., "1.0.0")
	commit  = "unknown" // Git commit hash
	date    = "unknown" // Build date
)

// Default configuration file path
const defaultConfigPath = "configs/config.yaml"

// startupCheckTimeout bounds the initial health checks.
const startupCheckTimeout = 10 * time.Second

// errUsage is returned for malformed command lines.
var errUsage = errors.New("usage: easycontrols [run | token <subject> [viewer|operator] | fields | migrate [up|down|status] | version]")

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := dispatch(ctx, os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// dispatch runs the sub-command named by args.
func dispatch(ctx context.Context, args []string, out io.Writer) error {
	if len(args) == 0 {
		return run(ctx)
	}

	switch args[0] {
	case "run":
		return run(ctx)
	case "token":
		return printToken(args[1:], out)
	case "fields":
		return printFields(out)
	case "migrate":
		return migrate(ctx, args[1:], out)
	case "version":
		fmt.Fprintf(out, "easycontrols %s (commit %s, built %s)\n", version, commit, date)
		return nil
	default:
		return errUsage
	}
}

// run is the actual application logic, separated from main for testability.
// It returns nil on clean shutdown.
func run(ctx context.Context) error { //nolint:gocognit,gocyclo // startup wiring: one optional branch per integration
	log := logging.Default()
	log.Info("starting easyControls gateway",
		"version", version,
		"commit", commit,
		"build_date", date,
	)

	configPath := getConfigPath()
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	log.Info("configuration loaded", "path", configPath)

	log = logging.New(cfg.Logging, version)
	log.Info("logger initialised",
		"level", cfg.Logging.Level,
		"format", cfg.Logging.Format,
	)

	// Open database
	db, err := database.Open(cfg.Database)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer func() {
		log.Info("closing database")
		if closeErr := db.Close(); closeErr != nil {
			log.Error("error closing database", "error", closeErr)
		}
	}()
	log.Info("database connected", "path", cfg.Database.Path)

	applied, migrateErr := db.Migrate(ctx)
	if migrateErr != nil {
		return fmt.Errorf("running migrations: %w", migrateErr)
	}
	log.Info("database migrations complete", "applied", applied)

	// Device transport and gateway
	unit, err := easycontrols.New(cfg.Device)
	if err != nil {
		return fmt.Errorf("creating device client: %w", err)
	}
	unit.SetLogger(log.With("component", "easycontrols"))

	gw := gateway.New(gateway.Config{
		SiteID:       cfg.Site.ID,
		PollInterval: cfg.Device.GetPollInterval(),
	}, unit)
	gw.SetLogger(log.With("component", "gateway"))

	var historyRepo history.Repository
	if cfg.History.Enabled {
		historyRepo = history.NewSQLiteRepository(db.DB)
		retention := time.Duration(cfg.History.RetentionDays) * 24 * time.Hour
		gw.AddSink("history", gateway.NewHistorySink(historyRepo, retention))
		log.Info("poll history enabled", "retention_days", cfg.History.RetentionDays)
	} else {
		log.Info("poll history disabled")
	}

	// WebSocket hub, registered before polling starts so no cycle is missed
	hub := api.NewHub(cfg.WebSocket, log.With("component", "websocket"))
	gw.AddSink("websocket", hub)

	// Connect to MQTT broker (optional)
	var mqttClient *mqtt.Client
	if cfg.MQTT.Enabled {
		mqttClient, err = mqtt.Connect(cfg.MQTT, cfg.Site.ID)
		if err != nil {
			return fmt.Errorf("connecting to MQTT: %w", err)
		}
		defer func() {
			log.Info("disconnecting from MQTT")
			if closeErr := mqttClient.Close(); closeErr != nil {
				log.Error("error closing MQTT", "error", closeErr)
			}
		}()
		mqttClient.SetLogger(log.With("component", "mqtt"))
		log.Info("MQTT connected",
			"broker", fmt.Sprintf("%s:%d", cfg.MQTT.Broker.Host, cfg.MQTT.Broker.Port),
			"client_id", cfg.MQTT.Broker.ClientID,
		)

		mqttSink := gateway.NewMQTTSink(mqttClient, mqttClient.Topics())
		gw.AddSink("mqtt", mqttSink)

		// Retained state may have been lost with the broker; resend everything.
		mqttClient.SetOnConnect(func() {
			log.Info("MQTT reconnected")
			mqttSink.Reset()
		})
		mqttClient.SetOnDisconnect(func(err error) {
			log.Warn("MQTT disconnected", "error", err)
		})

		topics := mqttClient.Topics()
		if subErr := mqttClient.Subscribe(topics.AllSets(), mqttClient.QoS(), gw.SetHandler(topics)); subErr != nil {
			return fmt.Errorf("subscribing to %s: %w", topics.AllSets(), subErr)
		}
		// Stop taking writes before the poll loop and the broker connection go away.
		defer func() {
			if unsubErr := mqttClient.Unsubscribe(topics.AllSets()); unsubErr != nil {
				log.Warn("error unsubscribing from parameter writes", "error", unsubErr)
			}
		}()
		log.Info("accepting parameter writes over MQTT", "topic", topics.AllSets())
	} else {
		log.Info("MQTT disabled")
	}

	// Connect to InfluxDB (optional)
	var influxClient *influxdb.Client
	if cfg.InfluxDB.Enabled {
		influxClient, err = influxdb.Connect(cfg.InfluxDB)
		if err != nil {
			return fmt.Errorf("connecting to InfluxDB: %w", err)
		}
		defer func() {
			log.Info("closing InfluxDB connection")
			if closeErr := influxClient.Close(); closeErr != nil {
				log.Error("error closing InfluxDB", "error", closeErr)
			}
		}()
		log.Info("InfluxDB connected",
			"url", cfg.InfluxDB.URL,
			"org", cfg.InfluxDB.Org,
			"bucket", cfg.InfluxDB.Bucket,
		)

		influxClient.SetOnError(func(err error) {
			log.Error("InfluxDB write error", "error", err)
		})
		gw.AddSink("influxdb", gateway.NewInfluxSink(influxClient))
	} else {
		log.Info("InfluxDB disabled")
	}

	if err := healthCheck(ctx, db, mqttClient, influxClient); err != nil {
		return fmt.Errorf("health check failed: %w", err)
	}
	log.Info("all health checks passed")

	// The unit may be briefly unreachable at boot; polling retries on its own.
	checkCtx, cancel := context.WithTimeout(ctx, startupCheckTimeout)
	if err := unit.HealthCheck(checkCtx); err != nil {
		log.Warn("ventilation unit not reachable yet", "url", cfg.Device.URL, "error", err)
	}
	cancel()

	deps := api.Deps{
		Config:   cfg.API,
		WS:       cfg.WebSocket,
		Security: cfg.Security,
		Logger:   log.With("component", "api"),
		Gateway:  gw,
		History:  historyRepo,
		DB:       db.DB,
		Hub:      hub,
		Version:  version,
	}
	if mqttClient != nil {
		deps.MQTT = mqttClient
	}
	server, err := api.New(deps)
	if err != nil {
		return fmt.Errorf("creating API server: %w", err)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		hub.Run(gctx)
		return nil
	})
	g.Go(func() error {
		return gw.Run(gctx)
	})

	if err := server.Start(gctx); err != nil {
		return fmt.Errorf("starting API server: %w", err)
	}
	defer func() {
		if closeErr := server.Close(); closeErr != nil {
			log.Error("error closing API server", "error", closeErr)
		}
	}()

	log.Info("initialisation complete, waiting for shutdown signal",
		"site_id", cfg.Site.ID,
		"poll_interval", cfg.Device.GetPollInterval().String(),
	)

	if err := g.Wait(); err != nil {
		return err
	}

	log.Info("shutdown signal received, cleaning up")
	log.Info("easyControls gateway stopped")
	return nil
}

// getConfigPath returns the configuration file path.
// Uses EASYCONTROLS_CONFIG environment variable if set, otherwise default.
func getConfigPath() string {
	if path := os.Getenv("EASYCONTROLS_CONFIG"); path != "" {
		return path
	}
	return defaultConfigPath
}

// healthCheck verifies all infrastructure connections are healthy.
// mqttClient and influxClient may be nil when disabled.
func healthCheck(ctx context.Context, db *database.DB, mqttClient *mqtt.Client, influxClient *influxdb.Client) error {
	if err := db.HealthCheck(ctx); err != nil {
		return fmt.Errorf("database: %w", err)
	}

	if mqttClient != nil {
		if err := mqttClient.HealthCheck(ctx); err != nil {
			return fmt.Errorf("mqtt: %w", err)
		}
	}

	if influxClient != nil {
		if err := influxClient.HealthCheck(ctx); err != nil {
			return fmt.Errorf("influxdb: %w", err)
		}
	}

	return nil
}

// printToken signs an access token with the configured secret.
func printToken(args []string, out io.Writer) error {
	if len(args) < 1 || len(args) > 2 {
		return errUsage
	}
	role := auth.RoleViewer
	if len(args) == 2 {
		role = auth.Role(args[1])
	}

	cfg, err := config.Load(getConfigPath())
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	token, err := auth.GenerateAccessToken(args[0], role, cfg.Security.JWT.Secret, cfg.Security.JWT.AccessTokenTTL)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, token)
	return nil
}

// printFields writes the parameter registry as an aligned table.
func printFields(out io.Writer) error {
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tLABEL\tKIND")
	for _, d := range parameter.All() {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", d.Name, d.Label, d.Kind)
	}
	return tw.Flush()
}

// migrate applies, rolls back or lists schema migrations without starting
// the gateway.
func migrate(ctx context.Context, args []string, out io.Writer) error {
	action := "up"
	switch len(args) {
	case 0:
	case 1:
		action = args[0]
	default:
		return errUsage
	}
	if action != "up" && action != "down" && action != "status" {
		return errUsage
	}

	cfg, err := config.Load(getConfigPath())
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	db, err := database.Open(cfg.Database)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close() //nolint:errcheck // read-mostly CLI path

	switch action {
	case "up":
		n, err := db.Migrate(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "applied %d migration(s)\n", n)
	case "down":
		m, ok, err := db.MigrateDown(ctx)
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(out, "nothing to roll back")
			return nil
		}
		fmt.Fprintf(out, "rolled back %s %s\n", m.Version, m.Name)
	case "status":
		states, err := db.MigrationStatus(ctx)
		if err != nil {
			return err
		}
		tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "VERSION\tNAME\tAPPLIED")
		for _, st := range states {
			applied := "pending"
			if st.Applied() {
				applied = st.AppliedAt.Format(time.RFC3339)
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\n", st.Version, st.Name, applied)
		}
		return tw.Flush()
	}
	return nil
}
