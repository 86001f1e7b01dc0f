package cmd

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/kardianos/service"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"sectoralarm-cli/internal/client"
	"sectoralarm-cli/pkg/models"
)

// Variables to hold flag values
var (
	expHost       string
	expUser       string
	expPass       string
	expPanel      string
	expPort       string
	serviceAction string // "install", "uninstall", "start", "stop"
)

// --- SERVICE WRAPPER ---

// program implements the kardianos/service interface
type program struct {
	exit   chan struct{}
	server *http.Server
	api    *client.Session
}

func (p *program) Start(s service.Service) error {
	// Start should not block. Do the actual work async.
	p.exit = make(chan struct{})
	go p.run()
	return nil
}

func (p *program) run() {
	// 1. Initial Login
	log.Println("Attempting initial login...")
	if err := p.api.Login(); err != nil {
		log.Printf("Fatal: Initial login failed: %v", err)
		// Exit so the service manager attempts a restart.
		os.Exit(1)
	}
	log.Println("Initial login successful.")

	// 2. Setup Prometheus
	registry := prometheus.NewRegistry()
	collector := &PanelCollector{Session: p.api}
	registry.MustRegister(collector)

	handler := promhttp.HandlerFor(registry, promhttp.HandlerOpts{
		ErrorLog: log.Default(),
	})

	mux := http.NewServeMux()
	mux.Handle("/metrics", handler)

	addr := fmt.Sprintf(":%s", expPort)
	p.server = &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	log.Printf("Sector Alarm Exporter listening on %s", addr)

	// Blocking call to listen
	if err := p.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Printf("HTTP Server error: %v", err)
	}
}

func (p *program) Stop(s service.Service) error {
	// Stop should not block. Signal the app to stop.
	log.Println("Stopping service...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if p.server != nil {
		if err := p.server.Shutdown(ctx); err != nil {
			log.Printf("Server forced to shutdown: %v", err)
		}
	}
	p.api.Close()
	close(p.exit)
	return nil
}

// --- COLLECTOR LOGIC ---

type PanelCollector struct {
	Session *client.Session
	Mutex   sync.Mutex
}

var (
	upDesc = prometheus.NewDesc(
		"sectoralarm_up", "Was the last scrape successful.", nil, nil,
	)
	scrapeDurationDesc = prometheus.NewDesc(
		"sectoralarm_scrape_duration_seconds", "Time taken to scrape API.", nil, nil,
	)
	armStateDesc = prometheus.NewDesc(
		"sectoralarm_armed", "Panel arm state (1.0=AWAY, 0.5=HOME, 0.0=DISARMED).", nil, nil,
	)
	temperatureDesc = prometheus.NewDesc(
		"sectoralarm_temperature_celsius", "Sensor temperature.", []string{"serial", "label"}, nil,
	)
	ethernetUpDesc = prometheus.NewDesc(
		"sectoralarm_ethernet_up", "Panel wired network status.", nil, nil,
	)
	lockStateDesc = prometheus.NewDesc(
		"sectoralarm_lock_locked", "Door lock state (1.0=locked).", []string{"serial", "label"}, nil,
	)
)

func (c *PanelCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- upDesc
	ch <- scrapeDurationDesc
	ch <- armStateDesc
	ch <- temperatureDesc
	ch <- ethernetUpDesc
	ch <- lockStateDesc
}

func (c *PanelCollector) Collect(ch chan<- prometheus.Metric) {
	c.Mutex.Lock()
	defer c.Mutex.Unlock()
	start := time.Now()
	success := 1.0

	// 1. Arm state
	if state, err := c.fetchArmStateWithRelogin(); err == nil {
		armVal := 0.0
		switch strings.ToUpper(state.StatusType) {
		case "ARMED_AWAY":
			armVal = 1.0
		case "ARMED_HOME":
			armVal = 0.5
		}
		ch <- prometheus.MustNewConstMetric(armStateDesc, prometheus.GaugeValue, armVal)
	} else {
		success = 0.0
		log.Printf("Error scraping arm state: %v", err)
	}

	// 2. Temperatures
	if readings, err := c.Session.GetTemperature(""); err == nil {
		for _, r := range readings {
			val, err := strconv.ParseFloat(r.Temperature, 64)
			if err != nil {
				continue
			}
			ch <- prometheus.MustNewConstMetric(temperatureDesc, prometheus.GaugeValue, val, r.SerialNo, r.Label)
		}
	} else {
		success = 0.0
		log.Printf("Error scraping temperatures: %v", err)
	}

	// 3. Ethernet
	if eth, err := c.Session.GetEthernetStatus(); err == nil {
		up := 0.0
		if strings.EqualFold(eth.StatusType, "online") {
			up = 1.0
		}
		ch <- prometheus.MustNewConstMetric(ethernetUpDesc, prometheus.GaugeValue, up)
	} else {
		success = 0.0
		log.Printf("Error scraping ethernet status: %v", err)
	}

	// 4. Locks
	if statuses, err := c.Session.GetLockStatus(); err == nil {
		for _, s := range statuses {
			locked := 0.0
			if strings.EqualFold(s.Status, "lock") {
				locked = 1.0
			}
			ch <- prometheus.MustNewConstMetric(lockStateDesc, prometheus.GaugeValue, locked, s.SerialNo, s.Label)
		}
	} else {
		success = 0.0
		log.Printf("Error scraping lock status: %v", err)
	}

	ch <- prometheus.MustNewConstMetric(upDesc, prometheus.GaugeValue, success)
	ch <- prometheus.MustNewConstMetric(scrapeDurationDesc, prometheus.GaugeValue, time.Since(start).Seconds())
}

// fetchArmStateWithRelogin retries exactly once after re-login when the
// server reports the session invalid. This is exporter policy; the
// library itself never retries.
func (c *PanelCollector) fetchArmStateWithRelogin() (*models.ArmState, error) {
	res, err := c.Session.GetArmState()
	if err == nil {
		return res, nil
	}
	if isAuthError(err) {
		if e := c.Session.Login(); e == nil {
			return c.Session.GetArmState()
		}
	}
	return nil, err
}

func isAuthError(err error) bool {
	var respErr *client.ResponseError
	if errors.As(err, &respErr) {
		return respErr.StatusCode == http.StatusUnauthorized || respErr.StatusCode == http.StatusForbidden
	}
	var loginErr *client.LoginError
	return errors.As(err, &loginErr)
}

// --- COMMAND ---

var exporterCmd = &cobra.Command{
	Use:   "exporter",
	Short: "Start Prometheus Exporter service",
	Long: `Starts a long-running HTTP server that exposes panel metrics.
Can be installed as a system service.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Build the Session
		hostClean := strings.TrimRight(expHost, "/")
		var opts []client.Option
		if hostClean != "" {
			opts = append(opts, client.WithBaseURL(hostClean))
		}

		api, err := client.New(expUser, expPass, expPanel, opts...)
		if err != nil {
			log.Fatalf("Fatal: %v", err)
		}

		// 2. Define Service Configuration
		svcConfig := &service.Config{
			Name:        "sectoralarm-exporter",
			DisplayName: "Sector Alarm Prometheus Exporter",
			Description: "Exposes Sector Alarm panel metrics to Prometheus",
			// Arguments passed to the binary when run as a service
			Arguments: []string{
				"exporter",
				"--username", expUser,
				"--password", expPass,
				"--panel", expPanel,
				"--port", expPort,
			},
		}
		if expHost != "" {
			svcConfig.Arguments = append(svcConfig.Arguments, "--host", expHost)
		}

		prg := &program{api: api}

		s, err := service.New(prg, svcConfig)
		if err != nil {
			log.Fatal(err)
		}

		// 3. Handle Service Control Actions (Install, Start, Stop, Uninstall)
		if serviceAction != "" {
			if serviceAction == "install" {
				if expUser == "" || expPass == "" || expPanel == "" {
					log.Fatal("Error: You must provide --username, --password and --panel to install the service.")
				}
			}

			err = service.Control(s, serviceAction)
			if err != nil {
				log.Fatalf("Failed to %s service: %v", serviceAction, err)
			}
			fmt.Printf("Service action '%s' completed successfully.\n", serviceAction)
			return
		}

		// 4. Run the Service (Blocking)
		logger, err := s.Logger(nil)
		if err != nil {
			log.Fatal(err)
		}
		if err = s.Run(); err != nil {
			logger.Error(err)
		}
	},
}

func init() {
	rootCmd.AddCommand(exporterCmd)
	exporterCmd.Flags().StringVar(&expHost, "host", "", "API base URL (defaults to the production host)")
	exporterCmd.Flags().StringVar(&expUser, "username", "", "Sector Alarm username")
	exporterCmd.Flags().StringVar(&expPass, "password", "", "Sector Alarm password")
	exporterCmd.Flags().StringVar(&expPanel, "panel", "", "Panel id")
	exporterCmd.Flags().StringVar(&expPort, "port", "9122", "Port to listen on")

	// Service control
	exporterCmd.Flags().StringVar(&serviceAction, "service", "", "Service action: install, uninstall, start, stop")
}
