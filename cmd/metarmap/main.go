// cmd/metarmap/main.go
package main

import (
	"context"
	"log"
	"os"
	"time"

	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/host/v3"

	"github.com/metarmap/metarmap/internal/airport"
	"github.com/metarmap/metarmap/internal/board"
	"github.com/metarmap/metarmap/internal/board/aw9523"
	"github.com/metarmap/metarmap/internal/config"
	"github.com/metarmap/metarmap/internal/led"
	"github.com/metarmap/metarmap/internal/logging"
	"github.com/metarmap/metarmap/internal/metar"
	"github.com/metarmap/metarmap/internal/metrics"
	"github.com/metarmap/metarmap/internal/wifi"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatal("usage: metarmap <config.yaml>")
	}

	cfgPath := os.Args[1]

	// --------------------
	// Load + validate config
	// --------------------

	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}

	if err := config.Validate(cfg); err != nil {
		log.Fatalf("config validation failed: %v", err)
	}
	config.Normalize(cfg)

	logger := logging.New(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	})

	ctx := context.Background()

	// --------------------
	// Hardware: buses + driver boards
	// --------------------

	if _, err := host.Init(); err != nil {
		log.Fatalf("host init failed: %v", err)
	}

	buses := make([]i2c.BusCloser, 0, len(cfg.Controllers))
	for i, name := range cfg.Controllers {
		bus, err := i2creg.Open(name)
		if err != nil {
			log.Fatalf("i2c open failed (controller=%d ref=%s): %v", i, name, err)
		}
		defer bus.Close()
		buses = append(buses, bus)
	}

	boards := board.NewRegistry()
	for _, bc := range cfg.Boards {
		addr, err := config.ParseDeviceAddr(bc.Address)
		if err != nil {
			log.Fatalf("board address %q: %v", bc.Address, err)
		}

		dev, err := aw9523.New(buses[bc.Controller], addr)
		if err != nil {
			log.Fatalf("board init failed (controller=%d addr=0x%02X): %v", bc.Controller, addr, err)
		}
		boards.Register(board.BusAddress{Controller: bc.Controller, Addr: addr}, dev)
	}

	// --------------------
	// Airports (construction paints the map yellow)
	// --------------------

	lines, err := config.LoadAirports(cfg.AirportsFile)
	if err != nil {
		log.Fatalf("airports load failed: %v", err)
	}

	airports := airport.NewRegistry()
	panel := led.NewPanel()
	airportLog := logger.With("component", "airport")

	for _, ln := range lines {
		b, err := boards.Resolve(ln.Controller, ln.Addr)
		if err != nil {
			log.Fatalf("airport %s: %v", ln.Code, err)
		}

		rgb, err := led.New(b, ln.RedPin, ln.GreenPin, ln.BluePin)
		if err != nil {
			log.Fatalf("airport %s: %v", ln.Code, err)
		}

		a, err := airport.New(ln.Code, ln.Alternate, rgb, cfg.Brightness, airportLog)
		if err != nil {
			log.Fatalf("airport %s: %v", ln.Code, err)
		}

		airports.Add(a)
		panel.Add(rgb)
	}

	logger.Info("map built",
		"controllers", len(cfg.Controllers),
		"boards", boards.Len(),
		"airports", airports.Len())

	// --------------------
	// Metrics (optional)
	// --------------------

	if cfg.Metrics.Listen != "" {
		go func() {
			if err := metrics.Serve(cfg.Metrics.Listen); err != nil {
				logger.Error("metrics listener failed", "error", err)
			}
		}()
	}

	// --------------------
	// WiFi gate
	// --------------------

	manager, err := wifi.NewManager(wifi.NMCLIRadio{}, panel, wifi.Config{
		SSID:       cfg.SSID,
		Password:   cfg.Password,
		Attempts:   cfg.WiFi.Attempts,
		Delay:      time.Duration(cfg.WiFi.DelaySeconds) * time.Second,
		Brightness: cfg.Brightness,
	}, logger.With("component", "wifi"))
	if err != nil {
		log.Fatalf("wifi manager build failed: %v", err)
	}

	if err := manager.Connect(ctx); err != nil {
		if ferr := panel.Fill(led.Red, cfg.Brightness); ferr != nil {
			logger.Warn("failure indicator failed", "error", ferr)
		}
		logger.Error("wifi connection failed", "error", err)
		os.Exit(1)
	}

	if err := panel.Fill(led.Green, cfg.Brightness); err != nil {
		logger.Warn("success indicator failed", "error", err)
	}
	time.Sleep(time.Second)
	if err := panel.Fill(led.Yellow, cfg.Brightness); err != nil {
		logger.Warn("reset indicator failed", "error", err)
	}

	// --------------------
	// Poll loop (runs until process exit)
	// --------------------

	client := metar.NewClient(metar.Config{
		Endpoint: cfg.Weather.Endpoint,
		Timeout:  time.Duration(cfg.Weather.TimeoutSeconds) * time.Second,
	})

	scheduler, err := airport.NewScheduler(
		airports,
		client,
		time.Duration(cfg.Poll.IntervalSeconds)*time.Second,
		logger.With("component", "scheduler"),
	)
	if err != nil {
		log.Fatalf("scheduler build failed: %v", err)
	}

	scheduler.Run(ctx)
}
