package main

import (
	"context"
	"log/slog"
	"os"
	ossignal "os/signal"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/ouroboros-sim/ejet/aircraft"
	"github.com/ouroboros-sim/ejet/config"
	"github.com/ouroboros-sim/ejet/signal"
	"github.com/ouroboros-sim/ejet/sim"
)

var (
	runRate        float64
	runWatch       bool
	runStart       bool
	statusInterval time.Duration
)

var runCmd = &cobra.Command{
	Use:   "run <config.yaml>",
	Short: "Run an aircraft standalone at a fixed rate",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		path := args[0]

		ac, err := loadAircraft(path)
		if err != nil {
			fatal("loading aircraft", err)
		}

		ctx, stop := ossignal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		reload := make(chan *aircraft.Aircraft, 1)
		if runWatch {
			watcher, err := watchDefinition(path, reload)
			if err != nil {
				fatal("watching definition", err)
			}
			defer watcher.Close()
		}

		if runStart {
			groundStart(ac)
			slog.Info("ground start commanded")
		}

		slog.Info("simulation started",
			"aircraft", ac.Name(),
			"variant", ac.Variant(),
			"rate_hz", runRate,
		)
		runLoop(ctx, ac, reload)
		slog.Info("simulation stopped")
	},
}

func runLoop(ctx context.Context, ac *aircraft.Aircraft, reload <-chan *aircraft.Aircraft) {
	interval := time.Duration(float64(time.Second) / runRate)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	status := time.NewTicker(statusInterval)
	defer status.Stop()

	// Fixed-size steps keep the physics deterministic; the accumulator
	// absorbs ticker jitter and the clamp swallows stalls.
	clock := sim.NewClock()
	stepper := &sim.FixedStep{StepSize: 1.0 / runRate, MaxDelta: 0.25}

	for {
		select {
		case <-ctx.Done():
			return

		case fresh := <-reload:
			ac = fresh
			if runStart {
				groundStart(ac)
			}
			clock.Delta()
			slog.Info("aircraft reloaded", "variant", ac.Variant())

		case <-ticker.C:
			for n := stepper.Advance(clock.Delta()); n > 0; n-- {
				ac.Step(stepper.StepSize)
			}

		case <-status.C:
			logStatus(ac.Snapshot())
		}
	}
}

// groundStart commands an unattended start: APU bleed to both ducts, electric
// pumps on, both engines armed. The FADECs hold the sequence until starter air
// arrives, so everything can be commanded up front.
func groundStart(ac *aircraft.Aircraft) {
	apu := ac.Pneumatic().APU()
	apu.Start()
	apu.SetBleed(true)
	ac.Pneumatic().Valve(signal.Left).SetOpen(true)
	ac.Pneumatic().Valve(signal.Right).SetOpen(true)

	for number := 1; number <= 3; number++ {
		circuit := ac.Hydraulics().Circuit(number)
		if circuit == nil || circuit.ElectricPump() == nil {
			continue
		}
		circuit.ElectricPump().SetCommanded(true)
	}

	for position := 1; position <= 2; position++ {
		fadec := ac.Engines().FADEC(position)
		if fadec == nil {
			continue
		}
		fadec.SetFuel(true)
		fadec.PressStart()
	}
}

func logStatus(snap aircraft.Snapshot) {
	for _, e := range snap.Engines {
		slog.Info("engine", "pos", e.Engine, "phase", e.Phase,
			"n1", e.N1, "n2", e.N2, "fuel_kgh", e.FuelFlowKgH)
	}
	for _, b := range snap.Buses {
		slog.Debug("bus", "name", b.Name, "volts", b.Volts, "powered", b.Powered)
	}
	for _, h := range snap.Hydraulics {
		slog.Debug("hydraulic", "system", h.System, "psi", h.PressurePSI)
	}
	for _, z := range snap.Zones {
		slog.Debug("zone", "name", z.Zone, "temp_c", z.TempC, "target_c", z.TargetTempC)
	}
}

// watchDefinition reloads the aircraft whenever the definition file is
// written. A definition that fails to load leaves the running aircraft in
// place.
func watchDefinition(path string, reload chan<- *aircraft.Aircraft) (*fsnotify.Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := watcher.Add(path); err != nil {
		watcher.Close()
		return nil, err
	}

	go func() {
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
					continue
				}

				ac, err := loadAircraft(path)
				if err != nil {
					slog.Error("reload failed, keeping current aircraft", "error", err)
					continue
				}

				select {
				case reload <- ac:
				default:
				}

			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				slog.Error("watcher error", "error", err)
			}
		}
	}()

	return watcher, nil
}

func loadAircraft(path string) (*aircraft.Aircraft, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	return aircraft.Build(cfg)
}

func init() {
	runCmd.Flags().Float64Var(&runRate, "rate", 60, "Simulation rate in steps per second")
	runCmd.Flags().BoolVar(&runWatch, "watch", false, "Reload the aircraft when the definition file changes")
	runCmd.Flags().BoolVar(&runStart, "start", false, "Command an APU and engine ground start after loading")
	runCmd.Flags().DurationVar(&statusInterval, "status-interval", 5*time.Second, "Interval between status log lines")
	rootCmd.AddCommand(runCmd)
}
