// Package aircraft assembles a complete simulated airframe from a
// configuration: every system built, wired and registered with a scheduler in
// a fixed update order. The E170 through E195 variants are all built by this
// one package; they differ only in their definition files.
package aircraft

import (
	"fmt"
	"time"

	"github.com/ouroboros-sim/ejet/aircond"
	"github.com/ouroboros-sim/ejet/config"
	"github.com/ouroboros-sim/ejet/electrical"
	"github.com/ouroboros-sim/ejet/engine"
	"github.com/ouroboros-sim/ejet/hydraulic"
	"github.com/ouroboros-sim/ejet/instruments"
	"github.com/ouroboros-sim/ejet/pneumatic"
	"github.com/ouroboros-sim/ejet/sim"
)

// Aircraft is one assembled airframe.
type Aircraft struct {
	name    string
	variant string

	scheduler *sim.Scheduler

	engines *engine.System
	bleed   *pneumatic.System
	power   *electrical.System
	hyd     *hydraulic.System
	air     *aircond.System
	panel   *instruments.System
}

// Build constructs the airframe described by a validated configuration.
// Systems update in dependency order: engines first, then the networks that
// feed off their shafts and bleed ports, instruments last.
func Build(cfg *config.Aircraft) (*Aircraft, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	a := &Aircraft{
		name:      cfg.Name,
		variant:   cfg.Variant,
		scheduler: sim.NewScheduler(),
	}

	a.engines = buildEngines(cfg)
	a.bleed = buildPneumatic(cfg)

	power, err := buildElectrical(cfg)
	if err != nil {
		return nil, err
	}
	a.power = power

	a.hyd = buildHydraulics(cfg)
	a.air = buildAirCond(cfg)
	a.panel = instruments.NewSystem(
		instruments.NewClock(time.Now()),
		instruments.NewChronometer(cfg.Instruments.AirframeHours),
		cfg.Instruments.ClockBus,
	)

	a.scheduler.Register(a.engines)
	a.scheduler.Register(a.bleed)
	a.scheduler.Register(a.power)
	a.scheduler.Register(a.hyd)
	a.scheduler.Register(a.air)
	a.scheduler.Register(a.panel)

	return a, nil
}

// Name returns the airframe name from the definition.
func (a *Aircraft) Name() string {
	return a.name
}

// Variant returns the airframe variant.
func (a *Aircraft) Variant() string {
	return a.variant
}

// Scheduler returns the underlying scheduler.
func (a *Aircraft) Scheduler() *sim.Scheduler {
	return a.scheduler
}

// Step advances the whole aircraft by dt seconds.
func (a *Aircraft) Step(dt float64) {
	a.scheduler.Step(dt)
}

// Engines returns the engine system.
func (a *Aircraft) Engines() *engine.System {
	return a.engines
}

// Pneumatic returns the bleed air system.
func (a *Aircraft) Pneumatic() *pneumatic.System {
	return a.bleed
}

// Electrical returns the electrical system.
func (a *Aircraft) Electrical() *electrical.System {
	return a.power
}

// Hydraulics returns the hydraulic system.
func (a *Aircraft) Hydraulics() *hydraulic.System {
	return a.hyd
}

// AirCond returns the air conditioning system.
func (a *Aircraft) AirCond() *aircond.System {
	return a.air
}

// Instruments returns the instrument cluster.
func (a *Aircraft) Instruments() *instruments.System {
	return a.panel
}

func buildEngines(cfg *config.Aircraft) *engine.System {
	fadecs := make([]*engine.FADEC, 0, len(cfg.Engines))
	for _, e := range cfg.Engines {
		fadecs = append(fadecs, engine.NewFADEC(e.Position, engine.FADECSpec{
			Spool: engine.SpoolSpec{
				IdleN1:       e.IdleN1,
				MaxN1:        e.MaxN1,
				IdleN2:       e.IdleN2,
				MaxN2:        e.MaxN2,
				AccelSeconds: e.AccelSeconds,
				DecelSeconds: e.DecelSeconds,
			},
			TOGALimitN1:        e.TOGALimitN1,
			CLBLimitN1:         e.CLBLimitN1,
			CRZLimitN1:         e.CRZLimitN1,
			OverspeedN1:        e.OverspeedN1,
			StarterRateN2:      e.StarterRateN2,
			FuelIntroN2:        e.FuelIntroN2,
			StarterCutoffN2:    e.StarterCutoffN2,
			MinStartBleedPSI:   e.MinStartBleedPSI,
			IdleFuelKgH:        e.IdleFuelKgH,
			MaxFuelKgH:         e.MaxFuelKgH,
			MaxShaftPowerWatts: e.MaxShaftPowerWatts,
			GearboxRPMAtMaxN2:  e.GearboxRPMAtMaxN2,
		}))
	}
	return engine.NewSystem(fadecs...)
}

func buildPneumatic(cfg *config.Aircraft) *pneumatic.System {
	bleedSpec := pneumatic.EngineBleedSpec{
		LPMaxPSI:   cfg.Pneumatic.Bleed.LPMaxPSI,
		HPMaxPSI:   cfg.Pneumatic.Bleed.HPMaxPSI,
		HPSwitchN2: cfg.Pneumatic.Bleed.HPSwitchN2,
		MaxTempC:   cfg.Pneumatic.Bleed.MaxTempC,
	}
	return pneumatic.NewSystem(
		pneumatic.NewEngineBleed(1, bleedSpec),
		pneumatic.NewEngineBleed(2, bleedSpec),
		pneumatic.BleedValveSpec{
			RegulatedPSI:      cfg.Pneumatic.Valve.RegulatedPSI,
			PrecoolerOutTempC: cfg.Pneumatic.Valve.PrecoolerOutTempC,
		},
		pneumatic.NewAPU(pneumatic.APUSpec{
			SpinUpSeconds: cfg.Pneumatic.APU.SpinUpSeconds,
			BleedPSI:      cfg.Pneumatic.APU.BleedPSI,
			BleedTempC:    cfg.Pneumatic.APU.BleedTempC,
		}),
	)
}

func buildElectrical(cfg *config.Aircraft) (*electrical.System, error) {
	net := electrical.NewNetwork()

	for _, c := range cfg.Electrical.Components {
		component, err := buildComponent(c)
		if err != nil {
			return nil, err
		}
		if _, err := net.Add(c.Name, component); err != nil {
			return nil, err
		}
	}

	for _, conn := range cfg.Electrical.Connections {
		from, _ := net.Lookup(conn.From)
		to, _ := net.Lookup(conn.To)
		net.Connect(from, to, conn.Ohms)
	}

	sys := electrical.NewSystem(net)
	for _, gb := range cfg.Electrical.Generators {
		id, _ := net.Lookup(gb.Component)
		sys.BindGenerator(id, gb.Engine)
	}
	for _, rb := range cfg.Electrical.ReportBuses {
		id, _ := net.Lookup(rb.Component)
		sys.ReportBus(id, rb.Name)
	}
	return sys, nil
}

func buildComponent(c config.Component) (electrical.Component, error) {
	switch c.Type {
	case "generator":
		return electrical.NewGenerator(electrical.GeneratorSpec{
			Poles:         c.Generator.Poles,
			RatedWatts:    c.Generator.RatedWatts,
			RatedVolts:    c.Generator.RatedVolts,
			RatedHz:       c.Generator.RatedHz,
			Efficiency:    c.Generator.Efficiency,
			InternalOhms:  c.Generator.InternalOhms,
			SpinUpSeconds: c.Generator.SpinUpSeconds,
			Phases:        c.Generator.Phases,
		}), nil

	case "busbar":
		return electrical.NewBusbar(), nil

	case "breaker":
		return electrical.NewBreaker(electrical.BreakerSpec{
			RatingAmps:   c.Breaker.RatingAmps,
			Curve:        tripCurve(c.Breaker.Curve),
			DelaySeconds: c.Breaker.DelaySeconds,
			AutoReset:    c.Breaker.AutoReset,
			ResetDelay:   c.Breaker.ResetDelay,
		}), nil

	case "load":
		load := electrical.NewLoad(electrical.LoadSpec{
			NominalVolts: c.Load.NominalVolts,
			NominalWatts: c.Load.NominalWatts,
			MinVolts:     c.Load.MinVolts,
			MaxVolts:     c.Load.MaxVolts,
			Response:     voltageResponse(c.Load.Response),
			PowerFactor:  c.Load.PowerFactor,
		})
		load.SetOn(true)
		return load, nil

	case "battery":
		battery := electrical.NewBattery(electrical.BatterySpec{
			NominalVolts: c.Battery.NominalVolts,
			CapacityAh:   c.Battery.CapacityAh,
			InternalOhms: c.Battery.InternalOhms,
			ChargeAmps:   c.Battery.ChargeAmps,
		})
		battery.SetConnected(true)
		return battery, nil

	case "tru":
		return electrical.NewTRU(electrical.TRUSpec{
			OutputVolts:  c.TRU.OutputVolts,
			DropoutVolts: c.TRU.DropoutVolts,
			Efficiency:   c.TRU.Efficiency,
		}), nil
	}
	return nil, fmt.Errorf("aircraft: unknown component type %q", c.Type)
}

func tripCurve(name string) electrical.TripCurve {
	switch name {
	case "short-delay":
		return electrical.TripShortDelay
	case "long-delay":
		return electrical.TripLongDelay
	case "inverse-time":
		return electrical.TripInverseTime
	default:
		return electrical.TripInstant
	}
}

func voltageResponse(name string) electrical.VoltageResponse {
	switch name {
	case "linear":
		return electrical.ResponseLinear
	case "regulated":
		return electrical.ResponseRegulated
	case "proportional":
		return electrical.ResponseProportional
	default:
		return electrical.ResponseBinary
	}
}

func buildHydraulics(cfg *config.Aircraft) *hydraulic.System {
	circuits := make([]*hydraulic.Circuit, 0, len(cfg.Hydraulics))
	for _, h := range cfg.Hydraulics {
		circuit := hydraulic.NewCircuit(h.Number, h.ReservoirLiters)

		if h.EnginePump != nil {
			circuit.AttachEnginePump(hydraulic.EnginePumpSpec{
				RatedPSI:           h.EnginePump.RatedPSI,
				RatedRPM:           h.EnginePump.RatedRPM,
				DisplacementLiters: h.EnginePump.DisplacementLiters,
			}, h.EnginePump.Engine)
		}
		if h.ElectricPump != nil {
			circuit.AttachElectricPump(hydraulic.ElectricPumpSpec{
				RatedPSI:      h.ElectricPump.RatedPSI,
				SpinUpSeconds: h.ElectricPump.SpinUpSeconds,
			}, h.ElectricPump.Bus)
		}

		for _, act := range h.Actuators {
			circuit.AddActuator(act.Name, hydraulic.NewActuator(hydraulic.ActuatorSpec{
				BoreDiameterM:         act.BoreDiameterM,
				RodDiameterM:          act.RodDiameterM,
				StrokeM:               act.StrokeM,
				BulkModulusPa:         act.BulkModulusPa,
				MaxValveFlowM3:        act.MaxValveFlowM3,
				StaticFrictionN:       act.StaticFrictionN,
				DynamicFrictionNsPerM: act.DynamicFrictionNsPerM,
				InternalLeakCoeff:     act.InternalLeakCoeff,
				ExternalLeakCoeff:     act.ExternalLeakCoeff,
				EffectiveMassKg:       act.EffectiveMassKg,
			}))
		}

		circuits = append(circuits, circuit)
	}
	return hydraulic.NewSystem(circuits...)
}

func buildAirCond(cfg *config.Aircraft) *aircond.System {
	packSpec := aircond.PackSpec{
		MinBleedPSI:     cfg.AirCond.Pack.MinBleedPSI,
		FlowKgS:         cfg.AirCond.Pack.FlowKgS,
		MinOutletTempC:  cfg.AirCond.Pack.MinOutletTempC,
		MaxOutletTempC:  cfg.AirCond.Pack.MaxOutletTempC,
		ResponseSeconds: cfg.AirCond.Pack.ResponseSeconds,
	}

	zones := make([]*aircond.Zone, 0, len(cfg.AirCond.Zones))
	for _, z := range cfg.AirCond.Zones {
		zone := aircond.NewZone(aircond.ZoneSpec{
			Name:             z.Name,
			ThermalMassJPerK: z.ThermalMassJPerK,
			LeakWPerK:        z.LeakWPerK,
		}, z.InitialTempC)
		zone.SetTargetTempC(z.TargetTempC)
		zones = append(zones, zone)
	}

	return aircond.NewSystem(
		[]*aircond.Pack{aircond.NewPack(1, packSpec), aircond.NewPack(2, packSpec)},
		zones,
	)
}
