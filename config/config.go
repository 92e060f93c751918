// Package config defines the aircraft definition file format. A definition is
// a single YAML document describing one airframe variant: engines, the
// electrical network, hydraulic circuits, bleed system, packs and zones, and
// the instrument fit. Loading validates both field constraints and the
// references between sections before any system is built from it.
package config

// Aircraft is the root of an aircraft definition file.
type Aircraft struct {
	Name    string `yaml:"name" validate:"required"`
	Variant string `yaml:"variant" validate:"required,oneof=E170 E175 E190 E195"`

	Engines     []Engine           `yaml:"engines" validate:"required,min=1,max=2,dive"`
	Pneumatic   Pneumatic          `yaml:"pneumatic"`
	Electrical  Electrical         `yaml:"electrical"`
	Hydraulics  []HydraulicCircuit `yaml:"hydraulics" validate:"dive"`
	AirCond     AirCond            `yaml:"aircond"`
	Instruments Instruments        `yaml:"instruments"`
}

// Engine holds one engine's spool and FADEC parameters.
type Engine struct {
	Position int `yaml:"position" validate:"required,min=1,max=2"`

	IdleN1       float64 `yaml:"idle_n1" validate:"required,gt=0"`
	MaxN1        float64 `yaml:"max_n1" validate:"required,gtfield=IdleN1"`
	IdleN2       float64 `yaml:"idle_n2" validate:"required,gt=0"`
	MaxN2        float64 `yaml:"max_n2" validate:"required,gtfield=IdleN2"`
	AccelSeconds float64 `yaml:"accel_seconds" validate:"required,gt=0"`
	DecelSeconds float64 `yaml:"decel_seconds" validate:"required,gt=0"`

	TOGALimitN1 float64 `yaml:"toga_limit_n1" validate:"required,gt=0"`
	CLBLimitN1  float64 `yaml:"clb_limit_n1" validate:"required,gt=0"`
	CRZLimitN1  float64 `yaml:"crz_limit_n1" validate:"required,gt=0"`
	OverspeedN1 float64 `yaml:"overspeed_n1" validate:"gte=0"`

	StarterRateN2    float64 `yaml:"starter_rate_n2" validate:"required,gt=0"`
	FuelIntroN2      float64 `yaml:"fuel_intro_n2" validate:"required,gt=0"`
	StarterCutoffN2  float64 `yaml:"starter_cutoff_n2" validate:"required,gtfield=FuelIntroN2"`
	MinStartBleedPSI float64 `yaml:"min_start_bleed_psi" validate:"required,gt=0"`

	IdleFuelKgH        float64 `yaml:"idle_fuel_kgh" validate:"gte=0"`
	MaxFuelKgH         float64 `yaml:"max_fuel_kgh" validate:"gte=0"`
	MaxShaftPowerWatts float64 `yaml:"max_shaft_power_watts" validate:"required,gt=0"`
	GearboxRPMAtMaxN2  float64 `yaml:"gearbox_rpm_at_max_n2" validate:"required,gt=0"`
}

// Pneumatic holds the bleed system parameters, shared by both sides.
type Pneumatic struct {
	Bleed BleedPort  `yaml:"bleed"`
	Valve BleedValve `yaml:"valve"`
	APU   APU        `yaml:"apu"`
}

// BleedPort describes one engine's bleed extraction.
type BleedPort struct {
	LPMaxPSI   float64 `yaml:"lp_max_psi" validate:"required,gt=0"`
	HPMaxPSI   float64 `yaml:"hp_max_psi" validate:"required,gtfield=LPMaxPSI"`
	HPSwitchN2 float64 `yaml:"hp_switch_n2" validate:"required,gt=0"`
	MaxTempC   float64 `yaml:"max_temp_c" validate:"required,gt=0"`
}

// BleedValve describes the pressure-regulating shutoff valves.
type BleedValve struct {
	RegulatedPSI      float64 `yaml:"regulated_psi" validate:"required,gt=0"`
	PrecoolerOutTempC float64 `yaml:"precooler_out_temp_c" validate:"required,gt=0"`
}

// APU describes the auxiliary power unit bleed source.
type APU struct {
	SpinUpSeconds float64 `yaml:"spin_up_seconds" validate:"required,gt=0"`
	BleedPSI      float64 `yaml:"bleed_psi" validate:"required,gt=0"`
	BleedTempC    float64 `yaml:"bleed_temp_c" validate:"required,gt=0"`
}

// Electrical declares the distribution network: components, the wiring
// between them, which generators follow which engine, and which busbars are
// reported on the simulation bus.
type Electrical struct {
	Components  []Component        `yaml:"components" validate:"dive"`
	Connections []Connection       `yaml:"connections" validate:"dive"`
	Generators  []GeneratorBinding `yaml:"generators" validate:"dive"`
	ReportBuses []BusReport        `yaml:"report_buses" validate:"dive"`
}

// Component declares one network component. Type selects which parameter
// block applies; busbars take none.
type Component struct {
	Name string `yaml:"name" validate:"required"`
	Type string `yaml:"type" validate:"required,oneof=generator busbar breaker load battery tru"`

	Generator *Generator    `yaml:"generator"`
	Breaker   *Breaker      `yaml:"breaker"`
	Load      *ConsumerLoad `yaml:"load"`
	Battery   *Battery      `yaml:"battery"`
	TRU       *TRU          `yaml:"tru"`
}

// Generator holds one AC generator's electrical parameters.
type Generator struct {
	Poles         float64 `yaml:"poles" validate:"required,gt=0"`
	RatedWatts    float64 `yaml:"rated_watts" validate:"required,gt=0"`
	RatedVolts    float64 `yaml:"rated_volts" validate:"required,gt=0"`
	RatedHz       float64 `yaml:"rated_hz" validate:"required,gt=0"`
	Efficiency    float64 `yaml:"efficiency" validate:"required,gt=0,lte=1"`
	InternalOhms  float64 `yaml:"internal_ohms" validate:"gte=0"`
	SpinUpSeconds float64 `yaml:"spin_up_seconds" validate:"gte=0"`
	Phases        int     `yaml:"phases" validate:"required,min=1,max=3"`
}

// Breaker holds one circuit breaker's protection parameters.
type Breaker struct {
	RatingAmps   float64 `yaml:"rating_amps" validate:"required,gt=0"`
	Curve        string  `yaml:"curve" validate:"required,oneof=instant short-delay long-delay inverse-time"`
	DelaySeconds float64 `yaml:"delay_seconds" validate:"gte=0"`
	AutoReset    bool    `yaml:"auto_reset"`
	ResetDelay   float64 `yaml:"reset_delay" validate:"gte=0"`
}

// ConsumerLoad holds one consumer's draw parameters.
type ConsumerLoad struct {
	NominalVolts float64 `yaml:"nominal_volts" validate:"required,gt=0"`
	NominalWatts float64 `yaml:"nominal_watts" validate:"required,gt=0"`
	MinVolts     float64 `yaml:"min_volts" validate:"gte=0"`
	MaxVolts     float64 `yaml:"max_volts" validate:"gtefield=MinVolts"`
	Response     string  `yaml:"response" validate:"required,oneof=binary linear regulated proportional"`
	PowerFactor  float64 `yaml:"power_factor" validate:"gte=0,lte=1"`
}

// Battery holds one battery's parameters.
type Battery struct {
	NominalVolts float64 `yaml:"nominal_volts" validate:"required,gt=0"`
	CapacityAh   float64 `yaml:"capacity_ah" validate:"required,gt=0"`
	InternalOhms float64 `yaml:"internal_ohms" validate:"gte=0"`
	ChargeAmps   float64 `yaml:"charge_amps" validate:"gte=0"`
}

// TRU holds one transformer-rectifier unit's parameters.
type TRU struct {
	OutputVolts  float64 `yaml:"output_volts" validate:"required,gt=0"`
	DropoutVolts float64 `yaml:"dropout_volts" validate:"required,gt=0"`
	Efficiency   float64 `yaml:"efficiency" validate:"required,gt=0,lte=1"`
}

// Connection wires two declared components.
type Connection struct {
	From string  `yaml:"from" validate:"required"`
	To   string  `yaml:"to" validate:"required"`
	Ohms float64 `yaml:"ohms" validate:"gte=0"`
}

// GeneratorBinding drives a declared generator from an engine position.
type GeneratorBinding struct {
	Component string `yaml:"component" validate:"required"`
	Engine    int    `yaml:"engine" validate:"required,min=1,max=2"`
}

// BusReport publishes a declared busbar's state under a bus name.
type BusReport struct {
	Component string `yaml:"component" validate:"required"`
	Name      string `yaml:"name" validate:"required"`
}

// HydraulicCircuit declares one hydraulic system.
type HydraulicCircuit struct {
	Number          int     `yaml:"number" validate:"required,min=1,max=3"`
	ReservoirLiters float64 `yaml:"reservoir_liters" validate:"required,gt=0"`

	EnginePump   *EnginePump   `yaml:"engine_pump"`
	ElectricPump *ElectricPump `yaml:"electric_pump"`

	Actuators []Actuator `yaml:"actuators" validate:"dive"`
}

// EnginePump declares an engine-driven pump on a circuit.
type EnginePump struct {
	Engine             int     `yaml:"engine" validate:"required,min=1,max=2"`
	RatedPSI           float64 `yaml:"rated_psi" validate:"required,gt=0"`
	RatedRPM           float64 `yaml:"rated_rpm" validate:"required,gt=0"`
	DisplacementLiters float64 `yaml:"displacement_liters" validate:"required,gt=0"`
}

// ElectricPump declares an AC motor pump on a circuit.
type ElectricPump struct {
	Bus           string  `yaml:"bus" validate:"required"`
	RatedPSI      float64 `yaml:"rated_psi" validate:"required,gt=0"`
	SpinUpSeconds float64 `yaml:"spin_up_seconds" validate:"gte=0"`
}

// Actuator declares one cylinder on a circuit. Geometry is SI.
type Actuator struct {
	Name string `yaml:"name" validate:"required"`

	BoreDiameterM float64 `yaml:"bore_diameter_m" validate:"required,gt=0"`
	RodDiameterM  float64 `yaml:"rod_diameter_m" validate:"required,gt=0,ltfield=BoreDiameterM"`
	StrokeM       float64 `yaml:"stroke_m" validate:"required,gt=0"`

	BulkModulusPa  float64 `yaml:"bulk_modulus_pa" validate:"required,gt=0"`
	MaxValveFlowM3 float64 `yaml:"max_valve_flow_m3" validate:"required,gt=0"`

	StaticFrictionN       float64 `yaml:"static_friction_n" validate:"gte=0"`
	DynamicFrictionNsPerM float64 `yaml:"dynamic_friction_ns_per_m" validate:"gte=0"`
	InternalLeakCoeff     float64 `yaml:"internal_leak_coeff" validate:"gte=0"`
	ExternalLeakCoeff     float64 `yaml:"external_leak_coeff" validate:"gte=0"`
	EffectiveMassKg       float64 `yaml:"effective_mass_kg" validate:"gte=0"`
}

// AirCond declares the pack pair and the conditioned zones.
type AirCond struct {
	Pack  Pack   `yaml:"pack"`
	Zones []Zone `yaml:"zones" validate:"dive"`
}

// Pack holds the parameters shared by both packs.
type Pack struct {
	MinBleedPSI     float64 `yaml:"min_bleed_psi" validate:"required,gt=0"`
	FlowKgS         float64 `yaml:"flow_kg_s" validate:"required,gt=0"`
	MinOutletTempC  float64 `yaml:"min_outlet_temp_c"`
	MaxOutletTempC  float64 `yaml:"max_outlet_temp_c" validate:"gtfield=MinOutletTempC"`
	ResponseSeconds float64 `yaml:"response_seconds" validate:"gte=0"`
}

// Zone declares one conditioned compartment.
type Zone struct {
	Name             string  `yaml:"name" validate:"required"`
	ThermalMassJPerK float64 `yaml:"thermal_mass_j_per_k" validate:"required,gt=0"`
	LeakWPerK        float64 `yaml:"leak_w_per_k" validate:"gte=0"`
	InitialTempC     float64 `yaml:"initial_temp_c"`
	TargetTempC      float64 `yaml:"target_temp_c"`
}

// Instruments declares the instrument fit.
type Instruments struct {
	ClockBus      string  `yaml:"clock_bus" validate:"required"`
	AirframeHours float64 `yaml:"airframe_hours" validate:"gte=0"`
}
