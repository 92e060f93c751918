package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// ErrInvalid wraps every validation failure, so callers can distinguish a
// bad definition from an unreadable file.
var ErrInvalid = errors.New("invalid aircraft definition")

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// Report field names as they appear in the YAML file.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return v
}

// Load reads and validates an aircraft definition file.
func Load(path string) (*Aircraft, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read aircraft definition: %w", err)
	}

	ac, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return ac, nil
}

// Parse decodes and validates an aircraft definition. Unknown YAML fields
// are rejected; a typoed key should fail loudly, not silently default.
func Parse(data []byte) (*Aircraft, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var ac Aircraft
	if err := dec.Decode(&ac); err != nil {
		return nil, fmt.Errorf("parse aircraft definition: %w", err)
	}

	if err := ac.Validate(); err != nil {
		return nil, err
	}
	return &ac, nil
}

// Validate checks field constraints and the references between sections.
func (a *Aircraft) Validate() error {
	var problems []string

	if err := validate.Struct(a); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return fmt.Errorf("%w: %v", ErrInvalid, err)
		}
		for _, fe := range fieldErrs {
			problems = append(problems, fieldMessage(fe))
		}
	}

	problems = append(problems, a.checkReferences()...)

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(problems, "; "))
	}
	return nil
}

func fieldMessage(fe validator.FieldError) string {
	// Strip the root struct name; the file has no "Aircraft" key.
	field := strings.TrimPrefix(fe.Namespace(), "Aircraft.")

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", field, fe.Param())
	case "min", "gte":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max", "lte":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "gtfield", "gtefield":
		return fmt.Sprintf("%s must exceed %s", field, fe.Param())
	case "ltfield":
		return fmt.Sprintf("%s must be below %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}

// checkReferences verifies everything the struct tags cannot: name
// uniqueness, cross-section references and type/parameter agreement.
func (a *Aircraft) checkReferences() []string {
	var problems []string

	engines := map[int]bool{}
	for _, e := range a.Engines {
		if engines[e.Position] {
			problems = append(problems, fmt.Sprintf("duplicate engine position %d", e.Position))
		}
		engines[e.Position] = true
	}

	components := map[string]string{} // name -> type
	for _, c := range a.Electrical.Components {
		if _, dup := components[c.Name]; dup {
			problems = append(problems, fmt.Sprintf("duplicate electrical component %q", c.Name))
			continue
		}
		components[c.Name] = c.Type

		if msg := c.checkParams(); msg != "" {
			problems = append(problems, msg)
		}
	}

	for _, conn := range a.Electrical.Connections {
		for _, name := range []string{conn.From, conn.To} {
			if _, ok := components[name]; !ok {
				problems = append(problems, fmt.Sprintf("connection references undeclared component %q", name))
			}
		}
	}

	for _, gb := range a.Electrical.Generators {
		if typ, ok := components[gb.Component]; !ok {
			problems = append(problems, fmt.Sprintf("generator binding references undeclared component %q", gb.Component))
		} else if typ != "generator" {
			problems = append(problems, fmt.Sprintf("generator binding %q targets a %s", gb.Component, typ))
		}
		if !engines[gb.Engine] {
			problems = append(problems, fmt.Sprintf("generator binding %q references undeclared engine %d", gb.Component, gb.Engine))
		}
	}

	busNames := map[string]bool{}
	for _, rb := range a.Electrical.ReportBuses {
		if typ, ok := components[rb.Component]; !ok {
			problems = append(problems, fmt.Sprintf("bus report references undeclared component %q", rb.Component))
		} else if typ != "busbar" {
			problems = append(problems, fmt.Sprintf("bus report %q targets a %s", rb.Component, typ))
		}
		if busNames[rb.Name] {
			problems = append(problems, fmt.Sprintf("duplicate bus name %q", rb.Name))
		}
		busNames[rb.Name] = true
	}

	circuits := map[int]bool{}
	for _, h := range a.Hydraulics {
		if circuits[h.Number] {
			problems = append(problems, fmt.Sprintf("duplicate hydraulic system %d", h.Number))
		}
		circuits[h.Number] = true

		if h.EnginePump != nil && !engines[h.EnginePump.Engine] {
			problems = append(problems, fmt.Sprintf("hydraulic system %d pump references undeclared engine %d", h.Number, h.EnginePump.Engine))
		}
		if h.ElectricPump != nil && !busNames[h.ElectricPump.Bus] {
			problems = append(problems, fmt.Sprintf("hydraulic system %d pump references unreported bus %q", h.Number, h.ElectricPump.Bus))
		}

		actuators := map[string]bool{}
		for _, act := range h.Actuators {
			if actuators[act.Name] {
				problems = append(problems, fmt.Sprintf("duplicate actuator %q on hydraulic system %d", act.Name, h.Number))
			}
			actuators[act.Name] = true
		}
	}

	zones := map[string]bool{}
	for _, z := range a.AirCond.Zones {
		if zones[z.Name] {
			problems = append(problems, fmt.Sprintf("duplicate zone %q", z.Name))
		}
		zones[z.Name] = true
	}

	if a.Instruments.ClockBus != "" && !busNames[a.Instruments.ClockBus] {
		problems = append(problems, fmt.Sprintf("instruments reference unreported bus %q", a.Instruments.ClockBus))
	}

	return problems
}

// checkParams verifies a component carries exactly the parameter block its
// type requires.
func (c *Component) checkParams() string {
	blocks := []struct {
		typ     string
		present bool
	}{
		{"generator", c.Generator != nil},
		{"breaker", c.Breaker != nil},
		{"load", c.Load != nil},
		{"battery", c.Battery != nil},
		{"tru", c.TRU != nil},
	}

	for _, b := range blocks {
		if b.typ == c.Type {
			if !b.present {
				return fmt.Sprintf("component %q is a %s but has no %s block", c.Name, b.typ, b.typ)
			}
			continue
		}
		if b.present {
			return fmt.Sprintf("component %q is a %s but carries a %s block", c.Name, c.Type, b.typ)
		}
	}
	return ""
}
