package engine

import (
	"gopkg.in/yaml.v3"
)

// CycleEntry describes one state of the cycle table
type CycleEntry struct {
	State        string  `yaml:"state"`
	DwellSeconds float64 `yaml:"dwell_seconds"`
	Next         string  `yaml:"next"`
}

// CycleDescription is the full state table as exported by -describe
type CycleDescription struct {
	Initial       string       `yaml:"initial"`
	CautionResume string       `yaml:"caution_resume"`
	States        []CycleEntry `yaml:"states"`
}

// DescribeCycle builds the state table from NextState and SecondsToStayInState
func DescribeCycle() CycleDescription {
	// Resume target comes from the same toggle the light uses
	probe := &TrafficLight{state: StateCaution}
	probe.ToggleCautionMode()

	desc := CycleDescription{
		Initial:       StateStop.String(),
		CautionResume: probe.State().String(),
	}
	for s := StateStop; s <= StateCaution; s++ {
		desc.States = append(desc.States, CycleEntry{
			State:        s.String(),
			DwellSeconds: SecondsToStayInState(s),
			Next:         NextState(s).String(),
		})
	}
	return desc
}

// MarshalCycle renders DescribeCycle as YAML
func MarshalCycle() ([]byte, error) {
	return yaml.Marshal(DescribeCycle())
}
