package profiles

import (
	"errors"
	"fmt"
	"sort"

	cmap "github.com/orcaman/concurrent-map/v2"
)

var ErrUnknownProfile = errors.New("unknown profile")

// Step maps a temperature threshold (degrees celsius) to a fan duty cycle (percent).
type Step struct {
	Threshold int `json:"threshold"`
	Duty      int `json:"duty"`
}

// Profile is a named fan curve, an ordered list of steps with strictly
// increasing thresholds and monotonically non-decreasing duty cycles.
type Profile struct {
	Name  string `json:"name"`
	Steps []Step `json:"steps"`
}

var (
	ProfileMap = cmap.New[Profile]()
)

// builtInProfiles are the preprogrammed fan curves shipped with the daemon.
// Duty cycles are whole percent, every curve except Silent tops out at 100.
var builtInProfiles = map[string]map[int]int{
	// fan always off
	"Silent": {0: 0},
	// fan off below 56, on at lowest speed above
	"VeryQuiet": {55: 0, 56: 10},
	// fan off below 46, minimum up to 55, then ramps up
	"Quiet": {45: 0, 46: 10, 55: 15, 65: 50, 75: 100},
	// minimum for 41-50, then ramps up to full at 70
	"Balanced": {40: 0, 41: 10, 50: 15, 60: 50, 70: 100},
	// turn on at 56, sudden ramp up above 75 to prevent throttling
	"AggressiveThrottlingPrevention": {55: 0, 56: 10, 75: 15, 80: 100},
	// attempts to keep the temperature below 60
	"Max": {35: 0, 36: 10, 40: 50, 50: 70, 60: 100},
	// fan on at full at all times
	"AlwaysFull": {0: 100},
}

// NewProfile creates a profile from a threshold -> duty map and validates its invariants.
func NewProfile(name string, steps map[int]int) (Profile, error) {
	if len(name) <= 0 {
		return Profile{}, errors.New("profile name must not be empty")
	}
	if len(steps) <= 0 {
		return Profile{}, fmt.Errorf("profile %s: at least one step is required", name)
	}

	thresholds := make([]int, 0, len(steps))
	for threshold := range steps {
		thresholds = append(thresholds, threshold)
	}
	sort.Ints(thresholds)

	ordered := make([]Step, 0, len(thresholds))
	lastDuty := -1
	for _, threshold := range thresholds {
		duty := steps[threshold]
		if duty < 0 || duty > 100 {
			return Profile{}, fmt.Errorf("profile %s: duty cycle %d at %d°C is outside 0..100", name, duty, threshold)
		}
		if duty < lastDuty {
			return Profile{}, fmt.Errorf("profile %s: duty cycle must not decrease with temperature, %d°C -> %d", name, threshold, duty)
		}
		lastDuty = duty
		ordered = append(ordered, Step{Threshold: threshold, Duty: duty})
	}

	return Profile{Name: name, Steps: ordered}, nil
}

// ResolveDuty returns the duty cycle (percent) for the given temperature.
// Profiles are step functions: below the first threshold the first step's
// duty applies, at or above the last threshold the last step's duty applies,
// otherwise the duty of the highest threshold not exceeding the temperature.
func (p Profile) ResolveDuty(temperature float64) int {
	duty := p.Steps[0].Duty
	for _, step := range p.Steps {
		if temperature < float64(step.Threshold) {
			break
		}
		duty = step.Duty
	}
	return duty
}

// LoadTable populates the profile registry with the built-in profiles,
// merged with (and overridden by) the given custom profile definitions.
func LoadTable(custom map[string]map[int]int) error {
	for name, steps := range builtInProfiles {
		profile, err := NewProfile(name, steps)
		if err != nil {
			return err
		}
		ProfileMap.Set(name, profile)
	}

	for name, steps := range custom {
		profile, err := NewProfile(name, steps)
		if err != nil {
			return err
		}
		ProfileMap.Set(name, profile)
	}

	return nil
}

// GetProfile returns the profile with the given name from the registry.
func GetProfile(name string) (Profile, error) {
	profile, exists := ProfileMap.Get(name)
	if !exists {
		return Profile{}, fmt.Errorf("%w: %s", ErrUnknownProfile, name)
	}
	return profile, nil
}

// Names returns the names of all registered profiles, sorted alphabetically.
func Names() []string {
	names := ProfileMap.Keys()
	sort.Strings(names)
	return names
}
