package controller

import (
	"context"
	"sync"
	"time"

	"github.com/fanctrld/fanctrld/internal/control_loop"
	"github.com/fanctrld/fanctrld/internal/fans"
	"github.com/fanctrld/fanctrld/internal/persistence"
	"github.com/fanctrld/fanctrld/internal/profiles"
	"github.com/fanctrld/fanctrld/internal/schedule"
	"github.com/fanctrld/fanctrld/internal/sensors"
	"github.com/fanctrld/fanctrld/internal/ui"
)

type FanControllerStatistics struct {
	// counter for failed sensor reads, the iteration is skipped on failure
	SensorReadErrorCount int
	// counter for failed duty cycle writes
	OutputWriteErrorCount int
}

type FanController interface {
	// Run starts the control loop and blocks until the context is cancelled
	Run(ctx context.Context) error
	// UpdateFanSpeed runs a single control cycle
	UpdateFanSpeed() error

	GetFanId() string
	GetActiveProfile() string
	GetTargetDuty() int
	GetStatistics() FanControllerStatistics
}

type fanController struct {
	persistence persistence.Persistence
	fan         fans.Fan
	sensor      sensors.Sensor
	schedule    schedule.Schedule
	controlLoop control_loop.DutyControlLoop

	updateRate         time.Duration
	initialSpinupDelay time.Duration

	// clock is a time source, swapped out in tests
	clock func() time.Time

	mu            sync.Mutex
	stats         FanControllerStatistics
	activeProfile string
	targetDuty    int
	lastSetDuty   *int
}

func NewFanController(
	persistence persistence.Persistence,
	fan fans.Fan,
	sensor sensors.Sensor,
	sched schedule.Schedule,
	controlLoop control_loop.DutyControlLoop,
	updateRate time.Duration,
	initialSpinupDelay time.Duration,
) FanController {
	return &fanController{
		persistence:        persistence,
		fan:                fan,
		sensor:             sensor,
		schedule:           sched,
		controlLoop:        controlLoop,
		updateRate:         updateRate,
		initialSpinupDelay: initialSpinupDelay,
		clock:              time.Now,
	}
}

// ComputeDuty resolves the target duty cycle for the given point in time and
// temperature by selecting the active profile from the schedule and evaluating
// its step table. The same inputs always yield the same result.
func ComputeDuty(now time.Time, temperature float64, sched schedule.Schedule) (int, string, error) {
	profileName := sched.ActiveProfile(now)
	profile, err := profiles.GetProfile(profileName)
	if err != nil {
		return 0, profileName, err
	}
	return profile.ResolveDuty(temperature), profileName, nil
}

func (f *fanController) Run(ctx context.Context) error {
	fan := f.fan

	// restore the duty cycle that was active before the last shutdown,
	// so the fan doesn't sit idle until the first sensor reading
	if duty, err := f.persistence.LoadFanDuty(fan.GetId()); err == nil {
		ui.Info("Restoring previous duty cycle of %d%% for fan '%s'", duty, fan.GetId())
		if err = f.setDuty(duty); err != nil {
			ui.Warning("Unable to restore duty cycle of fan '%s': %v", fan.GetId(), err)
		}
	}

	if f.initialSpinupDelay > 0 {
		ui.Info("Spinning up fan '%s' for %v...", fan.GetId(), f.initialSpinupDelay)
		if err := f.setDuty(fans.MaxDuty); err != nil {
			ui.Warning("Unable to spin up fan '%s': %v", fan.GetId(), err)
		}
		select {
		case <-ctx.Done():
			f.turnOff()
			return nil
		case <-time.After(f.initialSpinupDelay):
		}
	}

	ui.Info("Starting controller loop for fan '%s'", fan.GetId())
	tick := time.Tick(f.updateRate)
	for {
		select {
		case <-ctx.Done():
			f.turnOff()
			return nil
		case <-tick:
			if err := f.UpdateFanSpeed(); err != nil {
				ui.Error("Error in FanController for fan '%s': %v", fan.GetId(), err)
				return err
			}
		}
	}
}

// UpdateFanSpeed runs a single control cycle. Transient sensor and output
// failures are logged and skipped, keeping the previous duty cycle applied.
func (f *fanController) UpdateFanSpeed() error {
	fan := f.fan
	now := f.clock()

	temperature, err := f.sensor.GetValue()
	if err != nil {
		f.mu.Lock()
		f.stats.SensorReadErrorCount++
		f.mu.Unlock()
		ui.Warning("Unable to read sensor '%s', keeping previous duty cycle: %v", f.sensor.GetId(), err)
		return nil
	}
	// the rolling window only feeds statistics and the api,
	// control decisions use the raw reading
	f.sensor.AppendValue(temperature)

	target, profileName, err := ComputeDuty(now, temperature, f.schedule)
	if err != nil {
		// profiles are validated at startup, so the table must have
		// been tampered with at runtime
		return err
	}

	f.mu.Lock()
	f.activeProfile = profileName
	f.targetDuty = target
	f.mu.Unlock()

	duty := f.controlLoop.Cycle(target)
	// log lines carry their own timestamp, stdout may not reach a journal
	ui.Info("%s | Sensor '%s' at %.1f°C, profile '%s' -> duty %d%% (target %d%%)",
		now.Format(time.RFC3339), f.sensor.GetId(), temperature, profileName, duty, target)

	if err = f.setDuty(duty); err != nil {
		f.mu.Lock()
		f.stats.OutputWriteErrorCount++
		f.mu.Unlock()
		ui.Error("Unable to set duty cycle of fan '%s' to %d%%: %v", fan.GetId(), duty, err)
	}
	return nil
}

// setDuty applies the given duty cycle to the fan and persists it on success.
// Writing is skipped when the value is already applied.
func (f *fanController) setDuty(duty int) error {
	f.mu.Lock()
	lastSetDuty := f.lastSetDuty
	f.mu.Unlock()

	if lastSetDuty != nil && *lastSetDuty == duty {
		return nil
	}
	if err := f.fan.SetDuty(duty); err != nil {
		return err
	}

	f.mu.Lock()
	f.lastSetDuty = &duty
	f.mu.Unlock()

	if err := f.persistence.SaveFanDuty(f.fan.GetId(), duty); err != nil {
		ui.Warning("Unable to save duty cycle of fan '%s': %v", f.fan.GetId(), err)
	}
	return nil
}

// turnOff stops the fan on graceful shutdown
func (f *fanController) turnOff() {
	ui.Info("Turning off fan '%s'...", f.fan.GetId())
	if err := f.setDuty(fans.MinDuty); err != nil {
		ui.Warning("Unable to turn off fan '%s': %v", f.fan.GetId(), err)
	}
}

func (f *fanController) GetFanId() string {
	return f.fan.GetId()
}

func (f *fanController) GetActiveProfile() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.activeProfile
}

func (f *fanController) GetTargetDuty() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.targetDuty
}

func (f *fanController) GetStatistics() FanControllerStatistics {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.stats
}
