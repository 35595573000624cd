package control_loop

// DutyControlLoop advances the applied duty cycle towards the target value
// once per control cycle.
type DutyControlLoop interface {
	// Cycle advances the control loop and returns the duty cycle to apply
	Cycle(target int) int
}
