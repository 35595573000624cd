package configuration

type FanConfig struct {
	Id   string         `json:"id"`
	File *FileFanConfig `json:"file,omitempty"`
	Cmd  *CmdFanConfig  `json:"cmd,omitempty"`

	// Scaling maps duty cycle percent to the raw pwm value to write,
	// linearly interpolated between entries. When empty, percent values
	// map linearly onto 0..255.
	Scaling map[int]int `json:"scaling,omitempty"`
}

// FileFanConfig drives a sysfs-style pwm file expecting raw values 0..255.
type FileFanConfig struct {
	Path string `json:"path"`
}

// CmdFanConfig invokes a command to apply the duty cycle. The raw pwm value
// is appended as the last argument.
type CmdFanConfig struct {
	Exec string   `json:"exec"`
	Args []string `json:"args"`
}
