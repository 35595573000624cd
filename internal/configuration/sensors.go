package configuration

type SensorConfig struct {
	Id   string            `json:"id"`
	File *FileSensorConfig `json:"file,omitempty"`
	Cmd  *CmdSensorConfig  `json:"cmd,omitempty"`
}

// FileSensorConfig reads the temperature from a sysfs-style file
// containing millidegrees celsius.
type FileSensorConfig struct {
	Path string `json:"path"`
}

// CmdSensorConfig retrieves the temperature from the output of a command,
// expected to print degrees celsius as a plain number.
type CmdSensorConfig struct {
	Exec string   `json:"exec"`
	Args []string `json:"args"`
}
