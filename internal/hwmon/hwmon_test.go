package hwmon

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/md14454/gosensors"
	"github.com/stretchr/testify/assert"
)

func TestComputeIdentifierIsa(t *testing.T) {
	// GIVEN
	c := gosensors.Chip{
		Prefix: "ucsi_source_psy_USBC000:002",
		Addr:   0x0f1,
		Bus: gosensors.Bus{
			Type: BusTypeIsa,
			Nr:   1,
		},
		Path: "/sys/class/hwmon/hwmon7",
	}
	expected := "ucsi_source_psy_USBC000:002-isa-10f1"

	// WHEN
	result := computeIdentifier(c)

	// THEN
	assert.Equal(t, expected, result)
}

func TestComputeIdentifierPci(t *testing.T) {
	// GIVEN
	c := gosensors.Chip{
		Prefix: "nvme",
		Addr:   0x5,
		Bus: gosensors.Bus{
			Type: BusTypePci,
			Nr:   1,
		},
		Path: "/sys/class/hwmon/hwmon4",
	}
	expected := "nvme-pci-1005"

	// WHEN
	result := computeIdentifier(c)

	// THEN
	assert.Equal(t, expected, result)
}

func TestComputeIdentifierFallsBackToPath(t *testing.T) {
	// GIVEN
	c := gosensors.Chip{
		Path: "/sys/class/hwmon/hwmon4",
	}

	// WHEN
	result := computeIdentifier(c)

	// THEN
	assert.Equal(t, "hwmon4", result)
}

func TestGetPwmOutputs(t *testing.T) {
	// GIVEN
	chipPath := t.TempDir()
	assert.NoError(t, os.WriteFile(filepath.Join(chipPath, "pwm1"), []byte("128"), 0644))
	assert.NoError(t, os.WriteFile(filepath.Join(chipPath, "pwm1_enable"), []byte("1"), 0644))
	assert.NoError(t, os.WriteFile(filepath.Join(chipPath, "temp1_input"), []byte("42000"), 0644))
	c := gosensors.Chip{Path: chipPath}

	// WHEN
	outputs := GetPwmOutputs(c)

	// THEN
	assert.Len(t, outputs, 1)
	assert.Equal(t, "pwm1", outputs[0].Label)
	assert.Equal(t, 128, outputs[0].Value)
}
