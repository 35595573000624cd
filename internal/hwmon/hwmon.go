package hwmon

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/fanctrld/fanctrld/internal/util"
	"github.com/md14454/gosensors"
)

const (
	BusTypeIsa  = 1
	BusTypePci  = 2
	BusTypeAcpi = 5
)

var pwmFileRegex = regexp.MustCompile("^pwm[0-9]+$")

// HwMonController is a detected hwmon chip with its usable
// temperature inputs and PWM outputs
type HwMonController struct {
	Name string
	Path string

	TempInputs []TempInput
	PwmOutputs []PwmOutput
}

// TempInput is a sysfs temperature input usable as a control loop sensor
type TempInput struct {
	Label string
	Index int
	Path  string
	// Value is the temperature at detection time in °C
	Value float64
}

// PwmOutput is a sysfs pwm file usable as a control loop output
type PwmOutput struct {
	Label string
	Index int
	Path  string
	// Value is the raw pwm value at detection time (0..255)
	Value int
}

// GetChips detects hwmon chips via libsensors and returns the ones
// that expose a temperature input or a pwm output
func GetChips() []*HwMonController {
	gosensors.Init()
	defer gosensors.Cleanup()
	chips := gosensors.GetDetectedChips()

	var list []*HwMonController

	for i := 0; i < len(chips); i++ {
		chip := chips[i]

		tempInputs := GetTempInputs(chip)
		pwmOutputs := GetPwmOutputs(chip)

		if len(tempInputs) <= 0 && len(pwmOutputs) <= 0 {
			continue
		}

		c := &HwMonController{
			Name:       computeIdentifier(chip),
			Path:       chip.Path,
			TempInputs: tempInputs,
			PwmOutputs: pwmOutputs,
		}
		list = append(list, c)
	}

	return list
}

// GetTempInputs returns the temperature inputs of the given chip
func GetTempInputs(chip gosensors.Chip) []TempInput {
	var inputs []TempInput

	features := chip.GetFeatures()
	for j := 0; j < len(features); j++ {
		feature := features[j]

		if feature.Type != gosensors.FeatureTypeTemp {
			continue
		}

		subfeatures := feature.GetSubFeatures()
		if !containsSubFeature(subfeatures, gosensors.SubFeatureTypeTempInput) {
			continue
		}
		inputSubFeature := getSubFeature(subfeatures, gosensors.SubFeatureTypeTempInput)

		inputs = append(inputs, TempInput{
			Label: getLabel(chip.Path, inputSubFeature.Name),
			Index: len(inputs) + 1,
			Path:  fmt.Sprintf("%s/%s", chip.Path, inputSubFeature.Name),
			Value: inputSubFeature.GetValue(),
		})
	}

	return inputs
}

// GetPwmOutputs returns the pwm output files of the given chip.
// libsensors has no feature type for pwm outputs, so the chip
// directory is scanned for pwm files instead.
func GetPwmOutputs(chip gosensors.Chip) []PwmOutput {
	var outputs []PwmOutput

	for _, path := range util.FindFilesMatching(chip.Path, pwmFileRegex) {
		value, err := util.ReadIntFromFile(path)
		if err != nil {
			continue
		}
		_, fileName := filepath.Split(path)
		outputs = append(outputs, PwmOutput{
			Label: fileName,
			Index: len(outputs) + 1,
			Path:  path,
			Value: value,
		})
	}

	return outputs
}

func getSubFeature(subfeatures []gosensors.SubFeature, input gosensors.SubFeatureType) gosensors.SubFeature {
	for _, a := range subfeatures {
		if a.Type == input {
			return a
		}
	}
	panic(fmt.Errorf("no such element: %v", input))
}

func containsSubFeature(s []gosensors.SubFeature, e gosensors.SubFeatureType) bool {
	for _, a := range s {
		if a.Type == e {
			return true
		}
	}
	return false
}

// getLabel reads the label of an in/output of a device
func getLabel(devicePath string, input string) string {
	labelPath := strings.TrimSuffix(devicePath+"/"+input, "input") + "label"

	content, _ := os.ReadFile(labelPath)
	label := string(content)
	if len(label) <= 0 {
		_, label = filepath.Split(devicePath)
	}
	return strings.TrimSpace(label)
}

func computeIdentifier(chip gosensors.Chip) string {
	name := chip.Prefix
	if len(name) <= 0 {
		_, name = filepath.Split(chip.Path)
	}

	identifier := name
	switch chip.Bus.Type {
	case BusTypeIsa:
		identifier = fmt.Sprintf("%s-isa-%d%03x", identifier, chip.Bus.Nr, chip.Addr)
	case BusTypePci:
		identifier = fmt.Sprintf("%s-pci-%d%03x", identifier, chip.Bus.Nr, chip.Addr)
	case BusTypeAcpi:
		identifier = fmt.Sprintf("%s-acpi-%d", identifier, chip.Bus.Nr)
	}

	return identifier
}
