package statistics

import (
	"github.com/fanctrld/fanctrld/internal/controller"
	"github.com/prometheus/client_golang/prometheus"
)

const controllerSubsystem = "controller"

type ControllerCollector struct {
	controllers []controller.FanController

	targetDuty            *prometheus.Desc
	activeProfile         *prometheus.Desc
	sensorReadErrorCount  *prometheus.Desc
	outputWriteErrorCount *prometheus.Desc
}

func NewControllerCollector(controllers []controller.FanController) *ControllerCollector {
	return &ControllerCollector{
		controllers: controllers,
		targetDuty: prometheus.NewDesc(prometheus.BuildFQName(namespace, controllerSubsystem, "target_duty"),
			"Duty cycle the active profile resolved for the current temperature",
			[]string{"id"}, nil,
		),
		activeProfile: prometheus.NewDesc(prometheus.BuildFQName(namespace, controllerSubsystem, "active_profile"),
			"The currently active fan profile, exported as the 'profile' label",
			[]string{"id", "profile"}, nil,
		),
		sensorReadErrorCount: prometheus.NewDesc(prometheus.BuildFQName(namespace, controllerSubsystem, "sensor_read_error_count"),
			"Counter for control cycles skipped because the sensor could not be read",
			[]string{"id"}, nil,
		),
		outputWriteErrorCount: prometheus.NewDesc(prometheus.BuildFQName(namespace, controllerSubsystem, "output_write_error_count"),
			"Counter for failed duty cycle writes of this controller",
			[]string{"id"}, nil,
		),
	}
}

func (collector *ControllerCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- collector.targetDuty
	ch <- collector.activeProfile
	ch <- collector.sensorReadErrorCount
	ch <- collector.outputWriteErrorCount
}

// Collect implements required collect function for all prometheus collectors
func (collector *ControllerCollector) Collect(ch chan<- prometheus.Metric) {
	for _, contr := range collector.controllers {
		fanId := contr.GetFanId()
		stats := contr.GetStatistics()
		ch <- prometheus.MustNewConstMetric(collector.targetDuty, prometheus.GaugeValue, float64(contr.GetTargetDuty()), fanId)
		if profile := contr.GetActiveProfile(); profile != "" {
			ch <- prometheus.MustNewConstMetric(collector.activeProfile, prometheus.GaugeValue, 1, fanId, profile)
		}
		ch <- prometheus.MustNewConstMetric(collector.sensorReadErrorCount, prometheus.CounterValue, float64(stats.SensorReadErrorCount), fanId)
		ch <- prometheus.MustNewConstMetric(collector.outputWriteErrorCount, prometheus.CounterValue, float64(stats.OutputWriteErrorCount), fanId)
	}
}
