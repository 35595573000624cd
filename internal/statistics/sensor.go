package statistics

import (
	"github.com/fanctrld/fanctrld/internal/sensors"
	"github.com/prometheus/client_golang/prometheus"
)

const subsystemSensor = "sensor"

type SensorCollector struct {
	sensors []sensors.Sensor
	value   *prometheus.Desc
	avg     *prometheus.Desc
}

func NewSensorCollector(sensors []sensors.Sensor) *SensorCollector {
	return &SensorCollector{
		sensors: sensors,
		value: prometheus.NewDesc(prometheus.BuildFQName(namespace, subsystemSensor, "value"),
			"Current temperature of the sensor in °C",
			[]string{"id"}, nil,
		),
		avg: prometheus.NewDesc(prometheus.BuildFQName(namespace, subsystemSensor, "moving_avg"),
			"Moving average of the sensor temperature in °C",
			[]string{"id"}, nil,
		),
	}
}

func (collector *SensorCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- collector.value
	ch <- collector.avg
}

// Collect implements required collect function for all prometheus collectors
func (collector *SensorCollector) Collect(ch chan<- prometheus.Metric) {
	for _, sensor := range collector.sensors {
		sensorId := sensor.GetId()
		value, err := sensor.GetValue()
		if err == nil {
			ch <- prometheus.MustNewConstMetric(collector.value, prometheus.GaugeValue, value, sensorId)
		}
		ch <- prometheus.MustNewConstMetric(collector.avg, prometheus.GaugeValue, sensor.GetMovingAvg(), sensorId)
	}
}
