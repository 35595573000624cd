package statistics

import (
	"github.com/fanctrld/fanctrld/internal/fans"
	"github.com/prometheus/client_golang/prometheus"
)

const fanSubsystem = "fan"

type FanCollector struct {
	fans []fans.Fan
	duty *prometheus.Desc
	pwm  *prometheus.Desc
}

func NewFanCollector(fans []fans.Fan) *FanCollector {
	return &FanCollector{
		fans: fans,
		duty: prometheus.NewDesc(prometheus.BuildFQName(namespace, fanSubsystem, "duty"),
			"Current duty cycle of the fan in percent",
			[]string{"id"}, nil,
		),
		pwm: prometheus.NewDesc(prometheus.BuildFQName(namespace, fanSubsystem, "pwm"),
			"Current raw PWM value of the fan",
			[]string{"id"}, nil,
		),
	}
}

func (collector *FanCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- collector.duty
	ch <- collector.pwm
}

// Collect implements required collect function for all prometheus collectors
func (collector *FanCollector) Collect(ch chan<- prometheus.Metric) {
	for _, fan := range collector.fans {
		fanId := fan.GetId()
		ch <- prometheus.MustNewConstMetric(collector.duty, prometheus.GaugeValue, float64(fan.GetDuty()), fanId)
		pwm, err := fan.GetPwm()
		if err == nil {
			ch <- prometheus.MustNewConstMetric(collector.pwm, prometheus.GaugeValue, float64(pwm), fanId)
		}
	}
}
