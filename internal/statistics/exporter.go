package statistics

import "github.com/prometheus/client_golang/prometheus"

const (
	namespace = "fanctrld"
)

func Register(collector prometheus.Collector) {
	prometheus.MustRegister(collector)
}
