/*
 * Copyright 2019 The CovenantSQL Authors.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package metric

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// BindingMetrics counts binding calls by operation and outcome. It implements
// both prometheus.Collector and the binding Observer.
type BindingMetrics struct {
	namespace string
	calls     *prometheus.CounterVec
}

func bindingNamespace(namespace, s string) string {
	return fmt.Sprintf("%s_%s", namespace, s)
}

// NewBindingMetrics returns the counters named <namespace>_calls_total.
func NewBindingMetrics(namespace string) *BindingMetrics {
	return &BindingMetrics{
		namespace: namespace,
		calls: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: bindingNamespace(namespace, "calls_total"),
				Help: "secp256k1 binding calls by operation and outcome",
			},
			[]string{"op", "outcome"},
		),
	}
}

// Observe records one call.
func (m *BindingMetrics) Observe(op, outcome string) {
	m.calls.WithLabelValues(op, outcome).Inc()
}

// Calls returns the counter of op and outcome.
func (m *BindingMetrics) Calls(op, outcome string) prometheus.Counter {
	return m.calls.WithLabelValues(op, outcome)
}

// Register registers the collector with r.
func (m *BindingMetrics) Register(r prometheus.Registerer) error {
	return r.Register(m)
}

// Describe returns all descriptions of the collector.
func (m *BindingMetrics) Describe(ch chan<- *prometheus.Desc) {
	m.calls.Describe(ch)
}

// Collect returns the current state of all metrics of the collector.
func (m *BindingMetrics) Collect(ch chan<- prometheus.Metric) {
	m.calls.Collect(ch)
}
