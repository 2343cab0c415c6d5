// Package roverfactorytest implements a factory acceptance-test harness for a
// mobile-robot unit as a Viam module. A generic service owns the test
// sequencer: it drives the unit's actuators (motion, lights, sound, digital
// outputs), validates sensor events against per-device expectation protocols,
// and appends a pass/fail row per unit to a CSV results file. A companion
// sensor component exposes the sequencer state for dashboards.
package roverfactorytest
