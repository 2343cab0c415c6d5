package roverfactorytest

import (
	"fmt"

	"github.com/pkg/errors"
)

// decodeEvent turns a DoCommand payload into a typed Event. Payloads arrive
// through the protobuf struct encoding, so all numbers are float64 and all
// arrays are []interface{}.
func decodeEvent(cmd map[string]interface{}) (Event, error) {
	kind, ok := cmd["event"].(string)
	if !ok {
		return nil, errors.New("missing or invalid 'event' field")
	}

	switch kind {
	case "identification":
		return &Identification{
			Serial:   asString(cmd["serial"]),
			Hardware: asString(cmd["hardware"]),
			Firmware: asString(cmd["firmware"]),
			Software: asString(cmd["software"]),
		}, nil
	case "core":
		ev := &CoreTelemetry{
			Charging: asBool(cmd["charging"]),
			Battery:  asInt64(cmd["battery"]),
		}
		currents := asInt64Slice(cmd["motor_currents"])
		for i := 0; i < len(currents) && i < 2; i++ {
			ev.MotorCurrents[i] = currents[i]
		}
		for _, v := range asInt64Slice(cmd["analog_in"]) {
			ev.AnalogIn = append(ev.AnalogIn, int(v))
		}
		return ev, nil
	case "button":
		return &ButtonEvent{
			Button:  int(asInt64(cmd["button"])),
			Pressed: asBool(cmd["pressed"]),
		}, nil
	case "bumper":
		return &BumperEvent{
			Bumper:  int(asInt64(cmd["bumper"])),
			Pressed: asBool(cmd["pressed"]),
		}, nil
	case "wheel_drop":
		return &WheelDropEvent{
			Wheel:   int(asInt64(cmd["wheel"])),
			Dropped: asBool(cmd["dropped"]),
		}, nil
	case "cliff":
		return &CliffEvent{
			Sensor: int(asInt64(cmd["sensor"])),
			Cliff:  asBool(cmd["cliff"]),
		}, nil
	case "power":
		return &PowerEvent{Kind: PowerEventKind(asInt64(cmd["kind"]))}, nil
	case "digital_input":
		ev := &DigitalInputEvent{}
		values, ok := cmd["values"].([]interface{})
		if !ok || len(values) != 4 {
			return nil, errors.New("digital_input event needs a 4-entry 'values' array")
		}
		for i, v := range values {
			ev.Values[i] = asBool(v)
		}
		return ev, nil
	case "dock_ir":
		ev := &DockIREvent{}
		signals := asInt64Slice(cmd["signals"])
		if len(signals) != 3 {
			return nil, errors.New("dock_ir event needs a 3-entry 'signals' array")
		}
		copy(ev.Signals[:], signals)
		return ev, nil
	case "orientation":
		return &OrientationEvent{Yaw: asFloat64(cmd["yaw"])}, nil
	case "diagnostics":
		ev := &DiagnosticsEvent{}
		entries, _ := cmd["entries"].([]interface{})
		for _, raw := range entries {
			m, ok := raw.(map[string]interface{})
			if !ok {
				continue
			}
			entry := DiagnosticEntry{
				Device:  asString(m["device"]),
				Level:   int(asInt64(m["level"])),
				Message: asString(m["message"]),
			}
			if values, ok := m["values"].(map[string]interface{}); ok {
				entry.Values = make(map[string]string, len(values))
				for k, v := range values {
					entry.Values[k] = asString(v)
				}
			}
			ev.Entries = append(ev.Entries, entry)
		}
		return ev, nil
	case "health":
		return &HealthEvent{Level: HealthState(asInt64(cmd["level"]))}, nil
	case "lifecycle":
		return &LifecycleEvent{Online: asBool(cmd["online"])}, nil
	default:
		return nil, fmt.Errorf("unknown event kind: %s", kind)
	}
}

func asString(v interface{}) string {
	s, _ := v.(string)
	return s
}

func asBool(v interface{}) bool {
	b, _ := v.(bool)
	return b
}

func asFloat64(v interface{}) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int64:
		return float64(n)
	default:
		return 0
	}
}

func asInt64(v interface{}) int64 {
	return int64(asFloat64(v))
}

func asInt64Slice(v interface{}) []int64 {
	raw, ok := v.([]interface{})
	if !ok {
		return nil
	}
	out := make([]int64, 0, len(raw))
	for _, entry := range raw {
		out = append(out, asInt64(entry))
	}
	return out
}
