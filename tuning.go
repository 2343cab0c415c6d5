package roverfactorytest

import (
	"math"
	"time"
)

// Tuning carries every speed, threshold and timing constant of the
// qualification sequence. Production uses defaultTuning; tests shrink the
// durations.
type Tuning struct {
	Frequency float64 // control loop rate, Hz

	MotorSpeed     float64 // m/s
	MotorTurnSpeed float64 // rad/s
	MotorDistance  float64 // m
	MotorTurnAngle float64 // rad

	BumperSpeed       float64       // m/s
	BumperTurnSpeed   float64       // rad/s
	BumperLaunchDelay time.Duration // pause before driving into the wall
	BumperBackoffTime time.Duration // reverse leg after a press

	GyroTurnSpeed float64 // rad/s
	GyroTurnAngle float64 // rad, one full turn per leg
	GyroMaxDiff   float64 // rad, max divergence between the two legs

	YawPollInterval time.Duration
	YawPollAttempts int

	MotorMaxCurrent int64

	CliffRoundTrips     int64
	WheelDropRoundTrips int64
	PowerPlugRoundTrips int64

	ChargeTimeout  time.Duration // waiting for the charger to engage
	ChargeSettle   time.Duration // after charging starts, before sample one
	ChargeWindow   time.Duration // between sample one and sample two
	ChargePoll     time.Duration
	MinChargeDelta int64 // tenths of volt

	AnalogMinThreshold int // millivolts
	AnalogMaxThreshold int // millivolts

	LightOnTime   time.Duration
	LightOffTime  time.Duration
	SoundInterval time.Duration
}

func defaultTuning() Tuning {
	return Tuning{
		Frequency: 20.0,

		MotorSpeed:     0.2,
		MotorTurnSpeed: math.Pi / 2.0,
		MotorDistance:  0.4,
		MotorTurnAngle: math.Pi,

		BumperSpeed:       0.1,
		BumperTurnSpeed:   math.Pi / 5.0,
		BumperLaunchDelay: 1500 * time.Millisecond,
		BumperBackoffTime: 1500 * time.Millisecond,

		GyroTurnSpeed: math.Pi / 3.0,
		GyroTurnAngle: 2.0 * math.Pi,
		GyroMaxDiff:   0.05,

		YawPollInterval: 200 * time.Millisecond,
		YawPollAttempts: 80,

		MotorMaxCurrent: 24,

		CliffRoundTrips:     2,
		WheelDropRoundTrips: 2,
		PowerPlugRoundTrips: 1,

		ChargeTimeout:  40 * time.Second,
		ChargeSettle:   2 * time.Second,
		ChargeWindow:   10 * time.Second,
		ChargePoll:     50 * time.Millisecond,
		MinChargeDelta: 2,

		AnalogMinThreshold: 2,
		AnalogMaxThreshold: 4090,

		LightOnTime:   time.Second,
		LightOffTime:  500 * time.Millisecond,
		SoundInterval: 1200 * time.Millisecond,
	}
}
