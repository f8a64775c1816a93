package config

import "math"

// Track geometry (world units).
const (
	SegmentLength = 200.0  // z extent of a single segment
	RoadHalfWidth = 1000.0 // centerline to road edge
	RumbleRatio   = 1.0 / 6.0
	RumbleLength  = 3 // segments per color band
	LaneRatio     = 1.0 / 16.0
)

// Camera rig.
const (
	CameraHeight  = 1000.0
	FieldOfView   = 100.0 // degrees
	DrawDistance  = 300   // segments ahead of the camera
	LookBack      = 2     // segments behind the base segment
	SideObjectGap = 0.2   // clearance between road furniture and the rumble edge
)

// CameraDepth is the perspective-divide numerator derived from the field
// of view: 1 / tan(fov/2).
var CameraDepth = 1.0 / math.Tan((FieldOfView/2.0)*math.Pi/180.0)

// NoseOffset is how far ahead of the camera the vehicle body sits. The
// same value positions the foreground sprite and the collision probe.
var NoseOffset = CameraHeight * CameraDepth

// Longitudinal physics (world units per second, per second squared).
const (
	MaxSpeed     = 12000.0
	MaxReverse   = -MaxSpeed / 4
	Accel        = MaxSpeed / 5
	BrakeRate    = MaxSpeed
	NaturalDecel = MaxSpeed / 5
	ReverseAccelFactor = 0.5

	OffRoadAccelFactor = 0.6
	OffRoadDecel       = MaxSpeed / 2  // above OffRoadLimit
	OffRoadDrag        = MaxSpeed / 20 // below OffRoadLimit
	OffRoadLimit       = MaxSpeed / 4
)

// Lateral physics. Lateral offset is measured in road half-widths.
const (
	SteerSpeed     = 2.0
	TurnLimitSpeed = MaxSpeed / 2
	MinTurnAuthority = 0.4
	Centrifugal    = 0.3
	LateralClamp   = 2.0
)

// AI driver tuning.
const (
	AILaneGain       = 0.1            // exponential approach per update
	AIAccel          = MaxSpeed / 6
	AICornerDecel    = MaxSpeed / 18  // per unit of curvature rate
	AICurveThreshold = 0.4
	AICentrifugal    = 0.18
	AIMinSpeed       = MaxSpeed * 0.25 // cornering never brakes below this
	AIMaxSpeed       = MaxSpeed * 0.88
	AISteerScale     = 50.0            // lateral delta per update -> -1..1 steer
)

// Collision.
const (
	HitFraction    = 0.2 // fraction of the segment, measured from its near edge
	HitSlack       = 0.05
	ShakeMagnitude = 60.0 // world units of camera jitter
	ShakeDamping   = 6.0  // exponential decay rate, 1/s
	ShakeFrequency = 50.0 // jitter oscillation, rad/s
)

// Race.
const (
	CountdownSeconds = 3.5
	DefaultLaps      = 3
)

// Frame pacing. Delta time is clamped before any integration so a stalled
// frame cannot push speed or lateral offset past their clamps.
const MaxFrameDelta = 1.0 / 15.0

// Window defaults.
const (
	WindowWidth  = 1024
	WindowHeight = 600
)
