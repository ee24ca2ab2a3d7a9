package parameter

import "time"

// Frame Loop Timing
const (
	// FrameUpdateInterval is the fallback frame interval (~60 FPS) when config omits frame_rate
	FrameUpdateInterval = 16 * time.Millisecond

	// DefaultTimeStep is the fixed physics step in seconds; the simulation assumes a constant frame rate
	DefaultTimeStep = float32(1.0 / 60.0)

	// EventChannelSize is the buffered capacity between the input poller and the frame loop
	EventChannelSize = 256

	// ChecksumInterval is the number of frames between debug checksum log lines
	ChecksumInterval = 600
)

// Entity Store Limits
const (
	// DefaultStoreCapacity pre-sizes the entity store for the demo scene
	DefaultStoreCapacity = 512
)

// Logging
const (
	LogDir      = "logs"
	LogFileName = "cubular.log"

	// MaxLogSize triggers rotation of an existing log file at startup (10 MiB)
	MaxLogSize = 10 * 1024 * 1024
)
