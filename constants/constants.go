package constants

// tonic reported for a sheet without chords
const DefaultKey = "C"

const DefaultPort = 8080

// files picked up when walking a directory of sheets
var SheetExtensions = []string{".cho", ".chordpro", ".chopro", ".crd", ".pro", ".txt"}

// MIDI rendering
const (
	DefaultOctave        = 4
	DefaultTempo         = 90.0
	DefaultBeatsPerChord = 4
	MaxBeatsPerChord     = 64
	DefaultVelocity      = 90
	TicksPerQuarter      = 960
)

// HTTP service
const (
	DefaultRateLimit = 20.0
	DefaultBurst     = 40
	MaxBodyBytes     = 1 << 20
)

const ConfigFilename = "songsheet.yaml"

// environment overrides
const (
	EnvConfig   = "SONGSHEET_CONFIG"
	EnvPort     = "SONGSHEET_PORT"
	EnvOrigins  = "SONGSHEET_ORIGINS"
	EnvRate     = "SONGSHEET_RATE"
	EnvBurst    = "SONGSHEET_BURST"
	EnvLogLevel = "SONGSHEET_LOG_LEVEL"
	EnvWorkers  = "SONGSHEET_WORKERS"
	EnvTempo    = "SONGSHEET_TEMPO"
	EnvOctave   = "SONGSHEET_OCTAVE"
)
