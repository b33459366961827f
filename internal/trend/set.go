package trend

// Metric keys tracked by the dashboard.
const (
	KeyCPU        = "cpu"
	KeyMemory     = "memory"
	KeyDisk       = "disk"
	KeyContainers = "containers"
)

// Set is the fixed registry of trend buffers, created once at startup.
// Never resized or extended at runtime; each key has a single writing
// collector.
type Set map[string]*Buffer

// NewSet builds the standard buffers: 1s percentage metrics keep 60
// samples (one minute of trend), the 2s container count keeps 30.
func NewSet(history int) Set {
	if history < 1 {
		history = 60
	}
	return Set{
		KeyCPU:        NewPercentBuffer(history),
		KeyMemory:     NewPercentBuffer(history),
		KeyDisk:       NewPercentBuffer(history),
		KeyContainers: NewBuffer(history / 2),
	}
}

// Push appends a sample to the named buffer. Unknown keys are a
// programming error and ignored.
func (s Set) Push(key string, v float64) {
	if b, ok := s[key]; ok {
		b.Push(v)
	}
}

// Sparkline renders the named buffer; unknown keys render flat.
func (s Set) Sparkline(key string, width int) string {
	if b, ok := s[key]; ok {
		return b.Sparkline(width)
	}
	return NewBuffer(1).Sparkline(width)
}
