package hermite

// Batch evaluation defaults
const (
	defaultChunkSize = 256  // x values handed to one worker at a time
	maxWorkers       = 1024 // upper bound on Config.Workers
	maxLoggedErrors  = 8    // per-x failures logged individually

	maxTableLen = 1 << 40 // upper bound on orders × arguments in one table
)

// Fourier phase cycle of (-i)^n
const phaseCycle = 4
