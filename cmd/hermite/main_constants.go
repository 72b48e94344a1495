package main

// Default command-line flag values
const (
	defaultOrder  = 25  // highest order evaluated
	defaultAlpha  = 1.0 // unit dilation
	defaultMu     = 0.0 // centered at the origin
	defaultPoints = 201 // grid size when no explicit x is given
)

// CSV output format
const (
	defaultFormat = 'g' // strconv float format
	floatBits     = 64  // strconv float precision
	columnPrefix  = "phi_"
)
