// File: internal/domain/ports/adapter/random.go
package adapter

// RandomSource abstracts the randomness behind reply variety and game
// outcomes so tests can script it.
type RandomSource interface {
	// Intn returns a uniform int in [0,n). n must be > 0.
	Intn(n int) int
	// Float64 returns a uniform float64 in [0,1).
	Float64() float64
}
