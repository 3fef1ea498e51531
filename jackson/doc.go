// Package jackson evaluates product-form probabilities for cyclic (closed)
// Jackson networks.
//
// # Reading Guide
//
// Start with these files:
//   - network.go: network parameters (population, per-node rates and servers) and validation
//   - enumerate.go: state space enumeration (compositions, and the legacy k-permutation scheme)
//   - factor.go: the M/M/c service factor a(n, c)
//   - normalization.go: unnormalized weights and the normalization constant G
//   - probability.go: single-state probabilities and the full Distribution
//
// # Numeric model
//
// All arithmetic is float64. Factorials exceed the float64 range past 170!, so
// any non-finite intermediate value surfaces as ErrOverflow rather than Inf/NaN.
//
// Sub-packages:
//   - jackson/report: per-state evaluation records and their summary
//   - jackson/ctmc: discrete-event simulation used to cross-check the closed form
//
// Every function in this package is pure and safe for concurrent use.
package jackson
