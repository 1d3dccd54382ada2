// Package activation is the activation-function table used by network layers.
//
// It provides the scalar functions (ReLU, LeakyReLU, Sigmoid, TanH) with
// their derivatives, a Kind-indexed lookup, and helpers that apply an entry
// in place to a *matrix.Dense through Map.
//
// Usage:
//
//	f, err := activation.Lookup(activation.KindLeakyReLU, 0.01)
//	if err != nil { ... }
//	err = activation.Activate(weights, f)
//
// Derivatives treat z <= 0 as the inactive branch for the rectified units.
package activation
