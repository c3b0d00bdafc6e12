// SPDX-License-Identifier: EPL-2.0

// Package mix combines independently synthesized layers into a single
// buffer and provides loudness utilities.
//
// Layers pads shorter inputs with trailing zeros, sums them with equal
// or caller-supplied weights, and rescales the mix when its peak
// exceeds 1.0 so the result never clips. Normalize sets a peak level in
// dB, and FadeIn/FadeOut apply linear ramps that suppress clicks at
// clip boundaries.
package mix
