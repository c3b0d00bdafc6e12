// SPDX-License-Identifier: EPL-2.0

// Package spectrum provides a small FFT-based analysis surface used to
// verify generated sounds: a magnitude spectrum and a dominant
// frequency estimate. It is not part of the synthesis chain itself.
package spectrum
