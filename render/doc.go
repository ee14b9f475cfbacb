// SPDX-License-Identifier: MIT
// Package render draws a simulator snapshot as a terminal wiring diagram.
//
// The diagram has one column per component in signal order from the
// reflector on the left to the plugboard on the right, each listing the 26
// slots in current rotation order. Rows touched by the last key press are
// marked with '>' and, on colour terminals, highlighted.
//
// Styles come from a lipgloss renderer bound to the output writer, so
// colour is dropped automatically when the writer is not a terminal.
package render
