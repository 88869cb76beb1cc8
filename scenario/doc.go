// SPDX-License-Identifier: MIT

// Package scenario holds immutable experiment tables: a shared base prefix
// c_1..c_{N−1} plus named candidates for c_N, and the caller-side sign
// convention applied to every prediction.
//
// Tables are plain values. They are loaded from YAML or built with
// DefaultTable, validated once, and passed by value into Audit; nothing in
// this package keeps package-level mutable state.
//
//	sign: 1
//	base: [0.5, -0.328478965, 1.181241456, -1.912245764]
//	scenarios:
//	  - name: Aoyama 2025
//	    next: 6.8
package scenario
