// Package wigner is your toolbox for the special functions of angular
// momentum: Wigner d-functions, Wigner 3j-symbols and the transforms built
// on top of them.
//
// 🚀 What is in wigner?
//
//	Recursive evaluators that produce whole sequences in one O(n) sweep:
//		• Little-d: d^l_{m1,m2}(θ) over a range of degrees, Legendre P_l, big-D
//		• 3j over the degree: (l1 l2 l3; m1 m2 m3) for every l1
//		• 3j over the order: (l1 l2 l3; m1 m2 −m1−m2) for every m2
//		• Correlation functions: ξ(θ) = Σ (2l+1)/(4π) C_l d^l_{m1,m2}(θ)
//
// ✨ Why choose wigner?
//
//   - Stable at large quantum numbers – log-space seeds, scaled recurrences
//   - Exact selection rules – forbidden entries are exact zeros, not noise
//   - Pure Go – no cgo, errors you can match with errors.Is
//   - Reentrant – no global state, every call allocates its own output
//
// Everything is organized under these subpackages:
//
//	littled/ — d^l_{m1,m2}(θ), P_l(x) and D^l_{m1,m2}(α,β,γ) by upward recursion in l
//	threej/  — 3j-symbols by Schulten–Gordon recursion in l1 or m2, and single values
//	xi/      — spectrum reader, interpolation and the C_l → ξ(θ) transform
//	cmd/     — showdl and clxi command line tools
//
// Quick example:
//
//	d, _ := littled.LittleD(2, 4, 2, 0, math.Pi/2)
//	// d = [d^2_{2,0}, d^3_{2,0}, d^4_{2,0}] at θ = 90°
//
//	go get github.com/katalvlaran/wigner
package wigner
