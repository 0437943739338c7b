// Package hedgedtwr computes the Hedged Time-Weighted Return (TWR) of a
// portfolio over an ordered series of valuation periods.
//
// The calculation follows the finance reporting formula family:
//   - Hedge adjustment: V'_t = V_t × (1 − FX_t × (1 − h_t))
//   - Chained period return: r_t = (V'_t − C_t) / V'_{t-1}
//   - Compounding: TWR = Π r_t − 1
//   - Annualization, for spans over 365 days: (1 + TWR)^(365/days) − 1
//
// The calculator is stateless and deterministic: it never mutates the
// caller's series, holds nothing across calls, and is safe to invoke
// concurrently. The final result and the display strings are rounded with
// exact decimal arithmetic (round half away from zero) so that the 6, 4 and
// 2 decimal-place outputs are reproducible regardless of binary
// floating-point representation.
//
// This package is the calculation core only. Serving it over an API,
// rendering it in a UI, exporting it to PDF, and auditing that a calculation
// happened are all the responsibility of the calling service.
package hedgedtwr
