// Package fastmath provides fast single-precision approximations of common
// transcendental and utility functions: sin, cos, tan, asin, acos, atan2,
// exp, log, log10, log2, pow, sqrt, fmod, ceil, floor, round and the six
// hyperbolic functions.
//
// Every function trades a bounded amount of precision for a small, fixed
// number of arithmetic operations, which makes the package suitable for hot
// loops in control and robotics code where math package calls (and the
// float32 -> float64 -> float32 round trips they force) are too expensive.
// The error bounds each function is designed to hold are declared as data in
// the measure/precision package and verified by its tests.
//
// All functions are pure and reentrant. There is no shared mutable state, no
// allocation, and no error channel: out-of-domain inputs map to fixed
// sentinel values instead of failing. Log of a non-positive value returns
// -Huge, Exp saturates at Huge and 0, Tan saturates at ±1e7 near the cos
// singularities, Sqrt of a non-positive value returns 0, and Acosh/Atanh
// return 0 outside their domains. Callers recognize out-of-contract results
// by value inspection.
//
// NaN inputs propagate to NaN results. ±Inf inputs saturate to the same
// sentinel as the nearest finite extreme wherever a clamp exists (Exp, Tanh,
// Asin, Log) and otherwise fall into an exact float64 fallback path, which
// yields NaN. Range and domain guards are written as negated interval checks
// so that NaN takes the safe branch without a dedicated NaN test in the hot
// path.
package fastmath
