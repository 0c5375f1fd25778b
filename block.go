package fastmath

// Block kernels apply one approximation across a slice, the shape hot loops
// actually want. dst and src must have the same length; dst may alias src
// for in-place use.

// SinBlock writes Sin(src[i]) into dst[i].
func SinBlock(dst, src []float32) {
	if len(src) == 0 {
		return
	}

	_ = dst[len(src)-1]
	for i, x := range src {
		dst[i] = Sin(x)
	}
}

// CosBlock writes Cos(src[i]) into dst[i].
func CosBlock(dst, src []float32) {
	if len(src) == 0 {
		return
	}

	_ = dst[len(src)-1]
	for i, x := range src {
		dst[i] = Cos(x)
	}
}

// ExpBlock writes Exp(src[i]) into dst[i].
func ExpBlock(dst, src []float32) {
	if len(src) == 0 {
		return
	}

	_ = dst[len(src)-1]
	for i, x := range src {
		dst[i] = Exp(x)
	}
}

// LogBlock writes Log(src[i]) into dst[i].
func LogBlock(dst, src []float32) {
	if len(src) == 0 {
		return
	}

	_ = dst[len(src)-1]
	for i, x := range src {
		dst[i] = Log(x)
	}
}

// SqrtBlock writes Sqrt(src[i]) into dst[i].
func SqrtBlock(dst, src []float32) {
	if len(src) == 0 {
		return
	}

	_ = dst[len(src)-1]
	for i, x := range src {
		dst[i] = Sqrt(x)
	}
}

// TanhBlock writes Tanh(src[i]) into dst[i].
func TanhBlock(dst, src []float32) {
	if len(src) == 0 {
		return
	}

	_ = dst[len(src)-1]
	for i, x := range src {
		dst[i] = Tanh(x)
	}
}
