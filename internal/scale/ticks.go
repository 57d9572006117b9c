package scale

import "math"

var (
	e10 = math.Sqrt(50)
	e5  = math.Sqrt(10)
	e2  = math.Sqrt(2)
)

// tickSpec returns the integer tick span [i1, i2] and the increment. A
// negative increment means the ticks are i / -inc, which keeps fractional
// steps exact.
func tickSpec(start, stop float64, count float64) (i1, i2, inc float64) {
	step := (stop - start) / math.Max(0, count)
	power := math.Floor(math.Log10(step))
	e := step / math.Pow(10, power)
	factor := 1.0
	switch {
	case e >= e10:
		factor = 10
	case e >= e5:
		factor = 5
	case e >= e2:
		factor = 2
	}
	if power < 0 {
		inc = math.Pow(10, -power) / factor
		i1 = math.Round(start * inc)
		i2 = math.Round(stop * inc)
		if i1/inc < start {
			i1++
		}
		if i2/inc > stop {
			i2--
		}
		inc = -inc
	} else {
		inc = math.Pow(10, power) * factor
		i1 = math.Round(start / inc)
		i2 = math.Round(stop / inc)
		if i1*inc < start {
			i1++
		}
		if i2*inc > stop {
			i2--
		}
	}
	if i2 < i1 && 0.5 <= count && count < 2 {
		return tickSpec(start, stop, count*2)
	}
	return i1, i2, inc
}

// Ticks returns about count nicely rounded values between start and stop,
// inclusive when they fall on a tick.
func Ticks(start, stop float64, count int) []float64 {
	if count <= 0 {
		return nil
	}
	if start == stop {
		return []float64{start}
	}
	reverse := stop < start
	if reverse {
		start, stop = stop, start
	}
	i1, i2, inc := tickSpec(start, stop, float64(count))
	if !(i2 >= i1) {
		return nil
	}
	n := int(i2 - i1 + 1)
	ticks := make([]float64, n)
	for i := range ticks {
		idx := i
		if reverse {
			idx = n - 1 - i
		}
		if inc < 0 {
			ticks[i] = (i1 + float64(idx)) / -inc
		} else {
			ticks[i] = (i1 + float64(idx)) * inc
		}
	}
	return ticks
}

// TickStep returns the distance between ticks for the given span and count.
func TickStep(start, stop float64, count int) float64 {
	reverse := stop < start
	var inc float64
	if reverse {
		_, _, inc = tickSpec(stop, start, float64(count))
	} else {
		_, _, inc = tickSpec(start, stop, float64(count))
	}
	if inc < 0 {
		inc = 1 / -inc
	}
	if reverse {
		return -inc
	}
	return inc
}
