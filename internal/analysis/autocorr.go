package analysis

// Autocorrelation returns the normalized autocorrelation function of
// series up to maxLag: acf[0] is 1 and acf[k] is the lag-k covariance
// over the lag-0 variance. A constant series has no fluctuations;
// its acf is 1 at lag 0 and 0 elsewhere.
func Autocorrelation(series []float64, maxLag int) []float64 {
	n := len(series)
	if n == 0 {
		return nil
	}
	if maxLag >= n {
		maxLag = n - 1
	}
	if maxLag < 0 {
		maxLag = 0
	}

	mean := 0.0
	for _, x := range series {
		mean += x
	}
	mean /= float64(n)

	c0 := 0.0
	for _, x := range series {
		d := x - mean
		c0 += d * d
	}
	c0 /= float64(n)

	acf := make([]float64, maxLag+1)
	acf[0] = 1
	if c0 == 0 {
		return acf
	}

	for k := 1; k <= maxLag; k++ {
		ck := 0.0
		for t := 0; t+k < n; t++ {
			ck += (series[t] - mean) * (series[t+k] - mean)
		}
		ck /= float64(n - k)
		acf[k] = ck / c0
	}
	return acf
}

// IntegratedTime estimates the integrated autocorrelation time
// 1 + 2*sum(acf[k]) with the positive-window cutoff: the sum stops at
// the first non-positive coefficient, where the estimator turns into
// noise. An uncorrelated series gives 1.
func IntegratedTime(acf []float64) float64 {
	tau := 1.0
	for k := 1; k < len(acf); k++ {
		if acf[k] <= 0 {
			break
		}
		tau += 2 * acf[k]
	}
	return tau
}
