// Package analysis provides post-run diagnostics: the energy
// autocorrelation function with its integrated time, and the radial
// distribution function of a configuration.
package analysis
