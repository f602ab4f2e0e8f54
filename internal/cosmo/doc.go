// Package cosmo provides the closed-form background models used by the
// figure pipeline: the log-oscillatory equation of state w(z) and the
// geometric noise-suppression window S(z).
//
// All functions are pure. Sampling over a redshift axis is elementwise
// and allocation happens once per call.
package cosmo
