// Package figures assembles the three paper figures from the model
// packages and exports them as PDF/PNG artifacts.
package figures
