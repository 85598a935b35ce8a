// Package widgets holds composite renderables built from borders and styled
// text runs: message boxes and tab bars.
package widgets
