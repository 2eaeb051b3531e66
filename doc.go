// Package autoticks picks the major and minor tick marks for numeric plot
// axes. Tick positions land on round numbers, and the tick density adapts to
// the axis length and to the measured size of the rendered labels so that
// neighboring labels do not collide.
//
// The zero value of Generator is ready to use. Plots built on
// gonum.org/v1/plot can install a Marker as an axis ticker.
package autoticks
