// Package sketch holds the placement model of the sketchpad: the ordered
// store of placed gates, hit-testing, and the controller that turns pointer
// and palette drag events into placements and moves.
//
// Everything in this package is driven from a single goroutine (the UI event
// loop or a script replayer) and performs no locking.
package sketch
