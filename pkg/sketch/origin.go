package sketch

// Origin is the position of the canvas' top-left corner in client
// coordinates.
type Origin struct {
	X, Y float64
}

// Local converts client coordinates to canvas-local coordinates.
func (o Origin) Local(clientX, clientY float64) (float64, float64) {
	return clientX - o.X, clientY - o.Y
}
