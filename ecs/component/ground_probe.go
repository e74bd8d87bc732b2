package component

// GroundProbe records the last ground ray for debug drawing.
type GroundProbe struct {
	OriginX  float64
	OriginY  float64
	Length   float64
	Grounded bool
}

var GroundProbeComponent = NewComponent[GroundProbe]("ground_probe")
