package model

type Density struct {
	X     float64
	Value float64
}

type QuantileValue struct {
	Value    float64 `json:"v,omitempty"`
	Quantile float64 `json:"q,omitempty"`
}

type CredibleInterval struct {
	Lower *QuantileValue `json:"l,omitempty"`
	Upper *QuantileValue `json:"u,omitempty"`
}

func (c *CredibleInterval) Width() float64 {
	if c == nil || c.Lower == nil || c.Upper == nil {
		return 0
	}
	return c.Upper.Value - c.Lower.Value
}
