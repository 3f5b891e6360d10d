package models

// TimePoint is one sample of the fabricated time series.
type TimePoint struct {
	Time    string
	QBER    float64
	KeyRate float64
	Entropy float64
}

// RadarPoint is one axis of the security assessment chart.
type RadarPoint struct {
	Subject  string
	Value    float64
	FullMark float64
}

type Metrics struct {
	TimeData  []TimePoint
	RadarData []RadarPoint
}

// DefaultMetrics returns a fresh copy of the hardcoded sample data.
func DefaultMetrics() Metrics {
	return Metrics{
		TimeData: []TimePoint{
			{Time: "00:00", QBER: 0.05, KeyRate: 1.2, Entropy: 7.92},
			{Time: "00:05", QBER: 0.04, KeyRate: 1.3, Entropy: 7.94},
			{Time: "00:10", QBER: 0.06, KeyRate: 1.1, Entropy: 7.91},
			{Time: "00:15", QBER: 0.03, KeyRate: 1.4, Entropy: 7.96},
			{Time: "00:20", QBER: 0.04, KeyRate: 1.3, Entropy: 7.95},
			{Time: "00:25", QBER: 0.02, KeyRate: 1.5, Entropy: 7.98},
			{Time: "00:30", QBER: 0.03, KeyRate: 1.4, Entropy: 7.97},
		},
		RadarData: []RadarPoint{
			{Subject: "Key Security", Value: 95, FullMark: 100},
			{Subject: "Eavesdropping Resistance", Value: 90, FullMark: 100},
			{Subject: "Quantum Resistance", Value: 98, FullMark: 100},
			{Subject: "Forward Secrecy", Value: 85, FullMark: 100},
			{Subject: "Authentication", Value: 80, FullMark: 100},
			{Subject: "Error Correction", Value: 88, FullMark: 100},
		},
	}
}

// Times returns the x-axis labels of the time series.
func (m Metrics) Times() []string {
	out := make([]string, len(m.TimeData))
	for i, p := range m.TimeData {
		out[i] = p.Time
	}
	return out
}

func (m Metrics) QBERSeries() []float64 {
	return m.series(func(p TimePoint) float64 { return p.QBER })
}

func (m Metrics) KeyRateSeries() []float64 {
	return m.series(func(p TimePoint) float64 { return p.KeyRate })
}

func (m Metrics) EntropySeries() []float64 {
	return m.series(func(p TimePoint) float64 { return p.Entropy })
}

func (m Metrics) series(pick func(TimePoint) float64) []float64 {
	out := make([]float64, len(m.TimeData))
	for i, p := range m.TimeData {
		out[i] = pick(p)
	}
	return out
}
