package chart

// Values is a scalar series, one entry per category. Nil entries are gaps.
type Values []*float64

// Ranges is a low/high series. Each point holds exactly two entries.
type Ranges [][]*float64

// Len reports the number of points in the series.
func (v Values) Len() int { return len(v) }

// Len reports the number of points in the series.
func (r Ranges) Len() int { return len(r) }

// Bool returns a pointer to b.
func Bool(b bool) *bool { return &b }

// Int returns a pointer to i.
func Int(i int) *int { return &i }

// Float returns a pointer to f.
func Float(f float64) *float64 { return &f }

// String returns a pointer to s.
func String(s string) *string { return &s }
