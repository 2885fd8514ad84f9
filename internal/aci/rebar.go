package aci

// Bar is a US customary deformed reinforcing bar (ASTM A615).
type Bar struct {
	Size     int     // bar designation number, e.g. 8 for #8
	Diameter float64 // in
	Area     float64 // in²
}

// Bars lists the standard bar sizes #3 through #11.
var Bars = []Bar{
	{3, 0.375, 0.11},
	{4, 0.500, 0.20},
	{5, 0.625, 0.31},
	{6, 0.750, 0.44},
	{7, 0.875, 0.60},
	{8, 1.000, 0.79},
	{9, 1.128, 1.00},
	{10, 1.270, 1.27},
	{11, 1.410, 1.56},
}

// BarSet is a number of identical bars.
type BarSet struct {
	Bar   Bar
	Count int
}

// Area returns the total steel area of the set.
func (s BarSet) Area() float64 {
	return float64(s.Count) * s.Bar.Area
}

// SuggestBars returns, for bar sizes #5 to #10, the smallest practical count
// (2 to 8 bars) whose total area covers asRequired.
func SuggestBars(asRequired float64) []BarSet {
	var out []BarSet
	if asRequired <= 0 {
		return out
	}
	for _, bar := range Bars {
		if bar.Size < 5 || bar.Size > 10 {
			continue
		}
		count := int(asRequired/bar.Area) + 1
		if float64(count-1)*bar.Area >= asRequired {
			count--
		}
		if count < 2 {
			count = 2
		}
		if count <= 8 {
			out = append(out, BarSet{Bar: bar, Count: count})
		}
	}
	return out
}
