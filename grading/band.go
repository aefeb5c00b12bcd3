package grading

// Band is an HSC (Higher School Certificate) achievement band, the
// six-level NSW reporting scale some classes grade on instead of letters.
type Band string

const (
	Band6 Band = "Band 6"
	Band5 Band = "Band 5"
	Band4 Band = "Band 4"
	Band3 Band = "Band 3"
	Band2 Band = "Band 2"
	Band1 Band = "Band 1"
)

// ToBand maps a percentage to its HSC band: ≥90 Band 6, then one band per
// ten points down to Band 2 at 50, with everything below 50 in Band 1.
func ToBand(percentage float64) Band {
	switch {
	case percentage >= 90:
		return Band6
	case percentage >= 80:
		return Band5
	case percentage >= 70:
		return Band4
	case percentage >= 60:
		return Band3
	case percentage >= 50:
		return Band2
	default:
		return Band1
	}
}
