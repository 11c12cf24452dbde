package effect24

import "strings"

// String draws the set as a 5x5 grid with north at the top and west on
// the left; '+' is the centre.
func (ds Directions) String() string {
	var sb strings.Builder
	sb.Grow(30)
	for dr := -2; dr <= 2; dr++ {
		for df := 2; df >= -2; df-- {
			d := DirectFromStep(df, dr)
			switch {
			case d == DirectNB:
				sb.WriteByte('+')
			case ds.Has(d):
				sb.WriteByte('*')
			default:
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
