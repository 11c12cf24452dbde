package effect8

import "strings"

// String draws the set as a 3x3 grid, north at the top and west on the
// left. The centre is '+', a neighbour in the set is '*', others '.'.
//
//	..*
//	.+.
//	...
func (ds Directions) String() string {
	var sb strings.Builder
	sb.Grow(12)
	for dr := -1; dr <= 1; dr++ {
		for df := 1; df >= -1; df-- {
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
