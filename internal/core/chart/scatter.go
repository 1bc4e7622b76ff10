package chart

import "vizdash/internal/core/table"

// Scatter builds a point chart of two numeric columns
// rows missing either coordinate are left out of the inline data
func Scatter(t *table.Table, x, y string, opt Options) (Spec, error) {
	vals, err := values(t, []string{x, y}, opt.Tooltip)
	if err != nil {
		return Spec{}, err
	}
	tips, err := tooltip(t, opt.Tooltip)
	if err != nil {
		return Spec{}, err
	}

	s := Spec{
		Title: Describe(AxisTitle(y)+" vs "+AxisTitle(x), len(vals), "points"),
		Data:  &Data{Values: vals},
		Mark:  &Mark{Type: "point", Tooltip: len(tips) == 0},
		Encoding: &Encoding{
			X:       &Channel{Field: x, Type: Quantitative, Title: AxisTitle(x)},
			Y:       &Channel{Field: y, Type: Quantitative, Title: AxisTitle(y)},
			Tooltip: tips,
		},
	}
	opt.apply(&s)
	return s, nil
}
