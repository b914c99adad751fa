package data

import (
	"math"
	"strings"

	"github.com/spf13/cast"

	"github.com/RonnyRicardoCruzBagua/preprocesamiento-cienciadatos/pkg/table"
)

var boolLiterals = map[string]struct{}{
	"true": {}, "True": {}, "TRUE": {},
	"false": {}, "False": {}, "FALSE": {},
}

// numberLike reports whether v is a plain decimal number. Go literal forms
// such as digit separators and hex floats stay text.
func numberLike(v string) bool {
	if v == "" || strings.ContainsAny(v, "_xX") {
		return false
	}
	_, err := cast.ToFloat64E(v)
	return err == nil
}

// inferColumn builds a typed column from raw cells. A column is numeric when
// every present cell parses as a number, boolean when every present cell is a
// true/false literal, and categorical otherwise. A column with rows but no
// present cell is numeric; a column with no rows is categorical.
func inferColumn(name string, cells []string, nulls map[string]struct{}) *table.Column {
	var missing []int
	present := 0
	numeric, boolean := true, true
	for i, s := range cells {
		if _, ok := nulls[s]; ok {
			missing = append(missing, i)
			continue
		}
		present++
		v := strings.TrimSpace(s)
		if numeric {
			if !numberLike(v) {
				numeric = false
			}
		}
		if boolean {
			if _, ok := boolLiterals[v]; !ok {
				boolean = false
			}
		}
	}

	switch {
	case len(cells) == 0:
		return table.NewCategorical(name, nil)
	case numeric:
		vals := make([]float64, len(cells))
		for i, s := range cells {
			if _, ok := nulls[s]; ok {
				vals[i] = math.NaN()
				continue
			}
			vals[i] = cast.ToFloat64(strings.TrimSpace(s))
		}
		return table.NewNumeric(name, vals)
	case boolean:
		vals := make([]bool, len(cells))
		for i, s := range cells {
			if _, ok := nulls[s]; !ok {
				vals[i] = cast.ToBool(strings.TrimSpace(s))
			}
		}
		return table.NewBoolean(name, vals).WithNulls(missing...)
	default:
		vals := make([]string, len(cells))
		for i, s := range cells {
			if _, ok := nulls[s]; !ok {
				vals[i] = s
			}
		}
		return table.NewCategorical(name, vals).WithNulls(missing...)
	}
}
