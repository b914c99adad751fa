package pipeline

import "github.com/RonnyRicardoCruzBagua/preprocesamiento-cienciadatos/pkg/table"

// Field describes one column of a dataset.
type Field struct {
	Name  string `json:"name"`
	Kind  string `json:"kind"` // numeric, categorical or boolean
	Nulls int    `json:"nulls"`
}

// Schema describes the structure of a dataset.
type Schema struct {
	Rows   int     `json:"rows"`
	Fields []Field `json:"fields"`
}

// SchemaOf describes t.
func SchemaOf(t *table.Table) Schema {
	s := Schema{Rows: t.NumRows(), Fields: make([]Field, 0, t.NumCols())}
	for _, c := range t.Columns() {
		s.Fields = append(s.Fields, Field{Name: c.Name(), Kind: c.Kind().String(), Nulls: c.NullCount()})
	}
	return s
}
