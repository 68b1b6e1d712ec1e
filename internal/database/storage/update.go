package storage

import (
	"fmt"
	"strings"
)

// setClause собирает UPDATE только из переданных колонок.
type setClause struct {
	columns []string
	args    []any
}

func (c *setClause) add(column string, value any) {
	c.columns = append(c.columns, column)
	c.args = append(c.args, value)
}

func (c *setClause) empty() bool {
	return len(c.columns) == 0
}

// build возвращает запрос вида UPDATE table SET a = $1, b = $2 WHERE id = $3.
func (c *setClause) build(table string, id int64) (string, []any) {
	parts := make([]string, len(c.columns))
	for i, col := range c.columns {
		parts[i] = fmt.Sprintf("%s = $%d", col, i+1)
	}
	query := fmt.Sprintf("UPDATE %s SET %s WHERE id = $%d", table, strings.Join(parts, ", "), len(c.columns)+1)
	return query, append(c.args, id)
}
