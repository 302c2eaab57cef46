package parser

import (
	"regexp"
	"strings"

	"schemaviz/internal/models"
)

var (
	railsTableOpen  = regexp.MustCompile(`create_table\s+"([^"]+)"`)
	railsColumn     = regexp.MustCompile(`^t\.(\w+)\s+"([^"]+)"\s*(?:,\s*(.*))?$`)
	railsForeignKey = regexp.MustCompile(`add_foreign_key\s+"([^"]+)"\s*,\s*"([^"]+)"(.*)`)
	railsFKColumn   = regexp.MustCompile(`column:\s*"([^"]+)"`)
)

// scanRails walks a Rails schema.rb-style source line by line. A
// create_table line opens a table, t.<type> "<name>" lines append columns
// to it, and the first bare "end" closes it; nesting is deliberately not
// tracked. add_foreign_key lines yield explicit relationships regardless of
// whether a table is open. An unterminated block keeps whatever columns it
// accumulated.
func scanRails(content string) ([]models.Table, []models.Relationship) {
	var (
		tables  []models.Table
		rels    []models.Relationship
		current = -1 // index of the open create_table block, -1 when none
	)

	for _, raw := range strings.Split(content, "\n") {
		line := strings.TrimSpace(raw)

		if m := railsForeignKey.FindStringSubmatch(line); m != nil {
			rel := models.Relationship{Source: m[1], Target: m[2]}
			if c := railsFKColumn.FindStringSubmatch(m[3]); c != nil {
				rel.Column = c[1]
			}
			rels = append(rels, rel)
			continue
		}

		if m := railsTableOpen.FindStringSubmatch(line); m != nil {
			tables = append(tables, models.Table{ID: m[1]})
			current = len(tables) - 1
			continue
		}

		if current < 0 {
			continue
		}

		if m := railsColumn.FindStringSubmatch(line); m != nil {
			tables[current].Columns = append(tables[current].Columns, models.Column{
				Name:    m[2],
				Type:    m[1],
				Details: strings.TrimSpace(m[3]),
			})
			continue
		}

		if line == "end" {
			current = -1
		}
	}

	return tables, rels
}
