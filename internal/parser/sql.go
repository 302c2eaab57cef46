package parser

import (
	"regexp"
	"strings"

	"schemaviz/internal/models"
)

var (
	sqlCreateTable = regexp.MustCompile(`(?is)^CREATE\s+TABLE\s+(?:IF\s+NOT\s+EXISTS\s+)?([^\s(]+)`)
	sqlInlineFK    = regexp.MustCompile(`(?is)^FOREIGN\s+KEY\s*\(([^)]+)\)\s*REFERENCES\s+([^\s(]+)`)
	sqlAlterFK     = regexp.MustCompile(`(?is)^ALTER\s+TABLE\s+(?:ONLY\s+)?([^\s(]+)\s+ADD\s+(?:CONSTRAINT\s+\S+\s+)?FOREIGN\s+KEY\s*\(([^)]+)\)\s*REFERENCES\s+([^\s(]+)`)
	sqlConstraint  = regexp.MustCompile(`(?i)^(PRIMARY\s+KEY|FOREIGN\s+KEY|CONSTRAINT|UNIQUE|KEY|INDEX|CHECK)\b`)
	sqlColumnDef   = regexp.MustCompile(`^(\S+)\s+(\S+)\s*(.*)$`)
)

// scanSQL splits comment-stripped DDL into statements on ';' and recognizes
// two statement shapes: CREATE TABLE (columns plus inline foreign keys) and
// ALTER TABLE ... ADD ... FOREIGN KEY. Everything else is ignored.
func scanSQL(content string) ([]models.Table, []models.Relationship) {
	var (
		tables []models.Table
		rels   []models.Relationship
	)

	for _, stmt := range strings.Split(content, ";") {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" {
			continue
		}

		if m := sqlAlterFK.FindStringSubmatch(stmt); m != nil {
			rels = append(rels, models.Relationship{
				Source: trimIdentifier(m[1]),
				Target: trimIdentifier(m[3]),
				Column: firstColumnOf(m[2]),
			})
			continue
		}

		m := sqlCreateTable.FindStringSubmatch(stmt)
		if m == nil {
			continue
		}
		table := models.Table{ID: trimIdentifier(m[1])}

		// The body is whatever sits between the first and last paren.
		lparen := strings.Index(stmt, "(")
		rparen := strings.LastIndex(stmt, ")")
		if lparen < 0 || rparen <= lparen {
			tables = append(tables, table)
			continue
		}

		for _, clause := range splitTopLevel(stmt[lparen+1 : rparen]) {
			clause = strings.Join(strings.Fields(clause), " ")
			if clause == "" {
				continue
			}

			if fk := sqlInlineFK.FindStringSubmatch(clause); fk != nil {
				rels = append(rels, models.Relationship{
					Source: table.ID,
					Target: trimIdentifier(fk[2]),
					Column: firstColumnOf(fk[1]),
				})
				continue
			}

			if sqlConstraint.MatchString(clause) {
				continue
			}

			if cm := sqlColumnDef.FindStringSubmatch(clause); cm != nil {
				table.Columns = append(table.Columns, models.Column{
					Name:    trimIdentifier(cm[1]),
					Type:    cm[2],
					Details: strings.TrimSpace(cm[3]),
				})
			}
		}

		tables = append(tables, table)
	}

	return tables, rels
}

// splitTopLevel splits a CREATE TABLE body on commas that sit outside any
// parentheses, so type arguments like DECIMAL(10,2) stay intact.
func splitTopLevel(body string) []string {
	var (
		parts []string
		depth int
		start int
	)
	for i, r := range body {
		switch r {
		case '(':
			depth++
		case ')':
			depth--
		case ',':
			if depth == 0 {
				parts = append(parts, body[start:i])
				start = i + 1
			}
		}
	}
	return append(parts, body[start:])
}

// trimIdentifier drops any schema qualifier and quoting characters.
func trimIdentifier(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.LastIndex(s, "."); i >= 0 {
		s = s[i+1:]
	}
	return strings.Trim(s, "`\"'[]")
}

// firstColumnOf extracts the first column from a FOREIGN KEY column list.
// Composite keys keep only their leading column; the model carries a single
// column per edge.
func firstColumnOf(list string) string {
	if i := strings.Index(list, ","); i >= 0 {
		list = list[:i]
	}
	return trimIdentifier(list)
}
