package parser

import (
	"regexp"
	"strings"

	"schemaviz/internal/models"
)

var (
	djangoClassOpen = regexp.MustCompile(`^class\s+(\w+)\s*\([^)]*\)\s*:`)
	djangoField     = regexp.MustCompile(`^(\w+)\s*=\s*(?:\w+\.)?(\w+)\s*\((.*)\)\s*$`)
)

// Field types that reference another model. The target is the first
// constructor argument.
var djangoReferenceFields = map[string]bool{
	"ForeignKey":      true,
	"OneToOneField":   true,
	"ManyToManyField": true,
}

// scanDjango walks a Django models.py-style source line by line. A class
// header with a base-class argument list opens a class; there is no block
// terminator, so the open class persists until the next class header or end
// of input, and indented helpers between classes can bleed fields into the
// wrong model. That matches the flat-line treatment of the source and is
// accepted as a documented limitation. Reference fields (ForeignKey,
// OneToOneField, ManyToManyField) yield relationships at scan time;
// "self" targets are skipped.
func scanDjango(content string) ([]models.Table, []models.Relationship) {
	var (
		tables  []models.Table
		rels    []models.Relationship
		current = -1
	)

	for _, raw := range strings.Split(content, "\n") {
		line := strings.TrimSpace(raw)

		if m := djangoClassOpen.FindStringSubmatch(line); m != nil {
			tables = append(tables, models.Table{ID: m[1]})
			current = len(tables) - 1
			continue
		}

		if current < 0 || !strings.Contains(line, "=") {
			continue
		}

		m := djangoField.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		name, fieldType, args := m[1], m[2], m[3]

		tables[current].Columns = append(tables[current].Columns, models.Column{
			Name:    name,
			Type:    fieldType,
			Details: args,
		})

		if djangoReferenceFields[fieldType] {
			if target := djangoReferenceTarget(args); target != "" && target != "self" {
				rels = append(rels, models.Relationship{
					Source: tables[current].ID,
					Target: target,
					Column: name,
				})
			}
		}
	}

	return tables, rels
}

// djangoReferenceTarget pulls the referenced model out of the first
// constructor argument, quoted or bare. Keyword-only argument lists (for
// example ForeignKey(to_field=...)) carry no positional target.
func djangoReferenceTarget(args string) string {
	arg := args
	if i := strings.Index(arg, ","); i >= 0 {
		arg = arg[:i]
	}
	arg = strings.Trim(strings.TrimSpace(arg), `'"`)
	if arg == "" || strings.Contains(arg, "=") {
		return ""
	}
	return arg
}
