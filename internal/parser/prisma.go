package parser

import (
	"regexp"
	"strings"

	"schemaviz/internal/models"
)

var prismaModelOpen = regexp.MustCompile(`^model\s+(\w+)\s*\{`)

// scanPrisma walks a Prisma schema line by line. A "model Name {" line opens
// a model and a bare "}" closes it. Field lines split on whitespace: name,
// type token (array/optional markers included), then attributes kept
// verbatim as details. Block attributes (@@) and comment lines are skipped.
// Prisma emits no explicit edges here; relation fields are resolved by the
// inference pass from their type tokens and @relation attributes.
func scanPrisma(content string) ([]models.Table, []models.Relationship) {
	var (
		tables  []models.Table
		current = -1
	)

	for _, raw := range strings.Split(content, "\n") {
		line := strings.TrimSpace(raw)

		if m := prismaModelOpen.FindStringSubmatch(line); m != nil {
			tables = append(tables, models.Table{ID: m[1]})
			current = len(tables) - 1
			continue
		}

		if current < 0 {
			continue
		}
		if line == "}" {
			current = -1
			continue
		}
		if line == "" || strings.HasPrefix(line, "//") || strings.HasPrefix(line, "@@") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		tables[current].Columns = append(tables[current].Columns, models.Column{
			Name:    fields[0],
			Type:    fields[1],
			Details: strings.Join(fields[2:], " "),
		})
	}

	return tables, nil
}
