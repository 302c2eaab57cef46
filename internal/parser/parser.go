// Package parser turns loosely structured schema-definition text (Rails
// schema.rb, SQL DDL, Prisma schemas, Django models) into one normalized
// graph of tables, columns, and relationships.
//
// The pipeline is: detect dialect -> strip comments -> structural scan ->
// infer implied relationships -> assemble. Every stage is tolerant by
// contract: malformed lines are skipped, unterminated blocks keep their
// partial state, and Parse never fails or panics regardless of input.
package parser

import "schemaviz/internal/models"

// Parse converts raw schema text into a SchemaModel. The filename is an
// optional hint for dialect detection and may be empty. At worst the result
// has empty tables and relationships with the input preserved in RawContent.
func Parse(content, filename string) *models.SchemaModel {
	dialect := DetectDialect(content, filename)
	normalized := normalize(dialect, content)

	var (
		tables   []models.Table
		explicit []models.Relationship
	)
	switch dialect {
	case DialectSQL:
		tables, explicit = scanSQL(normalized)
	case DialectPrisma:
		tables, explicit = scanPrisma(normalized)
	case DialectDjango:
		tables, explicit = scanDjango(normalized)
	default:
		tables, explicit = scanRails(normalized)
	}

	inferred := inferRelationships(tables, explicit)

	return assemble(content, tables, explicit, inferred)
}

// assemble merges scanner output and inferred edges into the final model.
// Tables keep first-seen order with later duplicates of an id dropped;
// explicit edges precede inferred ones; exact (source, target, column)
// duplicates are suppressed. Edges referencing unknown tables are kept:
// filtering dangling references is the consumer's call, not the parser's.
func assemble(raw string, tables []models.Table, explicit, inferred []models.Relationship) *models.SchemaModel {
	model := &models.SchemaModel{
		Tables:        make([]models.Table, 0, len(tables)),
		Relationships: make([]models.Relationship, 0, len(explicit)+len(inferred)),
		RawContent:    raw,
	}

	seenTables := make(map[string]bool, len(tables))
	for _, t := range tables {
		if seenTables[t.ID] {
			continue
		}
		seenTables[t.ID] = true
		model.Tables = append(model.Tables, t)
	}

	seenEdges := make(map[models.Relationship]bool, len(explicit)+len(inferred))
	for _, r := range append(explicit, inferred...) {
		if seenEdges[r] {
			continue
		}
		seenEdges[r] = true
		model.Relationships = append(model.Relationships, r)
	}

	return model
}
