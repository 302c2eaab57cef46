package parser

import (
	"strings"

	"schemaviz/internal/models"
)

const relationAttributeMarker = "@relation"

// inferRelationships derives edges the source text only implies. It runs
// once after structural scanning and is strictly additive: explicit edges
// are never removed or rewritten.
//
// Two conventions are recognized:
//
//   - columns named <singular>_id, resolved against candidate table ids
//     <singular>s, <singular>es, <singular> in that order (naive English
//     pluralization, first existing table wins). Skipped when an explicit
//     edge already covers the (source, target) pair.
//   - typed reference fields whose type token (array/optional markers
//     stripped) names another table and whose details carry a @relation
//     attribute, as written by the Prisma scanner.
//
// Ambiguity resolves silently to the first match or to no edge at all.
func inferRelationships(tables []models.Table, existing []models.Relationship) []models.Relationship {
	ids := make(map[string]bool, len(tables))
	for _, t := range tables {
		ids[t.ID] = true
	}

	pairSeen := make(map[[2]string]bool, len(existing))
	for _, r := range existing {
		pairSeen[[2]string{r.Source, r.Target}] = true
	}

	var inferred []models.Relationship
	for _, t := range tables {
		for _, col := range t.Columns {
			if target, ok := foreignKeyTarget(col.Name, ids); ok {
				pair := [2]string{t.ID, target}
				if !pairSeen[pair] {
					pairSeen[pair] = true
					inferred = append(inferred, models.Relationship{
						Source: t.ID,
						Target: target,
						Column: col.Name,
					})
				}
				continue
			}

			ref := strings.TrimSuffix(strings.TrimSuffix(col.Type, "[]"), "?")
			if ids[ref] && strings.Contains(col.Details, relationAttributeMarker) {
				inferred = append(inferred, models.Relationship{
					Source: t.ID,
					Target: ref,
					Column: col.Name,
				})
			}
		}
	}

	return inferred
}

// foreignKeyTarget resolves a column named <singular>_id to an existing
// table id, trying the naive plural forms first.
func foreignKeyTarget(column string, ids map[string]bool) (string, bool) {
	singular, ok := strings.CutSuffix(column, "_id")
	if !ok || singular == "" {
		return "", false
	}
	for _, candidate := range []string{singular + "s", singular + "es", singular} {
		if ids[candidate] {
			return candidate, true
		}
	}
	return "", false
}
