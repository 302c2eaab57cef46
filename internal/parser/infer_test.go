package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schemaviz/internal/models"
)

func tableWithColumns(id string, names ...string) models.Table {
	t := models.Table{ID: id}
	for _, n := range names {
		t.Columns = append(t.Columns, models.Column{Name: n, Type: "integer"})
	}
	return t
}

func TestInferPluralTarget(t *testing.T) {
	tables := []models.Table{
		tableWithColumns("posts", "id", "author_id"),
		tableWithColumns("authors", "id"),
	}

	inferred := inferRelationships(tables, nil)

	require.Len(t, inferred, 1)
	assert.Equal(t, models.Relationship{Source: "posts", Target: "authors", Column: "author_id"}, inferred[0])
}

func TestInferSingularFallback(t *testing.T) {
	tables := []models.Table{
		tableWithColumns("posts", "author_id"),
		tableWithColumns("author", "id"),
	}

	inferred := inferRelationships(tables, nil)

	require.Len(t, inferred, 1)
	assert.Equal(t, "author", inferred[0].Target)
}

func TestInferEsPluralization(t *testing.T) {
	tables := []models.Table{
		tableWithColumns("items", "box_id"),
		tableWithColumns("boxes", "id"),
	}

	inferred := inferRelationships(tables, nil)

	require.Len(t, inferred, 1)
	assert.Equal(t, "boxes", inferred[0].Target)
}

func TestInferPluralBeatsSingular(t *testing.T) {
	tables := []models.Table{
		tableWithColumns("posts", "author_id"),
		tableWithColumns("author", "id"),
		tableWithColumns("authors", "id"),
	}

	inferred := inferRelationships(tables, nil)

	require.Len(t, inferred, 1)
	assert.Equal(t, "authors", inferred[0].Target)
}

func TestInferSkipsCoveredPairs(t *testing.T) {
	tables := []models.Table{
		tableWithColumns("posts", "user_id"),
		tableWithColumns("users", "id"),
	}
	explicit := []models.Relationship{{Source: "posts", Target: "users"}}

	inferred := inferRelationships(tables, explicit)

	assert.Empty(t, inferred)
}

func TestInferNoCandidateNoEdge(t *testing.T) {
	tables := []models.Table{
		tableWithColumns("posts", "author_id", "_id", "name"),
	}

	assert.Empty(t, inferRelationships(tables, nil))
}

func TestInferTypedReferenceNeedsRelationAttribute(t *testing.T) {
	tables := []models.Table{
		{ID: "Post", Columns: []models.Column{
			{Name: "author", Type: "User", Details: "@relation(fields: [authorId], references: [id])"},
			{Name: "reviewer", Type: "User"},
			{Name: "drafts", Type: "Draft[]", Details: "@relation(\"drafts\")"},
		}},
		{ID: "User"},
		{ID: "Draft"},
	}

	inferred := inferRelationships(tables, nil)

	require.Len(t, inferred, 2)
	assert.Equal(t, models.Relationship{Source: "Post", Target: "User", Column: "author"}, inferred[0])
	assert.Equal(t, models.Relationship{Source: "Post", Target: "Draft", Column: "drafts"}, inferred[1])
}
