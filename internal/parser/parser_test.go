package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schemaviz/internal/models"
)

func TestParseEmptyInput(t *testing.T) {
	model := Parse("", "x.txt")

	require.NotNil(t, model)
	assert.Equal(t, []models.Table{}, model.Tables)
	assert.Equal(t, []models.Relationship{}, model.Relationships)
	assert.Equal(t, "", model.RawContent)
}

func TestParseIsIdempotent(t *testing.T) {
	content := `CREATE TABLE users (id INT);
CREATE TABLE posts (id INT, user_id INT);`

	first := Parse(content, "schema.sql")
	second := Parse(content, "schema.sql")

	assert.Equal(t, first, second)
}

func TestParseKeepsRawContentVerbatim(t *testing.T) {
	content := "-- a comment the normalizer strips\nCREATE TABLE t (id INT);"

	model := Parse(content, "schema.sql")

	assert.Equal(t, content, model.RawContent)
}

func TestParseDeduplicatesRelationships(t *testing.T) {
	content := `create_table "posts" do |t|
  t.bigint "user_id"
end
create_table "users" do |t|
end
add_foreign_key "posts", "users"
add_foreign_key "posts", "users"
`

	model := Parse(content, "schema.rb")

	// Two identical explicit statements collapse to one edge, and the
	// user_id inference is suppressed because the pair is already covered.
	require.Len(t, model.Relationships, 1)
	assert.Equal(t, models.Relationship{Source: "posts", Target: "users"}, model.Relationships[0])
}

func TestParseColumnDistinguishesDuplicates(t *testing.T) {
	content := `create_table "posts" do |t|
end
add_foreign_key "posts", "users"
add_foreign_key "posts", "users", column: "author_id"
`

	model := Parse(content, "schema.rb")

	// Same pair, one edge with a column and one without: both survive.
	require.Len(t, model.Relationships, 2)
}

func TestParseKeepsDanglingEdges(t *testing.T) {
	content := `add_foreign_key "orders", "warehouses"`

	model := Parse(content, "schema.rb")

	assert.Empty(t, model.Tables)
	require.Len(t, model.Relationships, 1)
	assert.Equal(t, "warehouses", model.Relationships[0].Target)
}

func TestParseDuplicateTableIDsKeepFirst(t *testing.T) {
	content := `CREATE TABLE users (id INT, name TEXT);
CREATE TABLE users (id INT);`

	model := Parse(content, "schema.sql")

	require.Len(t, model.Tables, 1)
	assert.Len(t, model.Tables[0].Columns, 2)
}

func TestParseEndToEndInference(t *testing.T) {
	content := `CREATE TABLE users (id SERIAL PRIMARY KEY, name TEXT);
CREATE TABLE posts (id SERIAL PRIMARY KEY, user_id INT, title TEXT);
CREATE TABLE comments (id SERIAL PRIMARY KEY, user_id INT, post_id INT, body TEXT);
ALTER TABLE posts ADD CONSTRAINT fk_posts_users FOREIGN KEY (user_id) REFERENCES users (id);
ALTER TABLE comments ADD CONSTRAINT fk_comments_posts FOREIGN KEY (post_id) REFERENCES posts (id);`

	model := Parse(content, "schema.sql")

	require.Len(t, model.Tables, 3)
	require.Len(t, model.Relationships, 3)

	// Explicit edges first, in statement order, then the inferred edge.
	assert.Equal(t, models.Relationship{Source: "posts", Target: "users", Column: "user_id"}, model.Relationships[0])
	assert.Equal(t, models.Relationship{Source: "comments", Target: "posts", Column: "post_id"}, model.Relationships[1])
	assert.Equal(t, models.Relationship{Source: "comments", Target: "users", Column: "user_id"}, model.Relationships[2])
}

func TestParseNeverPanicsOnGarbage(t *testing.T) {
	inputs := []string{
		"{{{{((((",
		"CREATE TABLE",
		"model {",
		"class :",
		"t.string \"orphan\"",
		"\x00\x01\x02",
		"CREATE TABLE ((((;;;; FOREIGN KEY",
	}
	for _, content := range inputs {
		for _, filename := range []string{"", "a.rb", "a.sql", "a.prisma", "a.py"} {
			assert.NotPanics(t, func() {
				model := Parse(content, filename)
				require.NotNil(t, model)
				assert.Equal(t, content, model.RawContent)
			})
		}
	}
}
