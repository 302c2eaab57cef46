package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schemaviz/internal/models"
)

const prismaSchema = `generator client {
  provider = "prisma-client-js"
}

datasource db {
  provider = "postgresql"
  url      = env("DATABASE_URL")
}

model User {
  id    Int     @id @default(autoincrement())
  email String  @unique
  posts Post[]
}

model Post {
  // free-form comment
  id       Int    @id @default(autoincrement())
  title    String
  author   User   @relation(fields: [authorId], references: [id])
  authorId Int
  tags     String[]

  @@index([authorId])
}
`

func TestScanPrismaModelsAndFields(t *testing.T) {
	tables, rels := scanPrisma(prismaSchema)

	// generator and datasource blocks are not models
	require.Len(t, tables, 2)
	assert.Empty(t, rels)

	user := tables[0]
	assert.Equal(t, "User", user.ID)
	require.Len(t, user.Columns, 3)
	assert.Equal(t, models.Column{Name: "id", Type: "Int", Details: "@id @default(autoincrement())"}, user.Columns[0])
	assert.Equal(t, models.Column{Name: "posts", Type: "Post[]"}, user.Columns[2])

	post := tables[1]
	assert.Equal(t, "Post", post.ID)
	// comment and @@ block-attribute lines are skipped
	require.Len(t, post.Columns, 5)
	assert.Equal(t, "author", post.Columns[2].Name)
	assert.Equal(t, "User", post.Columns[2].Type)
	assert.Contains(t, post.Columns[2].Details, "@relation")
}

func TestParsePrismaRelationInference(t *testing.T) {
	model := Parse(prismaSchema, "schema.prisma")

	// Post.author carries @relation, so Post -> User is inferred. User.posts
	// has no relation attribute on its side and produces no edge.
	require.Len(t, model.Relationships, 1)
	assert.Equal(t, models.Relationship{Source: "Post", Target: "User", Column: "author"}, model.Relationships[0])
}

func TestScanPrismaUnterminatedModel(t *testing.T) {
	content := `model Order {
  id    Int @id
  total Float`

	tables, _ := scanPrisma(content)

	require.Len(t, tables, 1)
	assert.Len(t, tables[0].Columns, 2)
}
