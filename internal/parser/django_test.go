package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schemaviz/internal/models"
)

const djangoModels = `from django.db import models


class Author(models.Model):
    name = models.CharField(max_length=100)
    email = models.EmailField(unique=True)

    def __str__(self):
        return self.name


class Book(models.Model):
    title = models.CharField(max_length=200)
    author = models.ForeignKey(Author, on_delete=models.CASCADE)
    related = models.ManyToManyField("self", blank=True)
    publisher = models.OneToOneField("Publisher", on_delete=models.CASCADE)
`

func TestScanDjangoClassesAndFields(t *testing.T) {
	tables, rels := scanDjango(djangoModels)

	require.Len(t, tables, 2)

	author := tables[0]
	assert.Equal(t, "Author", author.ID)
	require.Len(t, author.Columns, 2)
	assert.Equal(t, models.Column{Name: "name", Type: "CharField", Details: "max_length=100"}, author.Columns[0])
	assert.Equal(t, models.Column{Name: "email", Type: "EmailField", Details: "unique=True"}, author.Columns[1])

	book := tables[1]
	assert.Equal(t, "Book", book.ID)
	require.Len(t, book.Columns, 4)

	// "self" targets are excluded; quoted and bare targets both resolve.
	require.Len(t, rels, 2)
	assert.Equal(t, models.Relationship{Source: "Book", Target: "Author", Column: "author"}, rels[0])
	assert.Equal(t, models.Relationship{Source: "Book", Target: "Publisher", Column: "publisher"}, rels[1])
}

func TestScanDjangoOpenClassBleedsToNextHeader(t *testing.T) {
	// There is no block terminator for a class: field assignments between
	// one class body and the next header attach to the open class, even
	// after unrelated statements.
	content := `class User(models.Model):
    name = models.CharField(max_length=50)

    def save(self):
        pass

    nickname = models.CharField(max_length=20)

class Profile(models.Model):
    user = models.OneToOneField(User, on_delete=models.CASCADE)
`

	tables, _ := scanDjango(content)

	require.Len(t, tables, 2)
	require.Len(t, tables[0].Columns, 2)
	assert.Equal(t, "nickname", tables[0].Columns[1].Name)
	assert.Len(t, tables[1].Columns, 1)
}

func TestScanDjangoKeywordOnlyReferenceHasNoTarget(t *testing.T) {
	content := `class Order(models.Model):
    owner = models.ForeignKey(to="Customer", on_delete=models.CASCADE)
`

	tables, rels := scanDjango(content)

	require.Len(t, tables, 1)
	require.Len(t, tables[0].Columns, 1)
	assert.Empty(t, rels)
}

func TestScanDjangoContentBeforeFirstClassIgnored(t *testing.T) {
	content := `from django.db import models

STATUSES = models.TextChoices("Status", "OPEN CLOSED")

class Ticket(models.Model):
    status = models.CharField(max_length=10)
`

	tables, _ := scanDjango(content)

	require.Len(t, tables, 1)
	assert.Equal(t, "Ticket", tables[0].ID)
	require.Len(t, tables[0].Columns, 1)
}
