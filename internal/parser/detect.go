package parser

import (
	"path/filepath"
	"strings"
)

// Dialect identifies one of the supported schema-definition formats.
type Dialect string

const (
	DialectRails  Dialect = "rails"
	DialectSQL    Dialect = "sql"
	DialectPrisma Dialect = "prisma"
	DialectDjango Dialect = "django"
)

// Content markers consulted when the filename extension is not decisive.
const (
	prismaGeneratorMarker = "generator client"
	djangoImportMarker    = "from django.db import models"
	railsSchemaMarker     = "ActiveRecord::Schema"
)

var extensionDialects = map[string]Dialect{
	".rb":     DialectRails,
	".sql":    DialectSQL,
	".prisma": DialectPrisma,
	".py":     DialectDjango,
}

// DetectDialect chooses the scanner to apply. The extension wins over any
// content signature; content markers win over the CREATE TABLE sniff. It
// always returns a dialect: a wrong guess costs nothing because scanning is
// tolerant and yields an empty or partial model on a total mismatch.
func DetectDialect(content, filename string) Dialect {
	if d, ok := extensionDialects[strings.ToLower(filepath.Ext(filename))]; ok {
		return d
	}

	switch {
	case strings.Contains(content, prismaGeneratorMarker):
		return DialectPrisma
	case strings.Contains(content, djangoImportMarker):
		return DialectDjango
	case strings.Contains(content, railsSchemaMarker):
		return DialectRails
	}

	if strings.Contains(strings.ToUpper(content), "CREATE TABLE") ||
		strings.Contains(strings.ToUpper(filename), "CREATE TABLE") {
		return DialectSQL
	}

	// Legacy default.
	return DialectRails
}
