package parser

import "strings"

// normalize strips dialect-specific comment syntax before structural
// scanning. Prisma is left untouched: its scanner skips comment lines
// itself and trailing // text rides along inside attribute details.
func normalize(dialect Dialect, content string) string {
	switch dialect {
	case DialectSQL:
		return stripSQLComments(content)
	case DialectRails, DialectDjango:
		return stripHashComments(content)
	default:
		return content
	}
}

// stripSQLComments removes /* */ block comments and -- line comments.
// Comment markers inside string literals are not special-cased; they are
// rare in DDL and the scanner tolerates the fallout.
func stripSQLComments(content string) string {
	for {
		start := strings.Index(content, "/*")
		if start < 0 {
			break
		}
		end := strings.Index(content[start+2:], "*/")
		if end < 0 {
			content = content[:start]
			break
		}
		content = content[:start] + " " + content[start+2+end+2:]
	}

	lines := strings.Split(content, "\n")
	for i, line := range lines {
		if idx := strings.Index(line, "--"); idx >= 0 {
			lines[i] = line[:idx]
		}
	}
	return strings.Join(lines, "\n")
}

// stripHashComments removes # comments from Ruby and Python sources.
func stripHashComments(content string) string {
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		if idx := strings.Index(line, "#"); idx >= 0 {
			lines[i] = line[:idx]
		}
	}
	return strings.Join(lines, "\n")
}
