package token

// Reserved words of the hybrid language: the C keyword set plus the
// Python keyword set. Membership is exact and case-sensitive; the map is
// built once and never mutated, so concurrent lookups need no locking.
var keywords = map[string]struct{}{
	"auto":     {},
	"break":    {},
	"case":     {},
	"char":     {},
	"const":    {},
	"continue": {},
	"default":  {},
	"do":       {},
	"double":   {},
	"else":     {},
	"enum":     {},
	"extern":   {},
	"float":    {},
	"for":      {},
	"goto":     {},
	"if":       {},
	"int":      {},
	"long":     {},
	"register": {},
	"return":   {},
	"short":    {},
	"signed":   {},
	"sizeof":   {},
	"static":   {},
	"struct":   {},
	"switch":   {},
	"typedef":  {},
	"union":    {},
	"unsigned": {},
	"void":     {},
	"volatile": {},
	"while":    {},
	"print":    {},
	"input":    {},
	"def":      {},
	"class":    {},
	"import":   {},
	"from":     {},
	"as":       {},
	"try":      {},
	"except":   {},
	"finally":  {},
	"raise":    {},
	"with":     {},
	"yield":    {},
	"lambda":   {},
	"pass":     {},
	"True":     {},
	"False":    {},
	"None":     {},
	"and":      {},
	"or":       {},
	"not":      {},
	"in":       {},
	"is":       {},
	"elif":     {},
}

// LookupKeyword reports whether ident is a reserved word.
// Only exact matches count: "If" and "IF" are identifiers.
func LookupKeyword(ident string) bool {
	_, ok := keywords[ident]
	return ok
}

// KeywordCount returns the size of the keyword set.
func KeywordCount() int { return len(keywords) }
