package nlp

import "unicode"

// Category is the coarse semantic category assigned to an entity span.
type Category string

const (
	CategoryPerson       Category = "PERSON"
	CategoryOrganization Category = "ORG"
	CategoryLocation     Category = "GPE"
)

// Token is a single token of the annotated text with its Penn Treebank POS
// tag and byte offsets into the source text. Entity is empty for tokens that
// are not part of a recognized entity span.
type Token struct {
	Text   string
	Tag    string
	Start  int
	End    int
	Entity Category
}

// IsProperNoun reports whether the token is tagged as a proper noun.
func (t Token) IsProperNoun() bool {
	return t.Tag == "NNP" || t.Tag == "NNPS"
}

// IsPunct reports whether the token consists entirely of punctuation or
// symbol runes.
func (t Token) IsPunct() bool {
	if t.Text == "" {
		return false
	}
	for _, r := range t.Text {
		if !unicode.IsPunct(r) && !unicode.IsSymbol(r) {
			return false
		}
	}
	return true
}

// Entity is a contiguous text span tagged with a semantic category.
type Entity struct {
	Text     string
	Category Category
	Start    int
	End      int
}

// Document is the read-only annotation of one extracted text. It is built
// once per request and never mutated afterwards.
type Document struct {
	Text     string
	Tokens   []Token
	Entities []Entity
}

// FirstEntity returns the first entity of the given category in document
// order, or false if the document contains none.
func (d *Document) FirstEntity(cat Category) (Entity, bool) {
	for _, e := range d.Entities {
		if e.Category == cat {
			return e, true
		}
	}
	return Entity{}, false
}
