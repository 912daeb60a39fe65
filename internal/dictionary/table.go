// Package dictionary provides the word-metadata collaborators consumed by the
// evaluation engine: the embedded curated table, a file-backed external
// source, and the timeout decorator that bounds external lookups.
//
// Every dictionary document — the embedded one included — is validated
// against the same JSON Schema before use, so a malformed entry is caught at
// load time rather than surfacing as broken feedback mid-session.
package dictionary

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/abhisek/lexiz/internal/engine"
)

//go:embed data/words.json
var curatedWords []byte

//go:embed data/schema.json
var dictionarySchema []byte

// document is the on-disk shape of a dictionary file.
type document struct {
	Entries []documentEntry `json:"entries"`
}

type documentEntry struct {
	Word         string   `json:"word"`
	Meaning      string   `json:"meaning"`
	PartOfSpeech string   `json:"partOfSpeech"`
	Difficulty   string   `json:"difficulty"`
	Examples     []string `json:"examples"`
	Synonyms     []string `json:"synonyms"`
}

// Table is the curated local dictionary. Lookups are exact and
// case-insensitive. A Table is immutable after Load and safe for concurrent
// use.
type Table struct {
	entries map[string]engine.WordEntry
}

// Load parses and validates the embedded curated table.
func Load() (*Table, error) {
	doc, err := parseDocument(curatedWords)
	if err != nil {
		return nil, fmt.Errorf("curated dictionary: %w", err)
	}

	entries := make(map[string]engine.WordEntry, len(doc.Entries))
	for _, e := range doc.Entries {
		entries[strings.ToLower(e.Word)] = toWordEntry(e)
	}
	return &Table{entries: entries}, nil
}

// Lookup returns the entry for word, matching case-insensitively.
func (t *Table) Lookup(word string) (engine.WordEntry, bool) {
	entry, ok := t.entries[strings.ToLower(strings.TrimSpace(word))]
	return entry, ok
}

// Len returns the number of curated entries.
func (t *Table) Len() int {
	return len(t.entries)
}

// Words returns the curated headwords in no particular order.
func (t *Table) Words() []string {
	words := make([]string, 0, len(t.entries))
	for w := range t.entries {
		words = append(words, w)
	}
	return words
}

// toWordEntry converts a validated document entry into an engine entry.
// Schema validation guarantees the enum fields hold known values.
func toWordEntry(e documentEntry) engine.WordEntry {
	entry := engine.WordEntry{
		Difficulty:   engine.Difficulty(e.Difficulty),
		Meaning:      e.Meaning,
		PartOfSpeech: engine.PartOfSpeech(e.PartOfSpeech),
		Examples:     e.Examples,
		Synonyms:     e.Synonyms,
	}
	if entry.Examples == nil {
		entry.Examples = []string{}
	}
	if entry.Synonyms == nil {
		entry.Synonyms = []string{}
	}
	return entry
}

// parseDocument validates raw against the dictionary schema and decodes it.
func parseDocument(raw []byte) (*document, error) {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}

	compiled, err := compiledDictionarySchema()
	if err != nil {
		return nil, err
	}
	if err := compiled.Validate(parsed); err != nil {
		return nil, fmt.Errorf("schema validation failed: %w", err)
	}

	var doc document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return &doc, nil
}

var (
	schemaOnce     sync.Once
	schemaCompiled *jsonschema.Schema
	schemaErr      error
)

// compiledDictionarySchema compiles the embedded schema once.
func compiledDictionarySchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		var parsed any
		if err := json.Unmarshal(dictionarySchema, &parsed); err != nil {
			schemaErr = fmt.Errorf("parse dictionary schema: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		const schemaURL = "schema://lexiz-dictionary.json"
		if err := c.AddResource(schemaURL, parsed); err != nil {
			schemaErr = fmt.Errorf("add schema resource: %w", err)
			return
		}
		schemaCompiled, schemaErr = c.Compile(schemaURL)
	})
	return schemaCompiled, schemaErr
}
