package worddef

import "strings"

// Definition is a single dictionary definition as returned by one database
// on a DICT server.
type Definition struct {
	Headword     string   `json:"headword"`
	Database     string   `json:"database"` // e.g. "wn" for WordNet
	DatabaseDesc string   `json:"databaseDesc"`
	Body         []string `json:"body"` // one element per line, verbatim from the server
}

// Validate returns an error if the definition contains invalid fields.
func (d *Definition) Validate() error {
	if d.Headword == "" {
		return Errorf(EINVALID, "definition headword required")
	}
	if d.Database == "" {
		return Errorf(EINVALID, "definition database required")
	}
	return nil
}

// Text returns the definition body as a single newline-joined string.
func (d *Definition) Text() string {
	return strings.Join(d.Body, "\n")
}

// Match is a single MATCH result: a term the server considers similar to
// the queried word, and the database it appears in.
type Match struct {
	Database string `json:"database"`
	Term     string `json:"term"`
}

// Database describes one dictionary database available on a server.
type Database struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Strategy describes one match strategy supported by a server.
type Strategy struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}
