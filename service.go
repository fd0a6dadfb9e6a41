package worddef

import "context"

// DictionaryService is the client-side view of a dictionary server
// session. One service instance owns one connection for the lifetime of
// one lookup; results preserve the server's own ordering.
type DictionaryService interface {
	// Define looks up word in the given database ("*" searches all of
	// them). Returns an empty slice, not an error, when the server
	// reports no match.
	Define(ctx context.Context, database, word string) ([]*Definition, error)

	// Match lists terms similar to word according to the given strategy
	// ("." selects the server's default). Returns an empty slice when the
	// server reports no match.
	Match(ctx context.Context, database, strategy, word string) ([]*Match, error)

	// Databases lists the databases the server is willing to search.
	Databases(ctx context.Context) ([]*Database, error)

	// Strategies lists the match strategies the server supports.
	Strategies(ctx context.Context) ([]*Strategy, error)

	// Close ends the session and releases the connection.
	// Must be called when the service is no longer needed.
	Close() error
}
