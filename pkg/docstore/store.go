package docstore

import "context"

// Document is a stored record's field map keyed by field name.
type Document map[string]interface{}

// Entry pairs a document with its id for listing.
type Entry struct {
	ID  string   `json:"id"`
	Doc Document `json:"doc"`
}

// Store defines the document store boundary: durable key -> record storage
// addressed by collection and id.
//
// List returns documents in the store's natural order. Callers must not
// assume a particular sort beyond stability.
type Store interface {
	// Get returns the document and whether it exists.
	Get(ctx context.Context, collection, id string) (Document, bool, error)
	// Set replaces the document's fields, creating the document when absent.
	Set(ctx context.Context, collection, id string, fields Document) error
	// Merge merges fields into the document, creating it when absent.
	// Fields not present in the argument are left unchanged.
	Merge(ctx context.Context, collection, id string, fields Document) error
	// List returns all documents in the collection.
	List(ctx context.Context, collection string) ([]Entry, error)
}

// clone returns a shallow copy so callers never alias stored state.
func clone(doc Document) Document {
	if doc == nil {
		return nil
	}
	out := make(Document, len(doc))
	for k, v := range doc {
		out[k] = v
	}
	return out
}
