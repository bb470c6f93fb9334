package domain

// Document represents a single scraped web page reduced to text.
// It is immutable once scraped.
type Document struct {
	// Content is the page text in markdown form.
	Content string

	// SourceURL is the address the page was scraped from.
	SourceURL string

	// Title is the page title, when the scraper reports one.
	Title string
}

// Corpus is the session's ordered collection of scraped documents.
// Insertion order is scrape order. Duplicate source URLs are permitted:
// scraping the same page twice records it twice.
type Corpus struct {
	documents []Document
	urls      []string
}

// NewCorpus creates an empty corpus.
func NewCorpus() *Corpus {
	return &Corpus{}
}

// Merge folds newly scraped documents into the corpus.
// When retain is true the new documents are appended after the existing
// ones, preserving order on both sides. When retain is false the corpus
// is replaced with the new documents verbatim, discarding prior contents.
// Nothing is ever evicted implicitly; repeated retained searches grow the
// corpus without bound.
func (c *Corpus) Merge(docs []Document, urls []string, retain bool) {
	if retain {
		c.documents = append(c.documents, docs...)
		c.urls = append(c.urls, urls...)
		return
	}
	c.documents = append([]Document(nil), docs...)
	c.urls = append([]string(nil), urls...)
}

// Documents returns the documents in scrape order.
// The returned slice is a copy; mutating it does not affect the corpus.
func (c *Corpus) Documents() []Document {
	return append([]Document(nil), c.documents...)
}

// URLs returns the source URLs parallel to Documents.
func (c *Corpus) URLs() []string {
	return append([]string(nil), c.urls...)
}

// Len returns the number of documents in the corpus.
func (c *Corpus) Len() int {
	return len(c.documents)
}

// IsEmpty returns true if no documents have been scraped yet.
func (c *Corpus) IsEmpty() bool {
	return len(c.documents) == 0
}
