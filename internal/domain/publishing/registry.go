// Package publishing models the many-to-many relationship between authors
// and magazines. Articles are the join entity: each one links exactly one
// Author to exactly one Magazine and carries the relationship data (a title).
// A Registry owns the append-only collections of everything constructed
// through it and is the single source of truth for the derived queries.
package publishing

import "sync"

// Registry owns the canonical, append-only collections of all entities
// constructed through it. Entities are never removed. All entity
// construction goes through the New* methods so that a query never
// observes a partially initialized entity.
//
// A Registry is safe for concurrent use: appends and snapshots are
// serialized by a single mutex.
type Registry struct {
	mu        sync.Mutex
	seq       int64
	authors   []*Author
	magazines []*Magazine
	articles  []*Article
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// NewAuthor constructs an Author with the given name and registers it.
// The name must be a non-empty string; it is write-once for the lifetime
// of the instance. On validation failure nothing is registered.
func (r *Registry) NewAuthor(name string) (*Author, error) {
	if err := validateNonEmpty("name", name); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.seq++
	author := &Author{
		registry: r,
		seq:      r.seq,
		name:     name,
		nameSet:  true,
	}
	r.authors = append(r.authors, author)
	return author, nil
}

// NewMagazine constructs a Magazine with the given name and category and
// registers it. The name must be 2 to 16 characters, the category
// non-empty; both stay mutable and are re-validated on every later
// assignment. On validation failure nothing is registered.
func (r *Registry) NewMagazine(name, category string) (*Magazine, error) {
	if err := validateLengthRange("name", name, minMagazineNameLen, maxMagazineNameLen); err != nil {
		return nil, err
	}
	if err := validateNonEmpty("category", category); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.seq++
	magazine := &Magazine{
		registry: r,
		seq:      r.seq,
		name:     name,
		category: category,
	}
	r.magazines = append(r.magazines, magazine)
	return magazine, nil
}

// NewArticle constructs an Article linking the given author and magazine
// with the given title and registers it. Both references are fixed at
// construction and must belong to this registry; the title must be 5 to 50
// characters and is write-once. On validation failure nothing is
// registered.
func (r *Registry) NewArticle(author *Author, magazine *Magazine, title string) (*Article, error) {
	if author == nil {
		return nil, &ValidationError{Field: "author", Message: "is required"}
	}
	if magazine == nil {
		return nil, &ValidationError{Field: "magazine", Message: "is required"}
	}
	if author.registry != r {
		return nil, &ValidationError{Field: "author", Message: "belongs to a different registry"}
	}
	if magazine.registry != r {
		return nil, &ValidationError{Field: "magazine", Message: "belongs to a different registry"}
	}
	if err := validateLengthRange("title", title, minArticleTitleLen, maxArticleTitleLen); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.seq++
	article := &Article{
		registry: r,
		seq:      r.seq,
		author:   author,
		magazine: magazine,
		title:    title,
		titleSet: true,
	}
	r.articles = append(r.articles, article)
	return article, nil
}

// Authors returns a snapshot of all registered authors in creation order.
func (r *Registry) Authors() []*Author {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*Author, len(r.authors))
	copy(out, r.authors)
	return out
}

// Magazines returns a snapshot of all registered magazines in creation order.
func (r *Registry) Magazines() []*Magazine {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*Magazine, len(r.magazines))
	copy(out, r.magazines)
	return out
}

// Articles returns a snapshot of all registered articles in creation order.
func (r *Registry) Articles() []*Article {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*Article, len(r.articles))
	copy(out, r.articles)
	return out
}

// TopPublisher returns the magazine with the strictly maximum article count
// across all registered articles. The second return value is false when no
// articles exist. Ties break deterministically: magazines are compared in
// creation order and a later magazine replaces the leader only on a
// strictly greater count, so the first-created of a tied set wins.
func (r *Registry) TopPublisher() (*Magazine, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.articles) == 0 {
		return nil, false
	}

	counts := make(map[*Magazine]int, len(r.magazines))
	for _, article := range r.articles {
		counts[article.magazine]++
	}

	var top *Magazine
	best := 0
	for _, magazine := range r.magazines {
		if c := counts[magazine]; c > best {
			top, best = magazine, c
		}
	}
	return top, top != nil
}

// articlesByAuthor returns the author's articles in creation order.
func (r *Registry) articlesByAuthor(author *Author) []*Article {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []*Article
	for _, article := range r.articles {
		if article.author == author {
			out = append(out, article)
		}
	}
	return out
}

// articlesByMagazine returns the magazine's articles in creation order.
func (r *Registry) articlesByMagazine(magazine *Magazine) []*Article {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []*Article
	for _, article := range r.articles {
		if article.magazine == magazine {
			out = append(out, article)
		}
	}
	return out
}
