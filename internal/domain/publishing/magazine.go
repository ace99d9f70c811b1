package publishing

// Magazine represents a publication that articles appear in. Both name and
// category stay mutable for the magazine's lifetime and are re-validated
// on every assignment; a rejected assignment leaves the prior value intact.
type Magazine struct {
	registry *Registry
	seq      int64
	name     string
	category string
}

// Name returns the magazine's name.
func (m *Magazine) Name() string {
	if m.registry != nil {
		m.registry.mu.Lock()
		defer m.registry.mu.Unlock()
	}
	return m.name
}

// Category returns the magazine's category.
func (m *Magazine) Category() string {
	if m.registry != nil {
		m.registry.mu.Lock()
		defer m.registry.mu.Unlock()
	}
	return m.category
}

// Sequence returns the registry-assigned creation sequence number.
func (m *Magazine) Sequence() int64 {
	return m.seq
}

// SetName assigns the magazine's name. The name must be 2 to 16
// characters; on failure the prior name is kept and a ValidationError is
// returned.
func (m *Magazine) SetName(name string) error {
	if err := validateLengthRange("name", name, minMagazineNameLen, maxMagazineNameLen); err != nil {
		return err
	}
	if m.registry != nil {
		m.registry.mu.Lock()
		defer m.registry.mu.Unlock()
	}
	m.name = name
	return nil
}

// SetCategory assigns the magazine's category. The category must be
// non-empty; on failure the prior category is kept and a ValidationError
// is returned.
func (m *Magazine) SetCategory(category string) error {
	if err := validateNonEmpty("category", category); err != nil {
		return err
	}
	if m.registry != nil {
		m.registry.mu.Lock()
		defer m.registry.mu.Unlock()
	}
	m.category = category
	return nil
}

// Articles returns all articles published in this magazine, in creation
// order.
func (m *Magazine) Articles() []*Article {
	if m.registry == nil {
		return nil
	}
	return m.registry.articlesByMagazine(m)
}

// Contributors returns the authors who have written for this magazine,
// de-duplicated. Order is first contribution first.
func (m *Magazine) Contributors() []*Author {
	var out []*Author
	seen := make(map[*Author]bool)
	for _, article := range m.Articles() {
		if !seen[article.author] {
			seen[article.author] = true
			out = append(out, article.author)
		}
	}
	return out
}

// ArticleTitles returns the titles of this magazine's articles in creation
// order. The second return value is false when the magazine has no
// articles; that is distinct from an empty sequence.
func (m *Magazine) ArticleTitles() ([]string, bool) {
	articles := m.Articles()
	if len(articles) == 0 {
		return nil, false
	}

	titles := make([]string, 0, len(articles))
	for _, article := range articles {
		titles = append(titles, article.title)
	}
	return titles, true
}

// ContributingAuthors returns the authors with a strict count of more than
// two articles in this magazine, ordered by first contribution. The second
// return value is false when no author qualifies, including when the
// magazine has no articles at all.
func (m *Magazine) ContributingAuthors() ([]*Author, bool) {
	counts := make(map[*Author]int)
	var order []*Author
	for _, article := range m.Articles() {
		if counts[article.author] == 0 {
			order = append(order, article.author)
		}
		counts[article.author]++
	}

	var out []*Author
	for _, author := range order {
		if counts[author] > 2 {
			out = append(out, author)
		}
	}
	if len(out) == 0 {
		return nil, false
	}
	return out, true
}
