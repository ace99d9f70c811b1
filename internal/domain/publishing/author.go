package publishing

// Author represents a writer who contributes articles to magazines.
// Identity is referential: two authors with the same name are distinct
// entities. The name is write-once.
type Author struct {
	registry *Registry
	seq      int64
	name     string
	nameSet  bool
}

// Name returns the author's name.
func (a *Author) Name() string {
	return a.name
}

// Sequence returns the registry-assigned creation sequence number.
func (a *Author) Sequence() int64 {
	return a.seq
}

// SetName assigns the author's name. The field is write-once: the first
// successful assignment is permanent and every later attempt is a silent
// no-op that returns nil. A first attempt with an empty name fails with a
// ValidationError and leaves the field unset.
func (a *Author) SetName(name string) error {
	if a.nameSet {
		return nil
	}
	if err := validateNonEmpty("name", name); err != nil {
		return err
	}
	a.name = name
	a.nameSet = true
	return nil
}

// Articles returns all articles written by this author, in creation order.
func (a *Author) Articles() []*Article {
	if a.registry == nil {
		return nil
	}
	return a.registry.articlesByAuthor(a)
}

// Magazines returns the magazines this author has contributed to,
// de-duplicated. Order is first contribution first.
func (a *Author) Magazines() []*Magazine {
	var out []*Magazine
	seen := make(map[*Magazine]bool)
	for _, article := range a.Articles() {
		if !seen[article.magazine] {
			seen[article.magazine] = true
			out = append(out, article.magazine)
		}
	}
	return out
}

// TopicAreas returns the de-duplicated categories of the magazines this
// author has contributed to. The second return value is false when the
// author has no articles; that is distinct from an empty result set.
func (a *Author) TopicAreas() ([]string, bool) {
	articles := a.Articles()
	if len(articles) == 0 {
		return nil, false
	}

	var out []string
	seen := make(map[string]bool)
	for _, article := range articles {
		category := article.magazine.Category()
		if !seen[category] {
			seen[category] = true
			out = append(out, category)
		}
	}
	return out, true
}

// AddArticle constructs a new article by this author for the given
// magazine, with the same validation and registration as
// Registry.NewArticle. Returns the new article or the validation error.
func (a *Author) AddArticle(magazine *Magazine, title string) (*Article, error) {
	if a.registry == nil {
		return nil, &ValidationError{Field: "author", Message: "is not registered"}
	}
	return a.registry.NewArticle(a, magazine, title)
}
