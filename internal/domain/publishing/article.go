package publishing

// Article is the join entity between an Author and a Magazine. The author
// and magazine references are fixed at construction; the title is
// write-once. Articles hold non-owning back-references for traversal, not
// lifetime control.
type Article struct {
	registry *Registry
	seq      int64
	author   *Author
	magazine *Magazine
	title    string
	titleSet bool
}

// Author returns the author who wrote the article.
func (a *Article) Author() *Author {
	return a.author
}

// Magazine returns the magazine the article was published in.
func (a *Article) Magazine() *Magazine {
	return a.magazine
}

// Title returns the article's title.
func (a *Article) Title() string {
	return a.title
}

// Sequence returns the registry-assigned creation sequence number.
func (a *Article) Sequence() int64 {
	return a.seq
}

// SetTitle assigns the article's title. The field is write-once: the first
// successful assignment is permanent and every later attempt is a silent
// no-op that returns nil. A first attempt outside 5 to 50 characters fails
// with a ValidationError and leaves the field unset.
func (a *Article) SetTitle(title string) error {
	if a.titleSet {
		return nil
	}
	if err := validateLengthRange("title", title, minArticleTitleLen, maxArticleTitleLen); err != nil {
		return err
	}
	a.title = title
	a.titleSet = true
	return nil
}
