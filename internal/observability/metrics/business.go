package metrics

// RecordAuthorRegistered records a successful author registration.
func RecordAuthorRegistered() {
	AuthorsRegisteredTotal.Inc()
}

// RecordMagazineRegistered records a successful magazine registration.
func RecordMagazineRegistered() {
	MagazinesRegisteredTotal.Inc()
}

// RecordArticlePublished records a successfully published article.
// The category label is the publishing magazine's category at publish time.
func RecordArticlePublished(category string) {
	ArticlesPublishedTotal.WithLabelValues(category).Inc()
}

// RecordValidationFailure records a rejected field assignment.
// Status of the entity is unchanged when this is recorded; the label is the
// field that failed validation.
func RecordValidationFailure(field string) {
	ValidationFailuresTotal.WithLabelValues(field).Inc()
}
