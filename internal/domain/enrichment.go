package domain

// EnrichmentStats counts the outcome of a dictionary enrichment run.
type EnrichmentStats struct {
	Looked   int
	Enriched int
	NotFound int
	Failed   int
}
