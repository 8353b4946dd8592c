package transform

// Preset pipelines. Pure compositions of the built-ins; no extra logic.

// NewCleanupPipeline removes duplicate and empty statutes and normalizes
// ids.
func NewCleanupPipeline() *Pipeline {
	return NewPipeline().
		Add(NewDeduplicate()).
		Add(NewRemoveEmpty()).
		Add(NewNormalizeIDs())
}

// NewOptimizationPipeline simplifies conditions and removes empty statutes.
func NewOptimizationPipeline() *Pipeline {
	return NewPipeline().
		Add(NewSimplify()).
		Add(NewRemoveEmpty())
}

// NewNormalizationPipeline normalizes ids and orders statutes by
// dependencies.
func NewNormalizationPipeline() *Pipeline {
	return NewPipeline().
		Add(NewNormalizeIDs()).
		Add(NewSortByDependencies())
}

// NewFullPipeline runs every built-in in cleanup order.
func NewFullPipeline() *Pipeline {
	return NewPipeline().
		Add(NewDeduplicate()).
		Add(NewSimplify()).
		Add(NewRemoveEmpty()).
		Add(NewNormalizeIDs()).
		Add(NewSortByDependencies())
}

// NewQuickFixPipeline deduplicates and simplifies, nothing else.
func NewQuickFixPipeline() *Pipeline {
	return NewPipeline().
		Add(NewDeduplicate()).
		Add(NewSimplify())
}
