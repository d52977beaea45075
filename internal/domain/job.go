package domain

// CatalogPair is one configured catalog directory mapping. A pair whose
// destination parsed empty stays in the list and is skipped at schedule
// time.
type CatalogPair struct {
	Source string
	Dest   string
}

// FolderSyncJob describes a single mirror invocation. Constructed per
// invocation, never persisted.
type FolderSyncJob struct {
	Source string
	Dest   string
	Label  string
}

// RunOptions are the command-line switches for one run. Immutable after
// flag parsing.
type RunOptions struct {
	Year        string
	DryRun      bool
	SkipCatalog bool
}
