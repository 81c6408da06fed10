package catalog

// Merge folds the manifest catalog into the catalog read from disk and
// returns the working catalog. existing may be nil when no catalog file was
// found. Entries already on disk keep their order and new ones follow; no
// entry from either side is dropped. The label comes from the manifest and
// PreviousCount from existing.
func Merge(manifest, existing *Catalog) *Catalog {
	if existing == nil {
		manifest.PreviousCount = 0
		manifest.Footer = nil
		return manifest
	}

	existing.Label = manifest.Label
	for key, entries := range manifest.Categories {
		if _, ok := existing.Categories[key]; ok {
			for _, e := range entries {
				existing.AppendUnique(key, e)
			}
			continue
		}
		existing.Categories[key] = append([]string(nil), entries...)
	}
	return existing
}
