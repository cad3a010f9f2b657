package model

// ProbeResult is the parsed metadata from the pre-flight probe. It is used
// once, before the real download starts, and not persisted.
type ProbeResult struct {
	Title     string
	ItemCount int // 1 for a single video, len(entries) for a collection
}

// IsMultiItem returns true if the probed resource is a collection of more
// than one item, which requires user confirmation before downloading.
func (p *ProbeResult) IsMultiItem() bool {
	return p.ItemCount > 1
}
