package types

// VersionResponse is served at the API root.
type VersionResponse struct {
	Version string `json:"version"`
	Github  string `json:"github"`
	DocsURL string `json:"docsUrl,omitempty"`
}

// PairRequest addresses a single pair by path.
type PairRequest struct {
	AmountAsset string `path:"amountAsset"`
	PriceAsset  string `path:"priceAsset"`
}

// PairsRequest carries the batch lookup form, entries as
// "amountAsset/priceAsset".
type PairsRequest struct {
	Pairs []string `form:"pairs"`
}

// PairData is the resolved statistics payload. Decimal values serialise as
// strings to stay digit-exact; VolumeAmur is null when the pair has no known
// relation to the reference asset.
type PairData struct {
	FirstPrice string  `json:"firstPrice"`
	LastPrice  string  `json:"lastPrice"`
	Volume     string  `json:"volume"`
	VolumeAmur *string `json:"volumeAmur"`
}

// PairEntry is one slot of a batch response: a pair envelope with null data
// for unknown pairs, or an error envelope when resolution failed for that
// slot alone.
type PairEntry struct {
	Type    string    `json:"__type"`
	Data    *PairData `json:"data"`
	Message string    `json:"message,omitempty"`
}

// ListResponse wraps batch results in the list envelope, index-aligned with
// the requested pairs.
type ListResponse struct {
	Type string      `json:"__type"`
	Data []PairEntry `json:"data"`
}

// ErrorResponse is the structured payload for request-level failures.
type ErrorResponse struct {
	Type    string `json:"__type"`
	Message string `json:"message"`
}
