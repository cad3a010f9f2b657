package download

import (
	"bytes"
	"encoding/json"

	"github.com/pkg/errors"

	"github.com/ytget/ytdlp-gui/internal/model"
)

// probeRecord mirrors the fields of interest in the downloader's
// --dump-json output. Entries is present only for collections.
type probeRecord struct {
	Title   string            `json:"title"`
	Entries []json.RawMessage `json:"entries"`
}

// ParseProbeOutput decodes the metadata record dumped by the pre-flight
// probe. The probe emits one JSON record per line; only the first record
// is decoded and trailing data is ignored.
func ParseProbeOutput(data []byte) (*model.ProbeResult, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	var rec probeRecord
	if err := dec.Decode(&rec); err != nil {
		return nil, errors.Wrap(err, "failed to decode probe metadata")
	}

	count := 1
	if rec.Entries != nil {
		count = len(rec.Entries)
	}

	return &model.ProbeResult{
		Title:     rec.Title,
		ItemCount: count,
	}, nil
}
