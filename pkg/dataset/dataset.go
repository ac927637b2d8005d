// Package dataset loads and validates observation input for charting.
//
// The input format is a JSON object with an optional title, optional units
// and one entry per series:
//
//	{
//	  "title": "Response Times",
//	  "units": "ms",
//	  "data": [
//	    {"key": "api-a", "values": [48, 52, 57, 64, 72]},
//	    {"key": "api-b", "values": [30, 41, 45, 50, 98]}
//	  ]
//	}
//
// Series order in the file is preserved through layout and rendering.
package dataset

import (
	"encoding/json"
	"io"
	"math"
	"os"

	"github.com/boxkit/boxkit/pkg/errors"
	"github.com/boxkit/boxkit/pkg/stat"
)

// Dataset is a validated collection of named observation series plus the
// chart captions that travel with them.
type Dataset struct {
	Title  string
	Units  string
	Series []stat.Series
}

type fileFormat struct {
	Title string       `json:"title"`
	Units string       `json:"units"`
	Data  []fileSeries `json:"data"`
}

type fileSeries struct {
	Key    string    `json:"key"`
	Values []float64 `json:"values"`
}

// ReadJSON decodes and validates a dataset from r.
//
// ReadJSON returns an error if:
//   - the JSON is malformed (INVALID_FORMAT)
//   - the data array is missing or empty (NO_DATA)
//   - a series has an empty key, a duplicate key, no values, or a
//     non-finite value (INVALID_SERIES)
//
// The returned dataset is independent of r. ReadJSON does not close r.
func ReadJSON(r io.Reader) (Dataset, error) {
	var raw fileFormat
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return Dataset{}, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode dataset")
	}

	if len(raw.Data) == 0 {
		return Dataset{}, errors.New(errors.ErrCodeNoData, "dataset contains no series")
	}

	ds := Dataset{Title: raw.Title, Units: raw.Units, Series: make([]stat.Series, 0, len(raw.Data))}
	seen := make(map[string]struct{}, len(raw.Data))

	for i, s := range raw.Data {
		if err := errors.ValidateSeriesKey(s.Key); err != nil {
			return Dataset{}, errors.Wrap(errors.ErrCodeInvalidSeries, err, "series %d", i)
		}
		if _, dup := seen[s.Key]; dup {
			return Dataset{}, errors.New(errors.ErrCodeInvalidSeries, "duplicate series key %q", s.Key)
		}
		seen[s.Key] = struct{}{}

		if len(s.Values) == 0 {
			return Dataset{}, errors.New(errors.ErrCodeInvalidSeries, "series %q has no values", s.Key)
		}
		for _, v := range s.Values {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return Dataset{}, errors.New(errors.ErrCodeInvalidSeries, "series %q contains a non-finite value", s.Key)
			}
		}

		ds.Series = append(ds.Series, stat.Series{Name: s.Key, Values: s.Values})
	}

	return ds, nil
}

// Load reads a dataset file at path and returns the decoded dataset.
//
// Load opens the file, decodes it using [ReadJSON], and closes the file.
// A missing or unreadable file yields a FILE_NOT_FOUND error carrying the
// path; decoding errors are the same as for [ReadJSON].
func Load(path string) (Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return Dataset{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
	}
	defer f.Close()
	return ReadJSON(f)
}
