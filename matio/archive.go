// Package matio reads and writes named dense-matrix archives.
//
// An archive is a flat file holding a set of matrices addressed by field
// name — the shape the solver test fixtures use for their (a, u, v)
// triples. Matrices round-trip exactly: entries are stored as raw float64
// values, so a loaded matrix is bitwise-equal to the saved one.
//
// ⚙️ Usage:
//
//	err := matio.Save(path, map[string]*mat.Dense{"a": a, "u": u, "v": v})
//	a, u, v, err := matio.LoadTriple(path)
//
// The format is gob-encoded (rows, cols, row-major data) records; it is a
// fixture convenience, not an interchange format.
package matio

import (
	"encoding/gob"
	"errors"
	"fmt"
	"os"

	"gonum.org/v1/gonum/mat"
)

var (
	// ErrFieldMissing indicates a requested field name is absent from the archive.
	ErrFieldMissing = errors.New("matio: field missing from archive")

	// ErrBadRecord indicates a record whose data length disagrees with its shape.
	ErrBadRecord = errors.New("matio: corrupt matrix record")
)

// record is the on-disk form of one matrix.
type record struct {
	Rows, Cols int
	Data       []float64
}

// Save writes the named matrices to path, truncating any existing file.
// Field names are preserved verbatim; iteration order does not matter
// because the archive is a map at both ends.
func Save(path string, mats map[string]*mat.Dense) error {
	recs := make(map[string]record, len(mats))
	for name, m := range mats {
		if m == nil {
			return fmt.Errorf("matio: Save %q: %w", name, ErrBadRecord)
		}
		r, c := m.Dims()
		data := make([]float64, r*c)
		raw := m.RawMatrix()
		for i := 0; i < r; i++ {
			copy(data[i*c:(i+1)*c], raw.Data[i*raw.Stride:i*raw.Stride+c])
		}
		recs[name] = record{Rows: r, Cols: c, Data: data}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("matio: Save: %w", err)
	}
	if err = gob.NewEncoder(f).Encode(recs); err != nil {
		f.Close()

		return fmt.Errorf("matio: Save: %w", err)
	}

	return f.Close()
}

// Load reads every matrix in the archive at path.
func Load(path string) (map[string]*mat.Dense, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("matio: Load: %w", err)
	}
	defer f.Close()

	var recs map[string]record
	if err = gob.NewDecoder(f).Decode(&recs); err != nil {
		return nil, fmt.Errorf("matio: Load: %w", err)
	}

	mats := make(map[string]*mat.Dense, len(recs))
	for name, rec := range recs {
		if rec.Rows <= 0 || rec.Cols <= 0 || len(rec.Data) != rec.Rows*rec.Cols {
			return nil, fmt.Errorf("matio: Load %q: %w", name, ErrBadRecord)
		}
		mats[name] = mat.NewDense(rec.Rows, rec.Cols, rec.Data)
	}

	return mats, nil
}

// LoadTriple reads the conventional factorization fixture fields "a", "u"
// and "v" from the archive at path. A missing field surfaces
// ErrFieldMissing naming the field.
func LoadTriple(path string) (a, u, v *mat.Dense, err error) {
	mats, err := Load(path)
	if err != nil {
		return nil, nil, nil, err
	}
	for _, name := range []string{"a", "u", "v"} {
		if _, ok := mats[name]; !ok {
			return nil, nil, nil, fmt.Errorf("matio: LoadTriple %q: %w", name, ErrFieldMissing)
		}
	}

	return mats["a"], mats["u"], mats["v"], nil
}
