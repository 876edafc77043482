package gwt

import "github.com/jvlmdr/go-file/fileutil"

// SaveParams writes the family parameters to a file.
// The format is chosen by extension (.json, .gob).
func SaveParams(fname string, p Params) error {
	return fileutil.SaveExt(fname, p)
}

// LoadParams reads family parameters written by SaveParams.
func LoadParams(fname string) (Params, error) {
	var p Params
	if err := fileutil.LoadExt(fname, &p); err != nil {
		return Params{}, err
	}
	if err := p.validate(); err != nil {
		return Params{}, err
	}
	return p, nil
}

// Save writes the transform's family parameters to a file.
// Kernels are not persisted; they regenerate at first use after Load.
func (t *Transform) Save(fname string) error {
	return SaveParams(fname, t.params)
}

// Load creates a transform from parameters written by Save.
func Load(fname string) (*Transform, error) {
	p, err := LoadParams(fname)
	if err != nil {
		return nil, err
	}
	return New(p)
}
