package scenario

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// File is the on-disk layout of a scenario set.
//
//	scenarios:
//	  - name: equal/reflexive
//	    op: equal
//	    left:  {rows: 1, cols: 2, values: [1, 2]}
//	    right: {rows: 1, cols: 2, values: [1, 2]}
type File struct {
	Scenarios []Scenario `yaml:"scenarios"`
}

// Load decodes and validates a scenario set. Unknown keys, an empty set,
// invalid scenarios and duplicate names are all errors.
func Load(r io.Reader) (_ []Scenario, err error) {
	var f File

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	if err = dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.Wrap(ErrInvalid, "empty scenario document")
		}
		return nil, errors.Wrap(err, "unable to decode scenarios")
	}

	if len(f.Scenarios) == 0 {
		return nil, errors.Wrap(ErrInvalid, "no scenarios defined")
	}

	seen := make(map[string]struct{}, len(f.Scenarios))
	for _, s := range f.Scenarios {
		if err = s.Validate(); err != nil {
			return nil, err
		}

		if _, dup := seen[s.Name]; dup {
			return nil, errors.Wrapf(ErrInvalid, "duplicate scenario name %q", s.Name)
		}
		seen[s.Name] = struct{}{}
	}

	return f.Scenarios, nil
}

// LoadFile reads a scenario set from path.
func LoadFile(path string) (_ []Scenario, err error) {
	var (
		fh *os.File
	)

	if fh, err = os.Open(path); err != nil {
		return nil, errors.Wrapf(err, "unable to open scenario file %s", path)
	}
	defer fh.Close()

	s, err := Load(fh)
	if err != nil {
		return nil, errors.Wrapf(err, "scenario file %s", path)
	}

	return s, nil
}

// Encode writes scenarios in the layout Load accepts.
func Encode(w io.Writer, scenarios []Scenario) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)

	if err := enc.Encode(File{Scenarios: scenarios}); err != nil {
		return errors.Wrap(err, "unable to encode scenarios")
	}

	return errors.Wrap(enc.Close(), "unable to flush scenarios")
}
