package batch

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// ReadYAML decodes a trial file of the form
//
//	defaults:
//	  fc: 4000
//	  fy: 60000
//	  Es: 29000000
//	  cover: 2.5
//	trials:
//	  - name: B1
//	    b: 12
//	    h: 24
//	    As: 3.0
func ReadYAML(r io.Reader) (*File, error) {
	var f File
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("trial file is empty")
		}
		return nil, fmt.Errorf("decoding trial file: %w", err)
	}
	if len(f.Trials) == 0 {
		return nil, fmt.Errorf("trial file has no trials")
	}
	return &f, nil
}
