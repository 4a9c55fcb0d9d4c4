package dataset

import (
	"fmt"

	"github.com/pbanos/sapling/feature"
	"github.com/pkg/errors"
)

type sample struct {
	t   *table
	row int
}

type mapSample struct {
	featureValues map[string]string
}

/*
NewSample takes a map of feature string names to values and returns a
sample holding them. Its ValueFor method returns an error for features
without a value.
*/
func NewSample(featureValues map[string]string) feature.Sample {
	return &mapSample{featureValues}
}

func (s *sample) ValueFor(f feature.Feature) (string, error) {
	c, ok := s.t.columns[f.Name()]
	if !ok {
		return "", errors.Errorf("sample has no value for feature %s", f.Name())
	}
	return s.t.rows[s.row][c], nil
}

func (s *sample) String() string {
	return fmt.Sprintf("%v", s.t.rows[s.row])
}

func (s *mapSample) ValueFor(f feature.Feature) (string, error) {
	v, ok := s.featureValues[f.Name()]
	if !ok {
		return "", errors.Errorf("sample has no value for feature %s", f.Name())
	}
	return v, nil
}

func (s *mapSample) String() string {
	return fmt.Sprintf("[%v]", s.featureValues)
}
