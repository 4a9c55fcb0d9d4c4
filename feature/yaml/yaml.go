/*
Package yaml provides methods to parse feature.Feature specifications
also known as metadata, from YAML documents.
*/
package yaml

import (
	"github.com/pbanos/sapling/feature"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
	yaml "gopkg.in/yaml.v2"
)

const (
	nominalType = "nominal"
	orderedType = "ordered"
)

type declaration struct {
	Name   string   `yaml:"name"`
	Type   string   `yaml:"type"`
	Values []string `yaml:"values"`
}

/*
ReadFeatures takes a slice of bytes with a feature specification in YML and
returns a slice of features parsed from it or an error.
The YML is expected to be an object containing a features property. The value for this
should be a list of objects, one per feature, with:
  - a name property (required),
  - a type property with either 'nominal' (the default) or 'ordered',
  - a values property with the list of values the feature takes, sorted
    for ordered features. Without it, the values are taken from the data.

Features are returned in the order they are declared.
*/
func ReadFeatures(md []byte) ([]feature.Feature, error) {
	metadata := struct {
		Features []declaration `yaml:"features"`
	}{}
	err := yaml.Unmarshal(md, &metadata)
	if err != nil {
		return nil, errors.Wrap(err, "parsing yml features")
	}
	if len(metadata.Features) == 0 {
		return nil, errors.New("metadata file has no feature information")
	}
	features := make([]feature.Feature, 0, len(metadata.Features))
	seen := make(map[string]bool, len(metadata.Features))
	for i, d := range metadata.Features {
		if d.Name == "" {
			return nil, errors.Errorf("feature declaration %d has no name", i)
		}
		if seen[d.Name] {
			return nil, errors.Errorf("feature %s declared more than once", d.Name)
		}
		seen[d.Name] = true
		switch d.Type {
		case "", nominalType:
			features = append(features, feature.NewNominalFeature(d.Name, d.Values))
		case orderedType:
			features = append(features, feature.NewOrderedFeature(d.Name, d.Values))
		default:
			return nil, errors.Errorf("invalid type %q for feature %s", d.Type, d.Name)
		}
	}
	return features, nil
}

/*
ReadFeaturesFromFile takes a filesystem and a filepath string, reads its contents and uses
ReadFeatures to parse it and return a slice of parsed features or an error.
If the file indicated by the filepath cannot be opened for reading an error
will be returned.
*/
func ReadFeaturesFromFile(fs afero.Fs, filepath string) ([]feature.Feature, error) {
	md, err := afero.ReadFile(fs, filepath)
	if err != nil {
		return nil, errors.Wrapf(err, "reading features yml file %s", filepath)
	}
	features, err := ReadFeatures(md)
	if err != nil {
		err = errors.Wrapf(err, "parsing features yml file %s", filepath)
	}
	return features, err
}
