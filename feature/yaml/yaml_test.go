package yaml

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	"github.com/pbanos/sapling/feature"
)

const metadata = `
features:
  - name: Outlook
    values: [Sunny, Overcast, Rain]
  - name: Humidity
    type: ordered
    values: ["65", "70", "80"]
  - name: Age
    type: ordered
  - name: Play
    type: nominal
    values: [Yes, No]
`

func TestReadFeatures(t *testing.T) {
	features, err := ReadFeatures([]byte(metadata))
	require.NoError(t, err)
	require.Len(t, features, 4)

	require.Equal(t, "Outlook", features[0].Name())
	require.Equal(t, feature.Nominal, features[0].Kind())
	require.Equal(t, []string{"Sunny", "Overcast", "Rain"}, features[0].Values())

	require.Equal(t, feature.Ordered, features[1].Kind())
	require.Equal(t, []string{"65", "70", "80"}, features[1].Values())

	require.Equal(t, feature.Ordered, features[2].Kind())
	require.Empty(t, features[2].Values())

	require.Equal(t, []string{"Yes", "No"}, features[3].Values(), "yes/no stay strings")
}

func TestReadFeaturesErrors(t *testing.T) {
	testCases := map[string]string{
		"not yaml":     "features: [",
		"no features":  "features: []",
		"missing name": "features:\n  - type: nominal\n",
		"duplicate":    "features:\n  - name: A\n  - name: A\n",
		"bad type":     "features:\n  - name: A\n    type: numeric\n",
	}
	for name, md := range testCases {
		_, err := ReadFeatures([]byte(md))
		require.Error(t, err, name)
	}
}

func TestReadFeaturesFromFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/metadata.yml", []byte(metadata), 0644))

	features, err := ReadFeaturesFromFile(fs, "/metadata.yml")
	require.NoError(t, err)
	require.Len(t, features, 4)

	_, err = ReadFeaturesFromFile(fs, "/missing.yml")
	require.Error(t, err)
}
