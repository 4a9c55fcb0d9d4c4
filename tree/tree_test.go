package tree_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pbanos/sapling"
	"github.com/pbanos/sapling/dataset"
	"github.com/pbanos/sapling/feature"
	"github.com/pbanos/sapling/tree"
)

func tennis(t *testing.T) dataset.Dataset {
	d, err := dataset.New([]feature.Feature{
		feature.NewNominalFeature("Outlook", []string{"Sunny", "Overcast", "Rain"}),
		feature.NewNominalFeature("Humidity", []string{"High", "Normal"}),
		feature.NewNominalFeature("Windy", []string{"False", "True"}),
		feature.NewNominalFeature("Play", []string{"Yes", "No"}),
	}, [][]string{
		{"Sunny", "High", "False", "No"},
		{"Sunny", "High", "True", "No"},
		{"Overcast", "High", "False", "Yes"},
		{"Rain", "High", "False", "Yes"},
		{"Rain", "Normal", "False", "Yes"},
		{"Rain", "Normal", "True", "No"},
		{"Overcast", "Normal", "True", "Yes"},
		{"Sunny", "High", "False", "No"},
		{"Sunny", "Normal", "False", "Yes"},
		{"Rain", "Normal", "False", "Yes"},
		{"Sunny", "Normal", "True", "Yes"},
		{"Overcast", "High", "True", "Yes"},
		{"Overcast", "Normal", "False", "Yes"},
		{"Rain", "High", "True", "No"},
	})
	require.NoError(t, err)
	return d
}

func humidity(t *testing.T) dataset.Dataset {
	d, err := dataset.New([]feature.Feature{
		feature.NewOrderedFeature("Humidity", []string{"65", "70", "80", "90"}),
		feature.NewNominalFeature("Play", []string{"Yes", "No"}),
	}, [][]string{
		{"65", "Yes"},
		{"70", "Yes"},
		{"80", "No"},
		{"90", "No"},
	})
	require.NoError(t, err)
	return d
}

func grow(t *testing.T, d dataset.Dataset) *tree.Tree {
	tr, err := sapling.Grow(d)
	require.NoError(t, err)
	return tr
}

func TestIndent(t *testing.T) {
	require.Equal(t, "", tree.Indent(0))
	require.Equal(t, "", tree.Indent(-3))
	require.Equal(t, "    ", tree.Indent(4))
}

func TestRenderLeaf(t *testing.T) {
	out, err := tree.Render(tree.NewLeaf(nil, "Play", "Yes"), 2)
	require.NoError(t, err)
	require.Equal(t, "  Play = Yes", out)
}

func TestRenderChildlessBranch(t *testing.T) {
	_, err := tree.Render(tree.NewBranch(nil, nil), 0)
	require.True(t, errors.Is(err, tree.ErrRenderContract))

	var nilTree *tree.Tree
	_, err = nilTree.Render()
	require.True(t, errors.Is(err, tree.ErrRenderContract))
	require.Contains(t, nilTree.String(), "ERROR: ")
}

func TestRenderNested(t *testing.T) {
	tr := grow(t, humidity(t))
	out, err := tree.Render(tr.Root, 2)
	require.NoError(t, err)
	require.Equal(t, "  if (Humidity < 80) {\n    Play = Yes\n  }\n  else if (Humidity >= 80) {\n    Play = No\n  }", out)
	require.Equal(t, "if (Humidity < 80) {\n  Play = Yes\n}\nelse if (Humidity >= 80) {\n  Play = No\n}", tr.String())
}

func TestClassify(t *testing.T) {
	tr := grow(t, tennis(t))
	testCases := []struct {
		values map[string]string
		class  string
	}{
		{map[string]string{"Outlook": "Sunny", "Humidity": "High", "Windy": "False"}, "No"},
		{map[string]string{"Outlook": "Sunny", "Humidity": "Normal", "Windy": "True"}, "Yes"},
		{map[string]string{"Outlook": "Overcast"}, "Yes"},
		{map[string]string{"Outlook": "Rain", "Humidity": "High", "Windy": "False"}, "Yes"},
		{map[string]string{"Outlook": "Rain", "Windy": "True"}, "No"},
	}
	for _, tc := range testCases {
		class, err := tr.Classify(dataset.NewSample(tc.values))
		require.NoError(t, err, "classifying %v", tc.values)
		require.Equal(t, tc.class, class, "classifying %v", tc.values)
	}
}

func TestClassifyErrors(t *testing.T) {
	tr := grow(t, tennis(t))
	_, err := tr.Classify(dataset.NewSample(map[string]string{"Outlook": "Foggy"}))
	require.True(t, errors.Is(err, tree.ErrCannotClassify))

	_, err = tr.Classify(dataset.NewSample(map[string]string{"Humidity": "High"}))
	require.Error(t, err)
	require.False(t, errors.Is(err, tree.ErrCannotClassify), "missing values are not unclassifiable samples")
}

func TestClassifyUnseenOrderedValue(t *testing.T) {
	tr := grow(t, humidity(t))
	class, err := tr.Classify(dataset.NewSample(map[string]string{"Humidity": "75"}))
	require.NoError(t, err)
	require.Equal(t, "Yes", class)

	class, err = tr.Classify(dataset.NewSample(map[string]string{"Humidity": "100"}))
	require.NoError(t, err)
	require.Equal(t, "No", class)

	_, err = tr.Classify(dataset.NewSample(map[string]string{"Humidity": "damp"}))
	require.True(t, errors.Is(err, tree.ErrCannotClassify))
}

func TestTest(t *testing.T) {
	d := tennis(t)
	tr := grow(t, d)
	rate, failed, err := tr.Test(d)
	require.NoError(t, err)
	require.Equal(t, 1.0, rate)
	require.Equal(t, 0, failed)

	other, err := dataset.New([]feature.Feature{
		feature.NewNominalFeature("Outlook", nil),
		feature.NewNominalFeature("Play", nil),
	}, [][]string{
		{"Overcast", "No"},
		{"Foggy", "Yes"},
	})
	require.NoError(t, err)
	rate, failed, err = tr.Test(other)
	require.NoError(t, err)
	require.Equal(t, 0.0, rate)
	require.Equal(t, 1, failed)
}

func TestStats(t *testing.T) {
	tr := grow(t, tennis(t))
	require.Equal(t, tree.Stats{Nodes: 8, Leaves: 5, Depth: 2}, tr.Stats())
}

func TestTraverseOrder(t *testing.T) {
	tr := grow(t, tennis(t))
	var topdown, bottomup []string
	require.NoError(t, tr.Traverse(false, func(n *tree.Node, depth int) error {
		topdown = append(topdown, n.Condition())
		return nil
	}))
	require.NoError(t, tr.Traverse(true, func(n *tree.Node, depth int) error {
		bottomup = append(bottomup, n.Condition())
		return nil
	}))
	require.Equal(t, "", topdown[0])
	require.Equal(t, "", bottomup[len(bottomup)-1])
	require.Equal(t, "Humidity = High", bottomup[0])

	stop := errors.New("stop")
	visited := 0
	err := tr.Traverse(false, func(n *tree.Node, depth int) error {
		visited++
		if depth == 1 {
			return stop
		}
		return nil
	})
	require.Equal(t, stop, err)
	require.Equal(t, 2, visited)
}
