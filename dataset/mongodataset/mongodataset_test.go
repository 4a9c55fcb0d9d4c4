package mongodataset

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/mgo.v2/bson"
)

func TestIsSource(t *testing.T) {
	require.True(t, IsSource("mongodb://localhost/weather"))
	require.False(t, IsSource("weather.db"))
	require.False(t, IsSource("postgres://localhost/weather"))
}

func TestRecord(t *testing.T) {
	doc := bson.M{"_id": bson.NewObjectId(), "Outlook": "Sunny", "Humidity": 90, "Play": "No"}
	record, err := Record(doc, []string{"Outlook", "Humidity", "Play"})
	require.NoError(t, err)
	require.Equal(t, []string{"Sunny", "90", "No"}, record)

	_, err = Record(doc, []string{"Windy"})
	require.Error(t, err)
	_, err = Record(bson.M{"Windy": nil}, []string{"Windy"})
	require.Error(t, err)
}

func TestValidFieldName(t *testing.T) {
	require.NoError(t, validFieldName("Outlook"))
	require.Error(t, validFieldName("_id"))
	require.Error(t, validFieldName("a.b"))
	require.Error(t, validFieldName("$set"))
}

func TestOpenRequiresSchema(t *testing.T) {
	_, err := Open(context.Background(), "mongodb://localhost/weather", "", nil, "")
	require.Error(t, err)
}
