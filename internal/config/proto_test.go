package config

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/types/known/structpb"
)

func TestToProto(t *testing.T) {
	s, err := Default().ToProto()
	require.NoError(t, err)
	require.NotNil(t, s)

	fields := s.GetFields()
	assert.Len(t, fields, 5)
	assert.Equal(t, "black", fields[KeyFontColor].GetStringValue())
	assert.Equal(t, "20px", fields[KeyFontSize].GetStringValue())
	assert.Equal(t, DefaultFontFamily, fields[KeyFontFamily].GetStringValue())
	assert.True(t, fields[KeyComprehension].GetBoolValue())
	assert.True(t, fields[KeyCorrectiveFeedback].GetBoolValue())
}

func TestProtoRoundTrip(t *testing.T) {
	original := Default()
	original.FontColor = "#112233"
	original.CorrectiveFeedback = false

	s, err := original.ToProto()
	require.NoError(t, err)

	got, err := FromProto(s)
	require.NoError(t, err)
	assert.Equal(t, original, got)
}

func TestFromProto_Errors(t *testing.T) {
	t.Run("nil", func(t *testing.T) {
		_, err := FromProto(nil)
		assert.ErrorIs(t, err, ErrNilStruct)
	})

	t.Run("number where bool expected", func(t *testing.T) {
		s, err := Default().ToProto()
		require.NoError(t, err)
		s.Fields[KeyComprehension] = structpb.NewNumberValue(1)

		_, err = FromProto(s)
		assert.ErrorIs(t, err, ErrInvalidType)
	})
}

func TestToProtoJSON(t *testing.T) {
	data, err := Default().ToProtoJSON()
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))

	got, err := FromMap(decoded)
	require.NoError(t, err)
	assert.Equal(t, Default(), got)
}
