package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNumericString_UnmarshalJSON(t *testing.T) {
	cases := []struct {
		raw   string
		want  NumericString
		blank bool
	}{
		{`"1500000"`, "1500000", false},
		{`1500000`, "1500000", false},
		{`54.7`, "54.7", false},
		{`"  "`, "  ", true},
		{`""`, "", true},
		{`null`, "", true},
	}
	for _, tc := range cases {
		t.Run(tc.raw, func(t *testing.T) {
			var got struct {
				Price NumericString `json:"price"`
			}
			require.NoError(t, json.Unmarshal([]byte(`{"price":`+tc.raw+`}`), &got))
			require.Equal(t, tc.want, got.Price)
			require.Equal(t, tc.blank, got.Price.IsBlank())
		})
	}
}

func TestNumericString_RejectsObjects(t *testing.T) {
	var n NumericString
	require.Error(t, json.Unmarshal([]byte(`{"a":1}`), &n))
	require.Error(t, json.Unmarshal([]byte(`true`), &n))
}

func TestHouseRequest_OmittedPriceIsBlank(t *testing.T) {
	var req HouseRequest
	require.NoError(t, json.Unmarshal([]byte(`{"name":"Дом","phones":[1,2]}`), &req))
	require.True(t, req.Price.IsBlank())
	require.Equal(t, []uint64{1, 2}, req.Phones)
	require.Nil(t, req.Type)
}
