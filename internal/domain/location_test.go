package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeLocations(t *testing.T) {
	lhrStatic := Location{IATACode: "LHR", Name: "Heathrow", Address: LocationAddress{CityName: "LONDON"}, Ranking: 900}
	lhrLive := Location{IATACode: "LHR", Name: "London Heathrow Airport", Address: LocationAddress{CityName: "London"}}
	jfk := Location{IATACode: "JFK", Name: "John F Kennedy Intl"}
	cdg := Location{IATACode: "CDG", Name: "Charles de Gaulle"}

	tests := []struct {
		name      string
		lists     [][]Location
		wantCodes []string
	}{
		{
			name:      "duplicate across lists keeps first occurrence",
			lists:     [][]Location{{lhrStatic, jfk}, {lhrLive}},
			wantCodes: []string{"LHR", "JFK"},
		},
		{
			name:      "precedence follows concatenation order",
			lists:     [][]Location{{lhrLive}, {lhrStatic, cdg}},
			wantCodes: []string{"LHR", "CDG"},
		},
		{
			name:      "duplicate within a single list",
			lists:     [][]Location{{jfk, jfk, cdg}},
			wantCodes: []string{"JFK", "CDG"},
		},
		{
			name:      "empty input",
			lists:     nil,
			wantCodes: []string{},
		},
		{
			name:      "empty lists are skipped",
			lists:     [][]Location{{}, {cdg}, {}},
			wantCodes: []string{"CDG"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			merged := MergeLocations(tt.lists...)

			codes := make([]string, 0, len(merged))
			for _, loc := range merged {
				codes = append(codes, loc.IATACode)
			}
			assert.Equal(t, tt.wantCodes, codes)
		})
	}
}

func TestMergeLocations_FirstEntryWins(t *testing.T) {
	first := Location{IATACode: "LHR", Name: "Heathrow", Ranking: 900}
	second := Location{IATACode: "LHR", Name: "London Heathrow Airport"}

	merged := MergeLocations([]Location{first}, []Location{second})

	require.Len(t, merged, 1)
	assert.Equal(t, "Heathrow", merged[0].Name)
	assert.Equal(t, 900, merged[0].Ranking)
}
