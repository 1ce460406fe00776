package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/gorcv/internal/model"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name        string
		lw, tw, hw  float64
		wantType    model.ElementType
		wantSection string
	}{
		{"long wall", 4000, 250, 12000, model.TypeWall, SectionWall},
		{"squat wall", 4000, 250, 6000, model.TypeWallPier, SectionWallPier},
		{"aspect exactly 4 is a wall", 1000, 250, 3000, model.TypeWall, SectionWall},
		{"stocky column", 600, 600, 3000, model.TypeColumn, SectionColumn},
		{"thin short section reclassified to wall", 1000, 300, 1500, model.TypeWallPier, SectionWallPier},
		{"tw/lw exactly 0.4 stays a column", 1000, 400, 3000, model.TypeColumn, SectionColumn},
		{"PFel-A5-1", 640, 260, 3350, model.TypeColumn, SectionColumn},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := &model.Element{Name: tt.name, Lw: tt.lw, Tw: tt.tw, Hw: tt.hw}
			got, err := Classify(e)
			require.NoError(t, err)
			assert.Equal(t, tt.wantType, got.Type)
			assert.Equal(t, tt.wantSection, got.Section)
		})
	}
}

func TestClassifyRecordsRatios(t *testing.T) {
	e := &model.Element{Name: "PFel-A5-1", Lw: 640, Tw: 260, Hw: 3350}
	got, err := Classify(e)
	require.NoError(t, err)

	assert.Equal(t, model.TypeColumn, got.Type)
	assert.Equal(t, "22.5", got.Section)
	assert.InDelta(t, 2.46, got.LwTw, 0.005)
	assert.InDelta(t, 0.406, got.TwLw, 0.0005)
	assert.InDelta(t, 5.23, got.HwLw, 0.005)
}

func TestClassifyRejectsBadGeometry(t *testing.T) {
	for _, e := range []*model.Element{
		{Lw: 0, Tw: 250, Hw: 3000},
		{Lw: 1000, Tw: -1, Hw: 3000},
		{Lw: 1000, Tw: 250, Hw: 0},
	} {
		_, err := Classify(e)
		require.Error(t, err)
		var ie *model.InputError
		assert.ErrorAs(t, err, &ie)
	}
}
