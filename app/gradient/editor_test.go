package gradient

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func offsets(d Descriptor) []float64 {
	var res []float64
	for _, s := range d.Stops {
		res = append(res, s.Offset)
	}
	return res
}

func TestDefault(t *testing.T) {
	d := Default()
	assert.Equal(t, Linear, d.Type)
	assert.Equal(t, 0.0, d.Angle)
	assert.Equal(t, 100.0, d.Radius)
	require.Len(t, d.Stops, 2)
	assert.Equal(t, Stop{Color: "#63D0CD", Offset: 0, Opacity: 100}, d.Stops[0])
	assert.Equal(t, Stop{Color: "#4B3EFE", Offset: 100, Opacity: 100}, d.Stops[1])
	assert.Equal(t, "linear-gradient(0deg, rgba(99, 208, 205, 1) 0%, rgba(75, 62, 254, 1) 100%)", d.Fill)

	assert.Equal(t, d, OrDefault(nil))

	custom := SetAngle(Default(), 45)
	assert.Equal(t, custom, OrDefault(&custom))
}

func TestAddStop(t *testing.T) {
	d := Descriptor{
		Type: Linear,
		Stops: []Stop{
			{Color: "#000000", Offset: 0, Opacity: 100},
			{Color: "#FFFFFF", Offset: 100, Opacity: 100},
		},
		Radius: 100,
	}

	res, idx := AddStop(d, 50)
	require.Len(t, res.Stops, 3)
	assert.Equal(t, 1, idx)
	assert.Equal(t, Stop{Color: "#808080", Offset: 50, Opacity: 100}, res.Stops[1])
	assert.Equal(t, []float64{0, 50, 100}, offsets(res))
	assert.Equal(t, res.String(), res.Fill)
	assert.Len(t, d.Stops, 2, "input must not change")

	res, idx = AddStop(res, 150)
	assert.Equal(t, 3, idx)
	assert.Equal(t, []float64{0, 50, 100, 100}, offsets(res))
	assert.Equal(t, "#FFFFFF", res.Stops[3].Color)

	res, idx = AddStop(res, -5)
	assert.Equal(t, 1, idx)
	assert.Equal(t, 0.0, res.Stops[1].Offset)

	_, idx = AddStop(d, 24.6)
	assert.Equal(t, 1, idx)
}

func TestRemoveStop(t *testing.T) {
	d := Default()
	res := RemoveStop(d, 0)
	assert.Len(t, res.Stops, 2, "a gradient never drops below two stops")
	assert.Equal(t, d.Stops, res.Stops)

	three, _ := AddStop(d, 40)
	res = RemoveStop(three, 1)
	assert.Equal(t, d.Stops, res.Stops)
	assert.Equal(t, d.Fill, res.Fill)

	res = RemoveStop(three, 7)
	assert.Len(t, res.Stops, 3)
}

func TestMoveStop(t *testing.T) {
	d, _ := AddStop(Default(), 30)

	res := MoveStop(d, 1, 90.4)
	assert.Equal(t, []float64{0, 90, 100}, offsets(res))

	// Moving past a neighbour does not re-sort, but Fill does.
	res = MoveStop(d, 0, 120)
	assert.Equal(t, []float64{100, 30, 100}, offsets(res))
	assert.Equal(t, GenerateString(res.Type, SortStops(res.Stops), res.Angle, res.Radius), res.Fill)

	res = MoveStop(d, 2, -3)
	assert.Equal(t, 0.0, res.Stops[2].Offset)

	assert.Equal(t, d.Stops, MoveStop(d, -1, 50).Stops)
}

func TestRecolorStop(t *testing.T) {
	d := Default()

	res := SetStopColor(d, 1, "#FF0000")
	assert.Equal(t, "#FF0000", res.Stops[1].Color)
	assert.Equal(t, d.Stops[0], res.Stops[0])
	assert.Equal(t, offsets(d), offsets(res))
	assert.Contains(t, res.Fill, "rgba(255, 0, 0, 1) 100%")

	res = SetStopOpacity(res, 0, 40)
	assert.Equal(t, 40.0, res.Stops[0].Opacity)
	assert.Contains(t, res.Fill, "rgba(99, 208, 205, 0.4) 0%")

	assert.Equal(t, 100.0, SetStopOpacity(d, 0, 300).Stops[0].Opacity)
	assert.Equal(t, 0.0, SetStopOpacity(d, 0, -3).Stops[0].Opacity)
	assert.Equal(t, d.Stops, SetStopColor(d, 5, "#000000").Stops)
}

func TestReverse(t *testing.T) {
	d := Descriptor{
		Stops: []Stop{
			{Color: "#000000", Offset: 0, Opacity: 100},
			{Color: "#FF0000", Offset: 30, Opacity: 50},
			{Color: "#FFFFFF", Offset: 100, Opacity: 100},
		},
		Radius: 100,
	}

	once := Reverse(d)
	assert.Equal(t, []float64{0, 70, 100}, offsets(once))
	assert.Equal(t, "#FFFFFF", once.Stops[0].Color)
	assert.Equal(t, Stop{Color: "#FF0000", Offset: 70, Opacity: 50}, once.Stops[1])
	assert.Equal(t, "#000000", once.Stops[2].Color)

	twice := Reverse(once)
	if diff := cmp.Diff(d.Stops, twice.Stops); diff != "" {
		t.Errorf("reversing twice changed the stops (-want +got):\n%s", diff)
	}
}

func TestReset(t *testing.T) {
	d, _ := AddStop(Default(), 50)
	d = SetType(d, Diamond)
	d = SetRadius(d, 150)
	d = SetAngle(d, 90)

	res := Reset()
	assert.Equal(t, Default(), res)
	assert.Equal(t, Linear, res.Type)
	assert.Equal(t, 0.0, res.Angle)
	assert.Equal(t, 100.0, res.Radius)
}

func TestShapeParameters(t *testing.T) {
	d := Default()
	assert.Equal(t, 360.0, SetAngle(d, 400).Angle)
	assert.Equal(t, 0.0, SetAngle(d, -10).Angle)
	assert.Equal(t, 10.0, SetRadius(d, 1).Radius)
	assert.Equal(t, 200.0, SetRadius(d, 999).Radius)

	r := SetType(d, Radial)
	assert.Contains(t, r.Fill, "radial-gradient(")
}

func TestNormalize(t *testing.T) {
	d := Normalize(Descriptor{
		Type: Type(12),
		Stops: []Stop{
			{Color: "#FFFFFF", Offset: 140, Opacity: 120},
			{Color: "#000000", Offset: -20, Opacity: -1},
		},
		Angle: 720,
	})
	want := []Stop{
		{Color: "#000000", Offset: 0, Opacity: 0},
		{Color: "#FFFFFF", Offset: 100, Opacity: 100},
	}
	if diff := cmp.Diff(want, d.Stops); diff != "" {
		t.Errorf("stops mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, Linear, d.Type)
	assert.Equal(t, 360.0, d.Angle)
	assert.Equal(t, 100.0, d.Radius)

	short := Normalize(Descriptor{Type: Radial, Stops: []Stop{{Color: "#000000"}}})
	assert.Equal(t, Radial, short.Type)
	assert.Equal(t, Default().Stops, short.Stops)
	assert.NotEmpty(t, short.Fill)
}

func TestStopColoursAreCanonical(t *testing.T) {
	d := SetStopColor(Default(), 0, "#ff8800")
	assert.Equal(t, "#FF8800", d.Stops[0].Color)

	d = SetStopColor(d, 1, "red")
	assert.Equal(t, "#FFFFFF", d.Stops[1].Color)
	assert.Contains(t, d.Fill, "rgba(255, 255, 255, 1) 100%")
}

func TestNewStopIsOpaque(t *testing.T) {
	s := NewStop("#000000", 40)
	assert.Equal(t, Stop{Color: "#000000", Offset: 40, Opacity: 100}, s)

	stops := []Stop{NewStop("#000000", 0), NewStop("#FFFFFF", 100)}
	assert.Equal(t,
		"linear-gradient(0deg, rgba(0, 0, 0, 1) 0%, rgba(255, 255, 255, 1) 100%)",
		GenerateString(Linear, stops, 0, 100))

	// A zero opacity is transparent, not defaulted.
	stops[1].Opacity = 0
	assert.Contains(t, GenerateString(Linear, stops, 0, 100), "rgba(255, 255, 255, 0) 100%")
}
