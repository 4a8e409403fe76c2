package gradient

import (
	"encoding/json"

	"github.com/bvisness/flowstyle/app/color"
	"github.com/tidwall/gjson"
)

type jsonStop struct {
	Color   string  `json:"color"`
	Offset  float64 `json:"offset"`
	Opacity float64 `json:"opacity"`
}

type jsonDescriptor struct {
	Type   string     `json:"type"`
	Stops  []jsonStop `json:"stops"`
	Angle  float64    `json:"angle"`
	Radius float64    `json:"radius"`
}

// ParseJSON reads a descriptor as stored by the style panel:
//
//	{"type": "Linear", "angle": 0, "radius": 100,
//	 "stops": [{"color": "#63D0CD", "offset": 0, "opacity": 100}, ...]}
//
// Missing fields take their defaults, a stop without an opacity is fully
// opaque, and colours are stored as "#RRGGBB" (white when unparseable). The
// result is normalized, so malformed input never yields an unusable gradient.
func ParseJSON(data []byte) Descriptor {
	root := gjson.ParseBytes(data)

	d := Descriptor{
		Type:   ParseType(root.Get("type").String()),
		Angle:  root.Get("angle").Float(),
		Radius: DefaultRadius,
	}
	if r := root.Get("radius"); r.Exists() {
		d.Radius = r.Float()
	}

	root.Get("stops").ForEach(func(_, s gjson.Result) bool {
		stop := NewStop(color.Normalize(s.Get("color").String()), s.Get("offset").Float())
		if op := s.Get("opacity"); op.Exists() && op.Type == gjson.Number {
			stop.Opacity = op.Float()
		}
		d.Stops = append(d.Stops, stop)
		return true
	})

	return Normalize(d)
}

// JSON encodes d in the format read by ParseJSON.
func (d Descriptor) JSON() ([]byte, error) {
	out := jsonDescriptor{
		Type:   d.Type.String(),
		Angle:  d.Angle,
		Radius: d.Radius,
	}
	for _, s := range d.Stops {
		out.Stops = append(out.Stops, jsonStop(s))
	}
	return json.MarshalIndent(out, "", "  ")
}
