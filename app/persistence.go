package app

import (
	"fmt"
	"os"

	"github.com/bvisness/flowstyle/app/gradient"
)

const gradientVersion = 1

func SStop(s *Serializer, stop *gradient.Stop) bool {
	SStr(s, &stop.Color)
	SFloat(s, &stop.Offset)
	SFloat(s, &stop.Opacity)
	return s.Ok()
}

// SGradient serializes a descriptor. Fill is not stored; it is rebuilt on
// decode.
func SGradient(s *Serializer, d *gradient.Descriptor) bool {
	SInt(s, &d.Type)
	SSlice(s, &d.Stops, SStop)
	SFloat(s, &d.Angle)
	SFloat(s, &d.Radius)
	if !s.Ok() {
		return false
	}
	if !s.Encode {
		*d = gradient.Normalize(*d)
	}
	return true
}

func SerializeGradient(d gradient.Descriptor) ([]byte, error) {
	s := NewEncoder(gradientVersion)
	if !SGradient(s, &d) {
		return nil, fmt.Errorf("serialization failed: %v", s.Errs)
	}
	return s.Bytes(), nil
}

func DeserializeGradient(data []byte) (gradient.Descriptor, error) {
	s := NewDecoder(data)
	if !s.Ok() {
		return gradient.Descriptor{}, fmt.Errorf("failed to read version: %v", s.Errs)
	}
	if s.Version > gradientVersion {
		return gradient.Descriptor{}, fmt.Errorf("gradient version %d is newer than supported version %d", s.Version, gradientVersion)
	}

	var d gradient.Descriptor
	if !SGradient(s, &d) {
		return gradient.Descriptor{}, fmt.Errorf("deserialization failed: %v", s.Errs)
	}
	return d, nil
}

func SaveGradient(path string, d gradient.Descriptor) error {
	data, err := SerializeGradient(d)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func LoadGradient(path string) (gradient.Descriptor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return gradient.Descriptor{}, err
	}
	return DeserializeGradient(data)
}
