package catalog

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/udisondev/procdungeon/internal/doortype"
	"github.com/udisondev/procdungeon/internal/model"
)

// assetDef is the on-disk form of one door type.
type assetDef struct {
	Name        string       `yaml:"name"`
	Size        model.Vector `yaml:"size"`
	Offset      float64      `yaml:"offset"`
	Color       model.Color  `yaml:"color"`
	Description string       `yaml:"description,omitempty"`
}

// assetFile is either a single asset or a door_types list.
type assetFile struct {
	assetDef  `yaml:",inline"`
	DoorTypes []assetDef `yaml:"door_types,omitempty"`
}

func (a assetDef) toDoorType() *doortype.DoorType {
	return doortype.NewDoorType(a.Name, a.Size, a.Offset, a.Color, a.Description)
}

func fromDoorType(dt *doortype.DoorType) assetDef {
	return assetDef{
		Name:        dt.Name(),
		Size:        dt.Size(),
		Offset:      dt.Offset(),
		Color:       dt.Color(),
		Description: dt.Description(),
	}
}

// decodeAssets parses every YAML document in data. Each document holds
// one asset or a door_types list.
func decodeAssets(data []byte) ([]assetDef, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var defs []assetDef
	for {
		var f assetFile
		err := dec.Decode(&f)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		if len(f.DoorTypes) > 0 {
			if f.Name != "" {
				return nil, fmt.Errorf("document mixes a single door type %q with a door_types list", f.Name)
			}
			defs = append(defs, f.DoorTypes...)
			continue
		}
		if f.Name == "" {
			return nil, ErrMissingName
		}
		defs = append(defs, f.assetDef)
	}
	return defs, nil
}

// Encode writes door types as a single door_types list document.
func Encode(w io.Writer, types []*doortype.DoorType) error {
	var f struct {
		DoorTypes []assetDef `yaml:"door_types"`
	}
	f.DoorTypes = make([]assetDef, 0, len(types))
	for _, dt := range types {
		f.DoorTypes = append(f.DoorTypes, fromDoorType(dt))
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(f); err != nil {
		return fmt.Errorf("encoding door types: %w", err)
	}
	return enc.Close()
}
