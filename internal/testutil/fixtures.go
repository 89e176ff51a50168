package testutil

import (
	"github.com/udisondev/procdungeon/internal/config"
	"github.com/udisondev/procdungeon/internal/doortype"
	"github.com/udisondev/procdungeon/internal/model"
)

// ScenarioDefaults are the door defaults shared by tests:
// size (100, 0, 200), offset 0.5, white.
func ScenarioDefaults() config.DoorDefaults {
	return config.DoorDefaults{
		Size:   model.NewVector(100, 0, 200),
		Offset: 0.5,
		Color:  model.White,
	}
}

// WoodenDoor returns a fresh "wooden" door type: (80, 10, 220), offset 0, brown.
func WoodenDoor() *doortype.DoorType {
	return doortype.NewDoorType("wooden", model.NewVector(80, 10, 220), 0, model.Brown, "Plain oak door")
}

// Portcullis returns a fresh "portcullis" door type.
func Portcullis() *doortype.DoorType {
	return doortype.NewDoorType("portcullis", model.NewVector(40, 640, 400), 0.25, model.Silver, "Iron gate")
}

// Hatch returns a fresh "hatch" door type sitting at the top of the room.
func Hatch() *doortype.DoorType {
	return doortype.NewDoorType("hatch", model.NewVector(100, 100, 5), 1, model.Orange.WithAlpha(128), "")
}
