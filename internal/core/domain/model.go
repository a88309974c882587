package domain

import (
	"time"

	"github.com/golang/geo/r3"
)

type PlayerStats struct {
	Name  string
	Kills int
}

// Snapshot is an independent copy of the stat store in first-credit order.
type Snapshot []PlayerStats

func (s Snapshot) Lookup(name string) (PlayerStats, bool) {
	for _, p := range s {
		if p.Name == name {
			return p, true
		}
	}
	return PlayerStats{Name: name}, false
}

type EliminationEvent struct {
	Victim string
	Killer string
	Cause  string
}

type ChatMessage struct {
	Text    string
	Overlay bool
}

type Elimination struct {
	SessionID  string
	Server     string
	Victim     string
	Killer     string
	Cause      string
	ObservedAt time.Time
}

type Entity struct {
	Name      string
	PrevPos   r3.Vector
	Pos       r3.Vector
	Height    float64
	Invisible bool
	IsViewer  bool
}

type Camera struct {
	Pos      r3.Vector
	Rotation Quaternion
}

// Quaternion is the camera orientation copied onto billboards.
type Quaternion struct {
	X, Y, Z, W float64
}

type Frame struct {
	Camera       Camera
	PartialTicks float64
	Entities     []Entity
}

type DrawCommand struct {
	Text     string
	Position r3.Vector
	Rotation Quaternion
	Scale    float64
	XOffset  float64
	Color    uint32
	Backdrop uint32
}
