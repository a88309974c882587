package overlay

import (
	"fmt"
	"math"

	"elimination-tracker/internal/core/domain"

	"github.com/golang/geo/r3"
)

const (
	baseScale = 0.02
	minScale  = 0.03
	maxScale  = 0.12

	// tagLift is how far above the entity's head the tag floats.
	tagLift = 1.0

	textColor     uint32 = 0xFFFFFFFF
	backdropColor uint32 = 0x80000000
)

type Tier struct {
	Name  string
	Color string
}

var (
	TierCritical = Tier{Name: "critical", Color: "§c"}
	TierLow      = Tier{Name: "low", Color: "§6"}
	TierModerate = Tier{Name: "moderate", Color: "§e"}
	TierHigh     = Tier{Name: "high", Color: "§a"}
)

func HealthTier(health int) Tier {
	switch {
	case health <= 10:
		return TierCritical
	case health <= 20:
		return TierLow
	case health <= 30:
		return TierModerate
	default:
		return TierHigh
	}
}

func TagText(health, kills int) string {
	return fmt.Sprintf("[%s%d HP] %d K", HealthTier(health).Color, health, kills)
}

func Interpolate(prev, cur r3.Vector, partial float64) r3.Vector {
	return prev.Add(cur.Sub(prev).Mul(partial))
}

func TagPosition(e domain.Entity, partial float64) r3.Vector {
	return Interpolate(e.PrevPos, e.Pos, partial).Add(r3.Vector{Y: e.Height + tagLift})
}

// Scale grows with distance so the tag keeps a roughly constant on-screen
// size, bounded to stay legible up close and far away.
func Scale(distance float64) float64 {
	return math.Max(minScale, math.Min(baseScale*(1+distance*0.1), maxScale))
}

// Plan computes the draw command for one entity, or false when it gets no tag.
func Plan(e domain.Entity, health int, stats domain.PlayerStats, tracked bool, cam domain.Camera, partial float64, measure func(string) float64) (domain.DrawCommand, bool) {
	if e.IsViewer || e.Invisible || !tracked || health <= 0 {
		return domain.DrawCommand{}, false
	}

	text := TagText(health, stats.Kills)
	pos := TagPosition(e, partial)

	return domain.DrawCommand{
		Text:     text,
		Position: pos.Sub(cam.Pos),
		Rotation: billboardRotation(cam.Rotation),
		Scale:    Scale(cam.Pos.Distance(pos)),
		XOffset:  -measure(text) / 2,
		Color:    textColor,
		Backdrop: backdropColor,
	}, true
}

// billboardRotation turns the camera orientation half a turn about Y so the
// text front faces the viewer.
func billboardRotation(q domain.Quaternion) domain.Quaternion {
	// q * (0, 1, 0, 0)
	return domain.Quaternion{
		X: -q.Z,
		Y: q.W,
		Z: q.X,
		W: -q.Y,
	}
}
