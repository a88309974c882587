package overlay

import (
	"elimination-tracker/internal/core/domain"
	"elimination-tracker/internal/core/ports"
)

type StatLookup interface {
	Lookup(name string) (domain.PlayerStats, bool)
}

type Renderer struct {
	stats   StatLookup
	health  ports.HealthSource
	measure ports.TextMeasurer
}

func NewRenderer(stats StatLookup, health ports.HealthSource, measure ports.TextMeasurer) *Renderer {
	if measure == nil {
		measure = CellMeasurer{}
	}
	return &Renderer{
		stats:   stats,
		health:  health,
		measure: measure,
	}
}

// Render issues one text draw per tagged entity. Depth testing is off while
// tags are drawn so they show through walls, and is restored afterwards.
func (r *Renderer) Render(frame domain.Frame, batch ports.DrawBatch) int {
	batch.DisableDepthTest()
	defer func() {
		batch.EnableDepthTest()
		batch.Flush()
	}()

	drawn := 0
	for _, cmd := range r.Plan(frame) {
		batch.DrawText(cmd)
		drawn++
	}
	return drawn
}

func (r *Renderer) Plan(frame domain.Frame) []domain.DrawCommand {
	var cmds []domain.DrawCommand
	for _, e := range frame.Entities {
		if e.IsViewer || e.Invisible {
			continue
		}

		stats, tracked := r.stats.Lookup(e.Name)
		if !tracked {
			continue
		}

		cmd, ok := Plan(e, r.health.Health(e.Name), stats, tracked, frame.Camera, frame.PartialTicks, r.measure.Width)
		if ok {
			cmds = append(cmds, cmd)
		}
	}
	return cmds
}
