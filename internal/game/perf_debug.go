package game

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

const (
	perfLowTPSFraction = 0.8
	perfLowTPSDuration = 3 * time.Second
	perfLogInterval    = 3 * time.Second
)

// maybeLogPerfDrop warns when the tick rate stays well under the target,
// since movement then relies on clamped deltas.
func (gl *GameLoop) maybeLogPerfDrop() {
	target := float64(gl.game.config.Display.TPS)
	tps := ebiten.ActualTPS()
	if tps == 0 || tps >= target*perfLowTPSFraction {
		gl.game.perfLowTPSSince = time.Time{}
		gl.game.perfLastLog = time.Time{}
		return
	}

	now := time.Now()
	if gl.game.perfLowTPSSince.IsZero() {
		gl.game.perfLowTPSSince = now
		return
	}
	if now.Sub(gl.game.perfLowTPSSince) < perfLowTPSDuration {
		return
	}
	if !gl.game.perfLastLog.IsZero() && now.Sub(gl.game.perfLastLog) < perfLogInterval {
		return
	}

	gl.game.perfLastLog = now
	clock := gl.game.app.Clock
	gl.game.logger.Warn("tick rate below target",
		zap.Float64("tps", tps),
		zap.Float64("fps", ebiten.ActualFPS()),
		zap.Int("target_tps", gl.game.config.Display.TPS),
		zap.Duration("last_delta", clock.Delta()),
		zap.Uint64("frame", clock.Frame()),
		zap.Int("gizmo_lines", len(gl.game.app.Gizmos.Lines())))
}
