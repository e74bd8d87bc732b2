package system

import (
	"github.com/CatPunch007/LittleWitch/ecs/component"
	"github.com/CatPunch007/LittleWitch/mover"
	"github.com/jakecoffman/cp"
)

// chipmunkBody adapts a Chipmunk body and its GravityScale component to
// mover.Body. The gravity scale is read by the body's velocity update func.
type chipmunkBody struct {
	body    *cp.Body
	gravity *component.GravityScale
}

func (b *chipmunkBody) Position() mover.Vec {
	p := b.body.Position()
	return mover.Vec{X: p.X, Y: p.Y}
}

func (b *chipmunkBody) Velocity() mover.Vec {
	v := b.body.Velocity()
	return mover.Vec{X: v.X, Y: v.Y}
}

func (b *chipmunkBody) SetVelocity(v mover.Vec) {
	b.body.SetVelocityVector(cp.Vector{X: v.X, Y: v.Y})
}

func (b *chipmunkBody) ApplyImpulse(dir mover.Vec, magnitude float64) {
	impulse := cp.Vector{X: dir.X, Y: dir.Y}.Mult(magnitude)
	b.body.ApplyImpulseAtWorldPoint(impulse, b.body.Position())
}

func (b *chipmunkBody) GravityScale() float64 {
	return b.gravity.Scale
}

func (b *chipmunkBody) SetGravityScale(scale float64) {
	b.gravity.Scale = scale
}

// SpaceProbe casts a segment straight down through the space.
type SpaceProbe struct {
	space  *cp.Space
	filter cp.ShapeFilter
}

func (p *SpaceProbe) Grounded(pos mover.Vec, length float64) bool {
	if p == nil || p.space == nil || length <= 0 {
		return false
	}
	start := cp.Vector{X: pos.X, Y: pos.Y}
	end := cp.Vector{X: pos.X, Y: pos.Y - length}
	hit := p.space.SegmentQueryFirst(start, end, 0, p.filter)
	return hit.Shape != nil
}

// recordingProbe keeps the last probe result for debug drawing.
type recordingProbe struct {
	probe  mover.GroundProbe
	record *component.GroundProbe
}

func (p *recordingProbe) Grounded(pos mover.Vec, length float64) bool {
	grounded := p.probe.Grounded(pos, length)
	if p.record != nil {
		*p.record = component.GroundProbe{
			OriginX:  pos.X,
			OriginY:  pos.Y,
			Length:   length,
			Grounded: grounded,
		}
	}
	return grounded
}

// spriteFacer flips a sprite when the mover changes facing.
type spriteFacer struct {
	sprite *component.Sprite
}

func (f *spriteFacer) SetFacing(facing mover.Facing) {
	f.sprite.FacingLeft = facing == mover.FacingLeft
}
