package model

import (
	"fmt"

	"github.com/jinzhu/copier"
)

// Spawn is the reset template for the mutable actors of one round.
type Spawn struct {
	Player  Pose
	Pursuer Pursuer
}

// Clone returns fresh, independent actors built from the template.
func (s *Spawn) Clone() (*Pose, *Pursuer, error) {
	// textures are shared read-only and stay out of the deep copy
	tmpl := *s
	tmpl.Pursuer.Texture = nil

	var out Spawn
	if err := copier.CopyWithOption(&out, &tmpl, copier.Option{DeepCopy: true}); err != nil {
		return nil, nil, fmt.Errorf("clone spawn: %w", err)
	}
	// copier skips unexported fields, so the heading is rebuilt from the template angle
	out.Player.SetAngle(s.Player.Angle())
	out.Pursuer.Texture = s.Pursuer.Texture
	return &out.Player, &out.Pursuer, nil
}
