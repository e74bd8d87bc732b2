package component

import "github.com/CatPunch007/LittleWitch/mover"

// Mover attaches a character controller to an entity. Controller is built
// lazily by the mover system once the entity's physics body exists.
type Mover struct {
	Config     mover.Config
	Controller *mover.Mover
	Last       mover.Report
}

var MoverComponent = NewComponent[Mover]("mover")
