package component

type PlayerTag struct{}

var PlayerTagComponent = NewComponent[PlayerTag]("player_tag")

type StaticTileTag struct{}

var StaticTileTagComponent = NewComponent[StaticTileTag]("static_tile_tag")
