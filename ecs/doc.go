// Package ecs bridges sprig interaction events into a [Donburi] world.
//
// [NewDonburiStore] publishes every event carrying an entity ID as a typed
// Donburi event. [Router] builds on it: nodes registered with the router get
// an entity with a [Clicks] component, and clicks on them are tallied there
// and queued as world-space pointer input for the game.
//
//	world := donburi.NewWorld()
//	router := ecs.NewRouter(world)
//	scene.SetEntityStore(ecs.NewDonburiStore(world))
//	router.Register(background)
//	// every tick:
//	router.Flush()
//	left, right := router.Take()
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
