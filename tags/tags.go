package tags

import "github.com/yohamta/donburi"

var (
	Root     = donburi.NewTag().SetName("Root")
	Cabinet  = donburi.NewTag().SetName("Cabinet")
	Drawer   = donburi.NewTag().SetName("Drawer")
	Diamond  = donburi.NewTag().SetName("Diamond")
	Contents = donburi.NewTag().SetName("Contents")
	Floor    = donburi.NewTag().SetName("Floor")
)
