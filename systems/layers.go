package systems

import "github.com/yohamta/donburi/ecs"

const (
	LayerDefault ecs.LayerID = iota
	LayerHUD
)

// SceneChanger allows systems to trigger scene transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}
