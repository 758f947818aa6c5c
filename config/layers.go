package config

import "github.com/yohamta/donburi/ecs"

// Default is the single ECS layer every entity is created on.
const Default ecs.LayerID = 0
