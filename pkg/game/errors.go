package game

import "errors"

// ErrNoSceneFactory 重新开始时未设置场景工厂
var ErrNoSceneFactory = errors.New("scene factory not set")
