package tui

import (
	"github.com/hdbplan/hdbplan/internal/domain"
)

// Scene identifies a screen in the explorer
type Scene int

const (
	SceneExplorer Scene = iota
	SceneTenures
	SceneHelp
)

// NavigateMsg switches to a different scene
type NavigateMsg struct {
	Scene Scene
}

// ProfileLoadedMsg carries the policy and household loaded at startup
type ProfileLoadedMsg struct {
	Policy    *domain.Policy
	Household *domain.Household
}

// ErrorMsg displays an error to the user
type ErrorMsg struct {
	Err error
}
