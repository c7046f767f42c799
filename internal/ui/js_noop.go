//go:build !js

package ui

func (g *Game) initJS() {}

func (g *Game) reportStateJS() {}
