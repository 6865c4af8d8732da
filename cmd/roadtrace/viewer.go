package main

import (
	"fmt"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/golangdaddy/doodledrive/pkg/geom"
	"github.com/golangdaddy/doodledrive/pkg/input"
	"github.com/golangdaddy/doodledrive/pkg/models"
	"github.com/golangdaddy/doodledrive/pkg/road"
)

const (
	// keyHold is how long a key counts as held after the terminal reports
	// it. Terminals send repeats but never releases.
	keyHold = 150 * time.Millisecond

	cellWidth  = 0.5 // metres per column
	cellHeight = 2.0 // metres per row
)

var (
	edgeStyle    = tcell.StyleDefault.Foreground(tcell.ColorBlue)
	centreStyle  = tcell.StyleDefault.Foreground(tcell.ColorGray)
	flyingStyle  = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	playerStyle  = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	hitStyle     = tcell.StyleDefault.Foreground(tcell.ColorRed).Reverse(true)
	trafficStyle = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	hudStyle     = tcell.StyleDefault.Foreground(tcell.ColorWhite)
)

// Viewer drives a GameState from terminal keys and draws it top-down with
// the player's heading pointing up.
type Viewer struct {
	screen tcell.Screen
	state  *models.GameState
	held   map[string]time.Time
	names  map[string]bool
}

// NewViewer creates a viewer drawing state on screen.
func NewViewer(screen tcell.Screen, state *models.GameState) *Viewer {
	return &Viewer{
		screen: screen,
		state:  state,
		held:   map[string]time.Time{},
		names:  map[string]bool{},
	}
}

// keyName returns the input name for a terminal key.
func keyName(k tcell.Key, r rune) string {
	if k == tcell.KeyRune {
		if r == ' ' {
			return "space"
		}
		return string(r)
	}
	return tcell.KeyNames[k]
}

// HandleEvent records key presses. It returns false when the user quits.
func (v *Viewer) HandleEvent(ev tcell.Event, now time.Time) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
			(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
			return false
		}
		v.Press(keyName(ev.Key(), ev.Rune()), now)
	case *tcell.EventResize:
		v.screen.Sync()
	}
	return true
}

// Press marks the key called name as held at now.
func (v *Viewer) Press(name string, now time.Time) {
	v.held[name] = now
}

// Keys returns the keys still held at now.
func (v *Viewer) Keys(now time.Time) input.Snapshot {
	clear(v.names)
	for name, at := range v.held {
		if now.Sub(at) > keyHold {
			delete(v.held, name)
			continue
		}
		v.names[name] = true
	}
	return input.FromNames(v.names)
}

// Step advances the game by dt seconds.
func (v *Viewer) Step(dt float64, now time.Time) {
	v.state.Tick(dt, v.Keys(now))
}

// Cell returns the screen cell showing world, relative to the player pose.
func Cell(pose geom.Transform, world mgl64.Vec3, width, height int) (x, y int) {
	d := world.Sub(pose.Position)
	lateral := d.Dot(pose.Right())
	ahead := d.Dot(pose.Forward())
	x = width/2 + int(math.Round(lateral/cellWidth))
	y = height*3/4 - int(math.Round(ahead/cellHeight))
	return x, y
}

func (v *Viewer) plot(pose geom.Transform, world mgl64.Vec3, r rune, style tcell.Style) {
	w, h := v.screen.Size()
	x, y := Cell(pose, world, w, h)
	if x >= 0 && x < w && y >= 1 && y < h {
		v.screen.SetContent(x, y, r, nil, style)
	}
}

// Draw renders the current frame.
func (v *Viewer) Draw() {
	v.screen.Clear()
	frame := v.state.Frame()
	pose := v.state.PlayerPose()

	for _, seg := range frame.Segments {
		style := edgeStyle
		if seg.State == road.FlyingIn {
			style = flyingStyle
		}
		mesh := seg.Mesh
		for i := 0; i+1 < len(mesh.Centre); i++ {
			steps := int(math.Ceil(mesh.Centre[i].Sub(mesh.Centre[i+1]).Len() / cellHeight))
			for s := 0; s < steps; s++ {
				t := float64(s) / float64(steps)
				left := lerp(mesh.LeftEdge[i], mesh.LeftEdge[i+1], t)
				right := lerp(mesh.RightEdge[i], mesh.RightEdge[i+1], t)
				centre := lerp(mesh.Centre[i], mesh.Centre[i+1], t)
				v.plot(pose, mgl64.TransformCoordinate(left, seg.Model), '|', style)
				v.plot(pose, mgl64.TransformCoordinate(right, seg.Model), '|', style)
				if s%2 == 0 {
					v.plot(pose, mgl64.TransformCoordinate(centre, seg.Model), ':', centreStyle)
				}
			}
		}
	}

	for _, car := range frame.Traffic {
		if car.Collided {
			v.plot(pose, car.Pose.Position, 'T', hitStyle)
			continue
		}
		v.plot(pose, car.Pose.Position, 'T', trafficStyle)
	}
	style := playerStyle
	if frame.Player.Collided {
		style = hitStyle
	}
	v.plot(pose, pose.Position, 'A', style)

	hud := fmt.Sprintf("speed %5.1f  score %d  best %d  segments %d  recycled %d",
		frame.Speed, frame.Score, frame.Best, frame.Road.Active, frame.Road.Recycled)
	for i, r := range hud {
		v.screen.SetContent(i, 0, r, nil, hudStyle)
	}
	v.screen.Show()
}

func lerp(a, b mgl64.Vec3, t float64) mgl64.Vec3 {
	return a.Add(b.Sub(a).Mul(t))
}
