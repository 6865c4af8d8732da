package models

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/golangdaddy/doodledrive/pkg/camera"
	"github.com/golangdaddy/doodledrive/pkg/config"
	"github.com/golangdaddy/doodledrive/pkg/geom"
	"github.com/golangdaddy/doodledrive/pkg/input"
	"github.com/golangdaddy/doodledrive/pkg/road"
	"github.com/golangdaddy/doodledrive/pkg/telemetry"
	"github.com/golangdaddy/doodledrive/pkg/traffic"
	"github.com/golangdaddy/doodledrive/pkg/vehicle"
	"github.com/rs/zerolog"
)

// GameState owns one running game: the road, the player's car, the traffic
// and the chase camera. It is advanced by Tick once per frame.
type GameState struct {
	Road    *road.Manager
	Player  *vehicle.Player
	Traffic *traffic.Controller
	Camera  *camera.Camera
	Session *Session

	log          zerolog.Logger
	recorder     *telemetry.Recorder
	edges        input.Edges
	maxFrameTime float64
	scroll       float64

	score int
	frame Frame
}

// NewGameState builds a game from cfg. surfaces may be nil for headless use.
func NewGameState(cfg config.Config, surfaces road.SurfaceFactory, logger zerolog.Logger) (*GameState, error) {
	vcfg := cfg.Vehicle
	vcfg.RoadWidth = cfg.Road.RoadWidth

	rm, err := road.NewManager(cfg.Road, surfaces, logger)
	if err != nil {
		return nil, err
	}
	player, err := vehicle.NewPlayer(vcfg, logger)
	if err != nil {
		return nil, err
	}
	tc, err := traffic.NewController(cfg.Traffic, vcfg, logger)
	if err != nil {
		return nil, err
	}
	cam, err := camera.New(cfg.Camera)
	if err != nil {
		return nil, err
	}

	gs := &GameState{
		Road:         rm,
		Player:       player,
		Traffic:      tc,
		Camera:       cam,
		Session:      NewSession(),
		log:          logger.With().Str("component", "game").Logger(),
		maxFrameTime: cfg.MaxFrameTime,
		scroll:       cfg.Road.TextureScroll,
	}
	gs.followPlayer(0)
	return gs, nil
}

// SetRecorder routes road, player and restart events to r.
func (gs *GameState) SetRecorder(r *telemetry.Recorder) {
	gs.recorder = r
	gs.Road.SetRecorder(r)
	gs.Player.SetRecorder(r)
}

// ClampFrameTime turns a measured frame time into a safe simulation step in
// [0, limit]. NaN and negative values become 0.
func ClampFrameTime(dt, limit float64) float64 {
	if math.IsNaN(dt) || dt < 0 {
		return 0
	}
	return math.Min(dt, limit)
}

// Tick advances the game by dt seconds with keys held. The order is fixed:
// input, player, road, traffic, camera.
func (gs *GameState) Tick(dt float64, keys input.Snapshot) {
	dt = ClampFrameTime(dt, gs.maxFrameTime)
	in := gs.edges.Next(keys)
	if in.Pressed.Restart {
		gs.Restart()
		return
	}

	gs.Player.Update(dt, in)
	gs.Road.Update(gs.Player.Distance(), dt)
	gs.Road.ScrollTextures(gs.scroll * dt)

	gs.Traffic.Update(dt, gs.Player.Distance(), gs.Road.End())
	gs.Session.Collisions += gs.Traffic.Collide(gs.Player)

	gs.followPlayer(dt)
	gs.score = int(gs.Player.Distance())
}

// Restart ends the current run and starts a fresh one.
func (gs *GameState) Restart() {
	gs.Session.EndRun(gs.score, gs.Player.Distance())
	if gs.recorder != nil {
		gs.recorder.Restart()
	}
	gs.log.Info().Int("score", gs.score).Int("best", gs.Session.Best).Msg("run restarted")
	gs.Reset()
}

// Reset puts every component back to its starting state without counting a
// finished run.
func (gs *GameState) Reset() {
	gs.Player.Reset()
	gs.Road.Reset()
	gs.Traffic.Reset()
	gs.Camera.Reset()
	gs.score = 0
	gs.followPlayer(0)
}

// Score returns the score of the current run.
func (gs *GameState) Score() int {
	return gs.score
}

// PlayerPose returns the world transform of the player's car.
func (gs *GameState) PlayerPose() geom.Transform {
	return gs.Road.Locate(gs.Player.Distance(), gs.Player.Lateral())
}

func (gs *GameState) followPlayer(dt float64) {
	gs.Camera.Update(gs.PlayerPose(), gs.Player.Speed(), dt)
}

// Frame returns everything a renderer needs for the current state. The
// returned slices are reused by the next call.
func (gs *GameState) Frame() Frame {
	f := &gs.frame
	f.Segments = f.Segments[:0]
	for _, seg := range gs.Road.ActiveSegments() {
		f.Segments = append(f.Segments, SegmentView{
			ID:      seg.ID,
			Kind:    seg.Kind,
			State:   seg.Anim.State,
			Entry:   seg.Entry,
			Height:  seg.Anim.Y,
			Model:   seg.Model(),
			Surface: seg.Surface,
			Texture: seg.Texture,
			Mesh:    &seg.Mesh,
		})
	}

	pose := gs.PlayerPose()
	pose.Position = pose.Position.Add(mgl64.Vec3{0, gs.Player.Bounce(), 0})
	roll, pitch := gs.Player.Tilt()
	f.Player = CarView{
		Pose:     pose,
		Body:     gs.Player.Config().Body,
		Roll:     roll,
		Pitch:    pitch,
		Lane:     gs.Player.Lane(),
		Collided: gs.Player.Collided(),
	}

	f.Traffic = f.Traffic[:0]
	for _, car := range gs.Traffic.Cars() {
		f.Traffic = append(f.Traffic, CarView{
			Pose:     gs.Road.Locate(car.Distance, car.Lateral),
			Body:     gs.Traffic.Config().Body,
			Lane:     car.Lane,
			Collided: car.Hit(),
		})
	}

	f.Camera = CameraView{
		Position: gs.Camera.Position(),
		Target:   gs.Camera.Target(),
		View:     gs.Camera.View(),
	}
	f.Speed = gs.Player.Speed()
	f.MaxSpeed = gs.Player.Config().MaxSpeed
	f.Distance = gs.Player.Distance()
	f.Score = gs.score
	f.Best = gs.Session.Best
	f.Road = gs.Road.Stats()
	return *f
}
