package config

import (
	"fmt"

	"github.com/golangdaddy/doodledrive/pkg/camera"
	"github.com/golangdaddy/doodledrive/pkg/road"
	"github.com/golangdaddy/doodledrive/pkg/traffic"
	"github.com/golangdaddy/doodledrive/pkg/vehicle"
	"github.com/spf13/viper"
)

// FileName is the configuration file looked up in the config directory.
const FileName = "doodledrive.cfg.json"

// Window holds the desktop window settings.
type Window struct {
	Width  int    `json:"width" mapstructure:"width"`
	Height int    `json:"height" mapstructure:"height"`
	Title  string `json:"title" mapstructure:"title"`
}

// Config is the full game configuration.
type Config struct {
	LogLevel string `json:"logLevel" mapstructure:"logLevel"`
	LogFile  string `json:"logFile" mapstructure:"logFile"`
	// SentryDSN enables crash reporting when set.
	SentryDSN string `json:"sentryDsn" mapstructure:"sentryDsn"`
	// MaxFrameTime caps the seconds simulated in one tick.
	MaxFrameTime float64 `json:"maxFrameTime" mapstructure:"maxFrameTime"`

	Window  Window         `json:"window" mapstructure:"window"`
	Road    road.Config    `json:"road" mapstructure:"road"`
	Vehicle vehicle.Config `json:"vehicle" mapstructure:"vehicle"`
	Camera  camera.Config  `json:"camera" mapstructure:"camera"`
	Traffic traffic.Config `json:"traffic" mapstructure:"traffic"`
}

// Default returns the configuration used when no file overrides it.
func Default() Config {
	return Config{
		LogLevel:     "info",
		MaxFrameTime: 0.1,
		Window:       Window{Width: 1024, Height: 600, Title: "Doodle Drive"},
		Road:         road.DefaultConfig(),
		Vehicle:      vehicle.DefaultConfig(),
		Camera:       camera.DefaultConfig(),
		Traffic:      traffic.DefaultConfig(),
	}
}

// Load registers defaults for every key and reads FileName from configDir.
// The defaults stay in effect when the file cannot be read.
func Load(configDir string) error {
	setDefaults(Default())

	viper.SetConfigName(FileName)
	viper.AddConfigPath(configDir)
	viper.SetConfigType("json")

	err := viper.ReadInConfig()
	if err != nil {
		return fmt.Errorf("error reading config file: %w", err)
	}

	return nil
}

// Current decodes the loaded settings into a Config.
func Current() (Config, error) {
	cfg := Default()
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("error decoding config: %w", err)
	}
	if cfg.MaxFrameTime <= 0 {
		return Config{}, fmt.Errorf("maxFrameTime must be positive, got %v", cfg.MaxFrameTime)
	}
	return cfg, nil
}

func setDefaults(d Config) {
	viper.SetDefault("logLevel", d.LogLevel)
	viper.SetDefault("logFile", d.LogFile)
	viper.SetDefault("sentryDsn", d.SentryDSN)
	viper.SetDefault("maxFrameTime", d.MaxFrameTime)

	viper.SetDefault("window.width", d.Window.Width)
	viper.SetDefault("window.height", d.Window.Height)
	viper.SetDefault("window.title", d.Window.Title)

	viper.SetDefault("road.segmentLength", d.Road.SegmentLength)
	viper.SetDefault("road.roadWidth", d.Road.RoadWidth)
	viper.SetDefault("road.segmentsAhead", d.Road.SegmentsAhead)
	viper.SetDefault("road.segmentsBehind", d.Road.SegmentsBehind)
	viper.SetDefault("road.straightsBeforeTurn", d.Road.StraightsBeforeTurn)
	viper.SetDefault("road.flyInDistance", d.Road.FlyInDistance)
	viper.SetDefault("road.flyInDuration", d.Road.FlyInDuration)
	viper.SetDefault("road.textureScroll", d.Road.TextureScroll)

	viper.SetDefault("vehicle.body.width", d.Vehicle.Body.Width)
	viper.SetDefault("vehicle.body.height", d.Vehicle.Body.Height)
	viper.SetDefault("vehicle.body.length", d.Vehicle.Body.Length)
	viper.SetDefault("vehicle.laneCount", d.Vehicle.LaneCount)
	viper.SetDefault("vehicle.laneWidth", d.Vehicle.LaneWidth)
	viper.SetDefault("vehicle.startLane", d.Vehicle.StartLane)
	viper.SetDefault("vehicle.laneChangeSpeed", d.Vehicle.LaneChangeSpeed)
	viper.SetDefault("vehicle.laneSnap", d.Vehicle.LaneSnap)
	viper.SetDefault("vehicle.initialSpeed", d.Vehicle.InitialSpeed)
	viper.SetDefault("vehicle.minSpeed", d.Vehicle.MinSpeed)
	viper.SetDefault("vehicle.maxSpeed", d.Vehicle.MaxSpeed)
	viper.SetDefault("vehicle.acceleration", d.Vehicle.Acceleration)
	viper.SetDefault("vehicle.deceleration", d.Vehicle.Deceleration)
	viper.SetDefault("vehicle.friction", d.Vehicle.Friction)
	viper.SetDefault("vehicle.momentum", d.Vehicle.Momentum)
	viper.SetDefault("vehicle.colliderScale", d.Vehicle.ColliderScale)
	viper.SetDefault("vehicle.collisionFlash", d.Vehicle.CollisionFlash)
	viper.SetDefault("vehicle.maxRoll", d.Vehicle.MaxRoll)
	viper.SetDefault("vehicle.bounceHeight", d.Vehicle.BounceHeight)
	viper.SetDefault("vehicle.bounceRate", d.Vehicle.BounceRate)

	viper.SetDefault("camera.angle", d.Camera.Angle)
	viper.SetDefault("camera.distance", d.Camera.Distance)
	viper.SetDefault("camera.lookAhead", d.Camera.LookAhead)
	viper.SetDefault("camera.bobAmplitude", d.Camera.BobAmplitude)
	viper.SetDefault("camera.bobFrequency", d.Camera.BobFrequency)
	viper.SetDefault("camera.speedCap", d.Camera.SpeedCap)
	viper.SetDefault("camera.follow", d.Camera.Follow)
	viper.SetDefault("camera.smoothing", d.Camera.Smoothing)
	viper.SetDefault("camera.fieldOfView", d.Camera.FieldOfView)
	viper.SetDefault("camera.near", d.Camera.Near)
	viper.SetDefault("camera.far", d.Camera.Far)

	viper.SetDefault("traffic.enabled", d.Traffic.Enabled)
	viper.SetDefault("traffic.seed", d.Traffic.Seed)
	viper.SetDefault("traffic.maxCars", d.Traffic.MaxCars)
	viper.SetDefault("traffic.spawnInterval", d.Traffic.SpawnInterval)
	viper.SetDefault("traffic.spawnChance", d.Traffic.SpawnChance)
	viper.SetDefault("traffic.spawnAhead", d.Traffic.SpawnAhead)
	viper.SetDefault("traffic.despawnBehind", d.Traffic.DespawnBehind)
	viper.SetDefault("traffic.minGap", d.Traffic.MinGap)
	viper.SetDefault("traffic.minSpeed", d.Traffic.MinSpeed)
	viper.SetDefault("traffic.maxSpeed", d.Traffic.MaxSpeed)
	viper.SetDefault("traffic.colliderScale", d.Traffic.ColliderScale)
}
