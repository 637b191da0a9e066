/*
Minimal viewer that exercises the engine packages: it loads a camera
description from a TOML file, derives the projection and view matrices
and reports which scene spheres survive a crude distance cull. The
config file is watched and everything is rebuilt on change.
*/
package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	toml "github.com/pelletier/go-toml/v2"

	"github.com/cadmium-engine/cadmium/engine/core"
	"github.com/cadmium-engine/cadmium/engine/geometry"
	math "github.com/cadmium-engine/cadmium/engine/math"
)

const configPath = "viewer.toml"

type CameraConfig struct {
	FovDegrees  float32    `toml:"fov_degrees"`
	AspectRatio float32    `toml:"aspect_ratio"`
	Near        float32    `toml:"near"`
	Far         float32    `toml:"far"`
	Position    [3]float32 `toml:"position"`
	YawDegrees  float32    `toml:"yaw_degrees"`
}

type SphereConfig struct {
	Center [3]float32 `toml:"center"`
	Radius float32    `toml:"radius"`
}

type ViewerConfig struct {
	LogLevel string         `toml:"log_level"`
	Camera   CameraConfig   `toml:"camera"`
	Spheres  []SphereConfig `toml:"spheres"`
}

func loadConfig(path string) (*ViewerConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := &ViewerConfig{}
	if err := toml.Unmarshal(raw, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

type viewer struct {
	projection math.Projection
	camera     *math.Transform
	spheres    []geometry.Sphere
	drawRange  float32
}

// rebuild derives the matrices and scene from a fresh config.
func (v *viewer) rebuild(cfg *ViewerConfig) {
	if cfg.LogLevel != "" {
		core.SetLogLevel(cfg.LogLevel)
	}

	cam := cfg.Camera
	v.projection = math.NewProjectionPerspective(
		math.Degree(cam.FovDegrees),
		cam.AspectRatio,
		math.NewDepth(cam.Near, cam.Far),
	)
	v.camera = math.NewTransformFromPositionRotation(
		math.NewVector3(cam.Position[0], cam.Position[1], cam.Position[2]),
		math.NewQuaternionFromYaw(math.Degree(cam.YawDegrees)),
	)
	v.drawRange = cam.Far

	v.spheres = v.spheres[:0]
	for _, s := range cfg.Spheres {
		v.spheres = append(v.spheres, geometry.NewSphere(
			geometry.NewPoint3(s.Center[0], s.Center[1], s.Center[2]),
			s.Radius,
		))
	}

	view := v.camera.World()
	core.LogInfo("camera at %v, fov %.1f deg, depth [%.2f, %.2f]",
		cam.Position, cam.FovDegrees, cam.Near, cam.Far)
	core.LogDebug("projection %v", v.projection.AsSlice())
	core.LogDebug("view col 3 %v", view.Col(3))

	v.cull()
}

// cull drops spheres entirely beyond the far plane, measured from the
// camera position.
func (v *viewer) cull() {
	eye := geometry.NewPoint3FromVector3(v.camera.Position)
	visible := 0
	for i, s := range v.spheres {
		if s.DistanceTo(eye) <= v.drawRange {
			visible++
			continue
		}
		core.LogDebug("sphere %d culled at distance %.2f", i, s.DistanceTo(eye))
	}
	core.LogInfo("%d of %d spheres in range", visible, len(v.spheres))
}

func (v *viewer) onEvent(code core.SystemEventCode, sender, listener interface{}, data core.EventContext) bool {
	cfg, err := loadConfig(data.Str)
	if err != nil {
		core.LogWarn("config reload failed, keeping previous: %v", err)
		return true
	}
	core.LogInfo("config changed, rebuilding")
	v.rebuild(cfg)
	return true
}

func watchConfig(path string) (*fsnotify.Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := watcher.Add(path); err != nil {
		watcher.Close()
		return nil, err
	}

	go func() {
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if event.Op.Has(fsnotify.Write) || event.Op.Has(fsnotify.Create) {
					core.EventFire(core.EVENT_CODE_CONFIG_CHANGED, nil,
						core.EventContext{Str: event.Name})
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				core.LogWarn("config watcher: %v", err)
			}
		}
	}()
	return watcher, nil
}

func main() {
	core.EventInitialize()
	if err := core.MetricsInitialize(); err != nil {
		core.LogFatal("metrics: %v", err)
	}

	cfg, err := loadConfig(configPath)
	if err != nil {
		core.LogFatal("loading %s: %v", configPath, err)
	}

	v := &viewer{}
	v.rebuild(cfg)
	core.EventRegister(core.EVENT_CODE_CONFIG_CHANGED, v, v.onEvent)

	watcher, err := watchConfig(configPath)
	if err != nil {
		core.LogFatal("watching %s: %v", configPath, err)
	}
	defer watcher.Close()

	// signal channel to capture system calls
	quit := make(chan struct{})
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	go func() {
		<-sigCh
		core.EventFire(core.EVENT_CODE_APPLICATION_QUIT, nil, core.EventContext{})
		close(quit)
	}()

	clock := core.NewClock()
	clock.Start()
	ticker := time.NewTicker(time.Second / 60)
	defer ticker.Stop()
	report := time.NewTicker(5 * time.Second)
	defer report.Stop()

	for {
		select {
		case <-quit:
			core.LogInfo("shutting down")
			return
		case <-report.C:
			fps, frameMS := core.MetricsFrame()
			core.LogInfo("%.0f fps, %.2f ms/frame", fps, frameMS)
		case <-ticker.C:
			clock.Update()
			core.MetricsUpdate(clock.Delta())
		}
	}
}
