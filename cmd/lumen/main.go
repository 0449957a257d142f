package main

import (
	"flag"
	"os"
	"runtime"
	"runtime/pprof"
	"runtime/trace"
	"unsafe"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/devblok/lumen/core"
)

func init() {
	runtime.LockOSThread()
}

// Profiling
var (
	cpuProfile   = flag.String("cpuprof", "", "Profile CPU usage to file")
	memProfile   = flag.String("memprof", "", "Profile memory usage into a file")
	traceProfile = flag.String("trace", "", "Trace output for profiling")
	debug        = flag.Bool("vkdbg", false, "Load Vulkan validation layers")
	envFile      = flag.String("env", "", "Load configuration from env file")
)

func main() {
	flag.Parse()

	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	if *envFile != "" {
		if err := godotenv.Load(*envFile); err != nil {
			return err
		}
	}

	configuration := core.FromEnv(core.DefaultConfiguration)
	if *debug {
		configuration.Instance.DebugMode = true
	}
	if configuration.Instance.DebugMode {
		log.SetLevel(log.DebugLevel)
	}

	if *cpuProfile != "" {
		f, err := os.Create(*cpuProfile)
		if err != nil {
			return err
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			return err
		}
		defer pprof.StopCPUProfile()
	}

	if *traceProfile != "" {
		f, err := os.Create(*traceProfile)
		if err != nil {
			return err
		}
		if err := trace.Start(f); err != nil {
			return err
		}
		defer trace.Stop()
	}

	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return err
	}
	defer sdl.Quit()

	if err := sdl.VulkanLoadLibrary(""); err != nil {
		return err
	}
	defer sdl.VulkanUnloadLibrary()

	window, err := newWindow(configuration)
	if err != nil {
		return err
	}
	defer window.Destroy()

	context, err := core.NewContext(configuration, vulkanWindow{window}, sdl.VulkanGetVkGetInstanceProcAddr())
	if err != nil {
		return err
	}
	defer context.Destroy()

	eventLoop(configuration.Time)

	if *memProfile != "" {
		f, err := os.Create(*memProfile)
		if err != nil {
			return err
		}
		defer f.Close()
		if err := pprof.WriteHeapProfile(f); err != nil {
			return err
		}
	}

	return nil
}

func newWindow(cfg core.Configuration) (*sdl.Window, error) {
	return sdl.CreateWindow("Lumen",
		sdl.WINDOWPOS_UNDEFINED,
		sdl.WINDOWPOS_UNDEFINED,
		int32(cfg.ScreenWidth),
		int32(cfg.ScreenHeight),
		sdl.WINDOW_VULKAN)
}

// vulkanWindow adapts an SDL window to the surface provider the
// context bootstrap expects.
type vulkanWindow struct {
	*sdl.Window
}

func (w vulkanWindow) InstanceExtensions() []string {
	return w.Window.VulkanGetInstanceExtensions()
}

func (w vulkanWindow) CreateSurface(instance interface{}) (unsafe.Pointer, error) {
	return w.Window.VulkanCreateSurface(instance)
}

func eventLoop(cfg core.TimeConfiguration) {
	time := core.NewTime(cfg)
	exitC := make(chan struct{}, 2)

EventLoop:
	for {
		select {
		case <-exitC:
			log.Info("event loop exited")
			break EventLoop
		case <-time.EventTicker().C:
			var event sdl.Event
			for event = sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
				switch et := event.(type) {
				case *sdl.KeyboardEvent:
					if et.Keysym.Sym == sdl.K_ESCAPE {
						exitC <- struct{}{}
						continue EventLoop
					}
				case *sdl.QuitEvent:
					exitC <- struct{}{}
					continue EventLoop
				}
			}
		}
	}
}
