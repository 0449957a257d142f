package main

import (
	"encoding/json"
	"fmt"

	"github.com/devblok/lumen/core"
)

func main() {
	cfg := core.InstanceConfiguration{
		DebugMode:  false,
		Extensions: []string{},
		Layers:     []string{},
	}

	coreInstance, err := core.NewVulkanInstance(core.DefaultApplicationInfo, nil, cfg)
	if err != nil {
		panic(err)
	}

	if bytes, err := json.Marshal(coreInstance.PhysicalDevicesInfo()); err == nil {
		fmt.Printf("%s", bytes)
	} else {
		panic(err)
	}

	coreInstance.Destroy()
}
