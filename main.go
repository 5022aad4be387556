/*
This is an example of application that will use the
vulkanite packages to test things out
*/
package main

import (
	"os"

	"github.com/spaghettifunk/vulkanite/chain"
	"github.com/spaghettifunk/vulkanite/config"
	"github.com/spaghettifunk/vulkanite/core"
	"github.com/spaghettifunk/vulkanite/driver"
	"github.com/spaghettifunk/vulkanite/extension"
	"github.com/spaghettifunk/vulkanite/loader"
	"github.com/spaghettifunk/vulkanite/platform"
)

func main() {
	cfg := config.Default()
	if path := os.Getenv("VULKANITE_CONFIG"); path != "" {
		c, err := config.Load(path)
		if err != nil {
			core.LogFatal("loading config: %v", err)
		}
		cfg = c
	}

	lib, err := loader.Open(cfg.LibraryPath)
	if err != nil {
		core.LogFatal("opening vulkan library: %v", err)
	}
	defer lib.Close()

	p, err := platform.New()
	if err != nil {
		core.LogFatal("initializing platform: %v", err)
	}
	if err := p.Startup("Vulkanite", 100, 100, 800, 600); err != nil {
		core.LogFatal("starting platform: %v", err)
	}
	defer p.Shutdown()

	required := extension.NewProperties()
	for _, name := range p.GetRequiredExtensionNames() {
		required.AddNamed(name, 1)
	}
	required.Add(extension.KhrGetPhysicalDeviceProperties2, 1)

	instance, err := driver.CreateInstance(&driver.InstanceCreateInfo{
		ApplicationInfo: &driver.ApplicationInfo{
			ApplicationName: "Vulkanite Demo",
			APIVersion:      core.APIVersion10,
		},
		EnabledExtensions: required,
	}, lib)
	if err != nil {
		core.LogFatal("creating instance: %v", err)
	}
	defer instance.Release()

	devices, err := instance.EnumeratePhysicalDevices()
	if err != nil {
		core.LogFatal("enumerating physical devices: %v", err)
	}
	core.LogInfo("found %d physical device(s)", len(devices))

	query := chain.NewQuery().
		Select(chain.StructureTypePhysicalDevice16BitStorageFeatures).
		Select(chain.StructureTypePhysicalDeviceMultiviewFeatures)

	for _, pd := range devices {
		features := pd.Features2(query)
		for _, b := range features.Blocks() {
			core.LogInfo("device %#x reports %T: %+v", pd.Handle(), b, b)
		}
	}
}
