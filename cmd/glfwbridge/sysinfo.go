// cmd/glfwbridge/sysinfo.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package main

import (
	"github.com/kjunichi/node-glfw/pkg/log"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"
)

// logSystemInfo records the machine we're running on; it helps when
// sorting out driver-specific window system problems.
func logSystemInfo(lg *log.Logger) {
	if hi, err := host.Info(); err != nil {
		lg.Warnf("host info: %v", err)
	} else {
		lg.Info("host", "os", hi.OS, "platform", hi.Platform, "version", hi.PlatformVersion,
			"kernel", hi.KernelVersion, "arch", hi.KernelArch)
	}

	if ci, err := cpu.Info(); err != nil {
		lg.Warnf("cpu info: %v", err)
	} else if len(ci) > 0 {
		lg.Info("cpu", "model", ci[0].ModelName, "sockets", len(ci), "cores", ci[0].Cores)
	}

	if vm, err := mem.VirtualMemory(); err != nil {
		lg.Warnf("memory info: %v", err)
	} else {
		lg.Info("memory", "total_mb", vm.Total/(1024*1024), "available_mb", vm.Available/(1024*1024))
	}
}
