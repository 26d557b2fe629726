package service

import (
	"fmt"
	"runtime"
	"time"

	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/mem"

	"github.com/clubsite/server/config"
	"github.com/clubsite/server/web/cache"
)

var startTime = time.Now()

// SystemInfo is the payload of the admin console's about box.
type SystemInfo struct {
	Version       string  `json:"version"`
	GoVersion     string  `json:"goVersion"`
	Platform      string  `json:"platform"`
	UptimeSeconds float64 `json:"uptime"`
	MemUsedPct    float64 `json:"memUsedPercent"`
	CacheHits     int64   `json:"cacheHits"`
	CacheMisses   int64   `json:"cacheMisses"`
}

type SystemService struct{}

func (s *SystemService) Info() SystemInfo {
	info := SystemInfo{
		Version:       config.GetVersion(),
		GoVersion:     runtime.Version(),
		UptimeSeconds: time.Since(startTime).Seconds(),
	}

	if hi, err := host.Info(); err == nil {
		info.Platform = fmt.Sprintf("%s %s", hi.Platform, hi.PlatformVersion)
	} else {
		info.Platform = runtime.GOOS
	}
	if vm, err := mem.VirtualMemory(); err == nil {
		info.MemUsedPct = vm.UsedPercent
	}

	info.CacheHits, info.CacheMisses = cache.Stats()
	return info
}
