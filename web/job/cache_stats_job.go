package job

import (
	"github.com/clubsite/server/logger"
	"github.com/clubsite/server/web/cache"
)

type CacheStatsJob struct{}

func NewCacheStatsJob() *CacheStatsJob {
	return new(CacheStatsJob)
}

// Run logs the cumulative response-cache hit ratio.
func (j *CacheStatsJob) Run() {
	hits, misses := cache.Stats()
	total := hits + misses
	if total == 0 {
		return
	}
	logger.Infof("response cache: %d hits / %d misses (%.1f%% hit rate)",
		hits, misses, float64(hits)/float64(total)*100)
}
