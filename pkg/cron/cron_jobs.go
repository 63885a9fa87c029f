package cron

import (
	"strings"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"github.com/quannhg/graduation-invitation/internal/metrics"
	"github.com/quannhg/graduation-invitation/internal/services"
	"github.com/quannhg/graduation-invitation/pkg/utils"
)

func StartCronJob(cache *services.CachedPersonalizer, tally *metrics.Tally) *cron.Cron {
	c := cron.New()

	// Runs every 10 minutes — drop expired personalization entries
	_, err := c.AddFunc("*/10 * * * *", func() {
		PurgePersonalizationCache(cache)
	})
	if err != nil {
		utils.Logger.Errorf("Failed to schedule personalization cache purge: %v", err)
	}

	// Runs daily at midnight — log the RSVP tally
	_, err = c.AddFunc("0 0 * * *", func() {
		LogDailyTally(tally)
	})
	if err != nil {
		utils.Logger.Errorf("Failed to schedule daily RSVP tally: %v", err)
	}

	c.Start()
	utils.Logger.Info("Cron jobs started (cache purge every 10m, RSVP tally daily at midnight)")
	return c
}

func PurgePersonalizationCache(cache *services.CachedPersonalizer) int {
	if cache == nil {
		return 0
	}
	n := cache.Purge()
	if n > 0 {
		utils.Logger.Infof("Purged %d expired personalization entries", n)
	}
	return n
}

// LogDailyTally writes and resets the counts gathered since the last run.
func LogDailyTally(tally *metrics.Tally) map[string]int {
	if tally == nil {
		return nil
	}
	counts := tally.Drain()
	if len(counts) == 0 {
		utils.Logger.Info("No RSVP activity since the last tally")
		return counts
	}

	fields := logrus.Fields{}
	for k, n := range counts {
		fields[strings.ReplaceAll(k, "/", ".")] = n
	}
	utils.Logger.WithFields(fields).Info("Daily RSVP tally")
	return counts
}
