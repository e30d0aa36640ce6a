package service

import (
	"context"
	"sync"
	"time"

	"github.com/orbitwatch/orbitwatch/internal/feeds/launchlib"
	"github.com/orbitwatch/orbitwatch/pkg/constellation"
)

// refreshLive builds the live launch view from Launch Library's upcoming
// and previous queries, fetched concurrently. One side failing degrades the
// view; both failing surfaces an error.
func (s *Service) refreshLive(ctx context.Context) (constellation.LiveLaunchData, error) {
	var (
		upcoming, previous []launchlib.Launch
		upErr, prevErr     error
		wg                 sync.WaitGroup
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		upcoming, upErr = s.schedule.Upcoming(ctx, scheduleQuery, 1)
	}()
	go func() {
		defer wg.Done()
		previous, prevErr = s.schedule.Previous(ctx, scheduleQuery, pastLimit)
	}()
	wg.Wait()

	if upErr != nil && prevErr != nil {
		return constellation.LiveLaunchData{}, upErr
	}
	if upErr != nil {
		s.logger.Warn().Err(upErr).Msg("Launch Library upcoming query unavailable")
	}
	if prevErr != nil {
		s.logger.Warn().Err(prevErr).Msg("Launch Library previous query unavailable")
	}

	data := constellation.LiveLaunchData{
		RecentPastLaunches: make([]constellation.PastLaunch, 0, len(previous)),
	}

	if len(upcoming) > 0 {
		next := buildNextLaunch(upcoming[0])
		data.NextLaunch = &next
		data.IsLiveNow = upcoming[0].WebcastLive || upcoming[0].Status.Abbrev == "In Flight"

		if t, err := time.Parse(time.RFC3339, upcoming[0].Net); err == nil {
			if secs := int64(t.Sub(s.now()).Seconds()); secs > 0 {
				data.CountdownSeconds = &secs
			}
		}
	}

	for _, ll := range previous {
		data.RecentPastLaunches = append(data.RecentPastLaunches, constellation.PastLaunch{
			ID:       ll.ID,
			Name:     ll.Name,
			Net:      ll.Net,
			Status:   ll.Status.Abbrev,
			Webcasts: webcastLinks(ll),
			Image:    ll.Image,
		})
	}

	return data, nil
}

func buildNextLaunch(ll launchlib.Launch) constellation.NextLaunch {
	next := constellation.NextLaunch{
		ID:                ll.ID,
		Name:              ll.Name,
		Net:               ll.Net,
		Status:            ll.Status.Abbrev,
		StatusDescription: ll.Status.Description,
		RocketName:        "Falcon 9",
		PadName:           "Unknown",
		PadLocation:       "Unknown",
		Image:             ll.Image,
		Webcasts:          webcastLinks(ll),
	}

	if ll.Mission != nil {
		next.MissionDescription = ll.Mission.Description
	}
	if ll.Rocket != nil {
		if ll.Rocket.Configuration != nil && ll.Rocket.Configuration.Name != "" {
			next.RocketName = ll.Rocket.Configuration.Name
		}
		for _, stage := range ll.Rocket.LauncherStage {
			if stage.Launcher != nil && stage.Launcher.SerialNumber != "" {
				next.Booster = &constellation.BoosterRecord{
					Serial:  stage.Launcher.SerialNumber,
					Flights: stage.Launcher.Flights,
				}
				break
			}
		}
	}
	if ll.Pad != nil {
		if ll.Pad.Name != "" {
			next.PadName = ll.Pad.Name
		}
		if ll.Pad.Location != nil && ll.Pad.Location.Name != "" {
			next.PadLocation = ll.Pad.Location.Name
		}
	}

	return next
}

func webcastLinks(ll launchlib.Launch) []constellation.WebcastLink {
	links := make([]constellation.WebcastLink, 0, len(ll.VidURLs))
	for _, vid := range ll.VidURLs {
		source := vid.Source
		if source == "" {
			source = vid.Publisher
		}
		links = append(links, constellation.WebcastLink{
			URL:    vid.URL,
			Title:  vid.Title,
			Source: source,
			Live:   ll.WebcastLive,
		})
	}
	return links
}
