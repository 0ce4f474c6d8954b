/*
Copyright © 2019 the Geostamp authors.
This file is part of Geostamp.

Geostamp is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

Geostamp is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with Geostamp.  If not, see <http://www.gnu.org/licenses/>.
*/

package stampgen

import (
	"math/rand"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/spatialmodel/geostamp"
)

// Generate builds cfg.Count stamps with centers scattered uniformly
// over cfg.Bounds, on a pool of cfg.Workers concurrent workers.
//
// The scatter of centers and angles is drawn up front from cfg.Seed,
// so the result is deterministic for a given configuration regardless
// of worker interleaving. The first error aborts the batch; no partial
// result is returned.
func Generate(cfg *Config) ([]*geostamp.Stamp, error) {
	if err := cfg.setDefaults(); err != nil {
		return nil, err
	}

	type job struct {
		i        int
		lon, lat float64
		angle    float64
	}
	rng := rand.New(rand.NewSource(cfg.Seed))
	jobs := make([]job, cfg.Count)
	for i := range jobs {
		jobs[i] = job{
			i:   i,
			lon: cfg.Bounds.MinLon + rng.Float64()*(cfg.Bounds.MaxLon-cfg.Bounds.MinLon),
			lat: cfg.Bounds.MinLat + rng.Float64()*(cfg.Bounds.MaxLat-cfg.Bounds.MinLat),
		}
		if cfg.Angle != nil {
			jobs[i].angle = *cfg.Angle
		} else {
			jobs[i].angle = rng.Float64() * 360
		}
	}

	logrus.WithFields(logrus.Fields{
		"count":   cfg.Count,
		"workers": cfg.Workers,
		"edgeKm":  cfg.EdgeLengthKm,
	}).Info("generating stamps")

	stamps := make([]*geostamp.Stamp, cfg.Count)
	jobChan := make(chan job)
	var (
		wg       sync.WaitGroup
		mx       sync.Mutex
		firstErr error
	)
	for w := 0; w < cfg.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobChan {
				mx.Lock()
				failed := firstErr != nil
				mx.Unlock()
				if failed {
					continue // drain remaining jobs without working
				}
				s, err := geostamp.NewStamp(j.lon, j.lat, j.angle,
					cfg.EdgeLengthKm, cfg.Width, cfg.Height)
				if err != nil {
					mx.Lock()
					if firstErr == nil {
						firstErr = err
					}
					mx.Unlock()
					continue
				}
				stamps[j.i] = s
			}
		}()
	}
	for _, j := range jobs {
		jobChan <- j
	}
	close(jobChan)
	wg.Wait()

	if firstErr != nil {
		logrus.WithError(firstErr).Error("stamp generation failed")
		return nil, firstErr
	}
	logrus.WithField("count", len(stamps)).Info("stamp generation finished")
	return stamps, nil
}
