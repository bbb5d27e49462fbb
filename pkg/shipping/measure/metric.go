package measure

import (
	"sync"
	"time"
)

type DefaultMetric struct {
	mu          *sync.Mutex
	stepElapsed time.Duration
	runs        int64
	created     int64
}

func (mt *DefaultMetric) AddDuration(elapsed time.Duration) {
	mt.mu.Lock()
	defer mt.mu.Unlock()
	mt.runs++
	mt.stepElapsed += elapsed
}

func (mt *DefaultMetric) AddCount(created int64) {
	mt.mu.Lock()
	defer mt.mu.Unlock()
	mt.created += created
}

func (mt *DefaultMetric) AVGDuration() time.Duration {
	mt.mu.Lock()
	defer mt.mu.Unlock()
	if mt.runs == 0 {
		return time.Duration(0)
	}

	return round(time.Duration(float64(mt.stepElapsed) / float64(mt.runs)))
}

func (mt *DefaultMetric) TotalDuration() time.Duration {
	mt.mu.Lock()
	defer mt.mu.Unlock()

	return mt.stepElapsed
}

func (mt *DefaultMetric) Count() int64 {
	mt.mu.Lock()
	defer mt.mu.Unlock()

	return mt.created
}

func round(d time.Duration) time.Duration {
	switch {
	case d > time.Second:
		d = d.Round(time.Second)
	case d > time.Millisecond:
		d = d.Round(time.Millisecond)
	case d > time.Microsecond:
		d = d.Round(time.Microsecond)
	}

	return d
}
