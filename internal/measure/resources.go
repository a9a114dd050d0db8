package measure

import (
	"time"

	"github.com/shirou/gopsutil/v3/process"
)

// Resources summarizes what the child consumed while it ran.
// Sampling is best effort: short-lived processes may exit between
// polls, in which case the summary stays at zero.
type Resources struct {
	PeakRSSBytes uint64  `json:"peak_rss_bytes"`
	CPUPercent   float64 `json:"cpu_percent"`
	Samples      int     `json:"samples"`
}

type sampler struct {
	done     chan struct{}
	result   chan *Resources
	pid      int32
	interval time.Duration
}

func startSampler(pid int, interval time.Duration) *sampler {
	s := &sampler{
		done:     make(chan struct{}),
		result:   make(chan *Resources, 1),
		pid:      int32(pid),
		interval: interval,
	}
	go s.loop()
	return s
}

func (s *sampler) loop() {
	res := &Resources{}
	defer func() { s.result <- res }()

	proc, err := process.NewProcess(s.pid)
	if err != nil {
		return
	}

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.done:
			return
		case <-ticker.C:
			if mem, err := proc.MemoryInfo(); err == nil && mem.RSS > res.PeakRSSBytes {
				res.PeakRSSBytes = mem.RSS
			}
			if cpu, err := proc.CPUPercent(); err == nil && cpu > res.CPUPercent {
				res.CPUPercent = cpu
			}
			res.Samples++
		}
	}
}

// stop ends sampling and returns the collected summary
func (s *sampler) stop() *Resources {
	close(s.done)
	return <-s.result
}
