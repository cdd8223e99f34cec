package scheduler

import "time"

// gapPool is the shared, mutable collection of free intervals one run carves
// its sessions out of. It is owned exclusively by a single run; gaps only
// ever shrink or disappear, which is what guarantees termination.
type gapPool struct {
	now  time.Time
	gaps []*Gap
}

func newGapPool(now time.Time, gaps []*Gap) *gapPool {
	return &gapPool{now: now, gaps: gaps}
}

func (p *gapPool) remove(target *Gap) {
	for i, g := range p.gaps {
		if g == target {
			p.gaps = append(p.gaps[:i], p.gaps[i+1:]...)
			return
		}
	}
}

// consume advances the gap past sessionEnd (plus an optional buffer) and
// drops it once the residual is no longer usable against the deadline.
func (p *gapPool) consume(gap *Gap, sessionEnd, deadline time.Time, buffer time.Duration) {
	if !sessionEnd.Before(gap.End) || !sessionEnd.Before(deadline) {
		p.remove(gap)
		return
	}
	newStart := sessionEnd.Add(buffer)
	if !newStart.Before(gap.End) {
		p.remove(gap)
		return
	}
	gap.Start = newStart
	gap.Duration = minutesBetween(newStart, gap.End)
	gap.Bucket = bucketFor(newStart)
	gap.HoursFromNow = newStart.Sub(p.now).Hours()
	if gap.Duration < MinUsableBlock {
		p.remove(gap)
	}
}
