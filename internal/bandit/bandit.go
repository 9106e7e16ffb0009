// Package bandit implements the adaptive offset policy: an epsilon-greedy
// bandit over a small set of candidate minute offsets, rewarded by how
// close a "taken" tap landed to the scheduled instant.
package bandit

import (
	"math/rand"
	"time"

	"github.com/Shahd3/iCare/internal/timerule"
	"github.com/Shahd3/iCare/pkg/entity"
)

// Candidate offsets in minutes around the nominal time. The zero arm is
// always present so a fresh reminder starts unshifted.
var DefaultArms = []int{-30, -15, -5, 0, 5, 15, 30}

const (
	defaultEpsilon = 0.1
	// means closer than this are a tie, resolved toward the incumbent
	tieMargin = 0.05
	// reward hits its floor at this deviation
	maxDeviationMin = 120.0
)

// Outcome is what one learning step produced.
type Outcome struct {
	Reward        float64
	OffsetMin     int
	SuggestedTime string
}

type Policy struct {
	arms    []int
	epsilon float64
	rng     *rand.Rand
}

// New builds a policy with the default arm set. The seed makes arm
// exploration reproducible.
func New(seed int64) *Policy {
	return &Policy{
		arms:    DefaultArms,
		epsilon: defaultEpsilon,
		rng:     rand.New(rand.NewSource(seed)),
	}
}

// ApplyTaken runs one bandit step for a tap at `now`: score the tap
// against the currently scheduled instant, credit the active arm, then
// pick the offset for the next occurrence. The reminder's inline arm
// stats are updated in place so learning survives restarts with the
// record itself.
func (p *Policy) ApplyTaken(r *entity.Reminder, now time.Time) (Outcome, error) {
	hour, minute, err := timerule.ParseClock(r.Time)
	if err != nil {
		return Outcome{}, err
	}
	p.ensureArms(r)

	sh, sm := timerule.ShiftClock(hour, minute, r.CurrentOffsetMin)
	scheduled := time.Date(now.Year(), now.Month(), now.Day(), sh, sm, 0, 0, now.Location())
	reward := rewardFor(now.Sub(scheduled))

	p.credit(r, r.CurrentOffsetMin, reward)
	next := p.selectArm(r)

	nh, nm := timerule.ShiftClock(hour, minute, next)
	r.CurrentOffsetMin = next
	return Outcome{
		Reward:        reward,
		OffsetMin:     next,
		SuggestedTime: timerule.FormatClock(nh, nm),
	}, nil
}

// rewardFor maps |tap - scheduled| to [-1, 1], monotonically decreasing:
// 1.0 on the dot, 0 at one hour off, floored at -1 past two hours.
func rewardFor(delta time.Duration) float64 {
	dev := delta.Minutes()
	if dev < 0 {
		dev = -dev
	}
	if dev > maxDeviationMin {
		dev = maxDeviationMin
	}
	return 1.0 - dev/60.0
}

func (p *Policy) ensureArms(r *entity.Reminder) {
	if len(r.Arms) == len(p.arms) {
		return
	}
	r.Arms = make([]entity.ArmStat, len(p.arms))
	for i, off := range p.arms {
		r.Arms[i] = entity.ArmStat{OffsetMin: off}
	}
}

// credit updates the running mean of the arm matching the offset the tap
// was observed under. Incremental form, no history kept. An offset outside
// the arm set (records persisted under an older set) credits the nearest
// arm so the reward isn't dropped.
func (p *Policy) credit(r *entity.Reminder, offsetMin int, reward float64) {
	if len(r.Arms) == 0 {
		return
	}
	best := 0
	for i := range r.Arms {
		if absInt(r.Arms[i].OffsetMin-offsetMin) < absInt(r.Arms[best].OffsetMin-offsetMin) {
			best = i
		}
	}
	r.Arms[best].Count++
	r.Arms[best].Mean += (reward - r.Arms[best].Mean) / float64(r.Arms[best].Count)
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// selectArm is epsilon-greedy with a stability bias: on near-ties the
// incumbent offset wins, so low reward variance doesn't make the schedule
// oscillate between passes.
func (p *Policy) selectArm(r *entity.Reminder) int {
	if p.rng.Float64() < p.epsilon {
		return r.Arms[p.rng.Intn(len(r.Arms))].OffsetMin
	}
	best := 0
	for i := range r.Arms {
		if r.Arms[i].Mean > r.Arms[best].Mean {
			best = i
		}
	}
	incumbent := -1
	for i := range r.Arms {
		if r.Arms[i].OffsetMin == r.CurrentOffsetMin {
			incumbent = i
			break
		}
	}
	if incumbent >= 0 && r.Arms[best].Mean-r.Arms[incumbent].Mean < tieMargin {
		return r.Arms[incumbent].OffsetMin
	}
	return r.Arms[best].OffsetMin
}
