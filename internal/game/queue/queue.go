// Package queue implements the initiative-ordered turn scheduler: one queue
// for the rest of the current round, one for the full next round.
package queue

import (
	"sort"

	"github.com/nandastone/AncientBeast/internal/model"
)

// Queue holds the two round sequences plus a scratch slot for a preview
// creature awaiting summon confirmation.
type Queue struct {
	current []*model.Creature
	next    []*model.Creature
	temp    *model.Creature
}

// New returns an empty queue.
func New() *Queue {
	return &Queue{}
}

// Initiative derives a creature's strict ordering value from its base
// initiative stat. The id tiebreak guarantees no two creatures ever compare
// equal: at the same stat, the lower id wins.
func Initiative(c *model.Creature) int {
	return c.BaseStats().Int(model.StatInitiative)*500 - c.ID
}

// AddByInitiative inserts a creature into the next-round queue immediately
// before the first entry that is either delayed or has strictly lower
// initiative. Ties go to whoever was queued first.
func (q *Queue) AddByInitiative(c *model.Creature) {
	ini := Initiative(c)
	pos := len(q.next)
	for i, cur := range q.next {
		if cur.Delayed || Initiative(cur) < ini {
			pos = i
			break
		}
	}
	q.next = append(q.next, nil)
	copy(q.next[pos+1:], q.next[pos:])
	q.next[pos] = c
}

// Dequeue pops the front of the current-round queue. Returns nil when the
// round is exhausted.
func (q *Queue) Dequeue() *model.Creature {
	if len(q.current) == 0 {
		return nil
	}
	c := q.current[0]
	q.current = q.current[1:]
	return c
}

// NextRound copies the next-round roster into the current queue, keeping
// whatever order it already has (including mid-round delay reorderings),
// then re-sorts the next-round queue by descending initiative so stat
// changes during this round affect the round after.
func (q *Queue) NextRound() {
	q.current = make([]*model.Creature, len(q.next))
	copy(q.current, q.next)
	sort.SliceStable(q.next, func(i, j int) bool {
		return Initiative(q.next[i]) > Initiative(q.next[j])
	})
}

// Delay postpones a creature's turn. The creature is removed from whichever
// queue holds it (the current queue, else the next-round queue; the active
// creature is in neither) and reinserted at the first position whose entry
// is a delayed creature with lower initiative, else appended. Delayed
// creatures therefore stay mutually ordered by initiative rather than
// strictly FIFO. The active creature (held by neither queue, though still
// scheduled for next round) re-enters the current round.
func (q *Queue) Delay(c *model.Creature, active bool) {
	c.Delayed = true
	if remove(&q.current, c) {
		q.current = insertDelayed(q.current, c)
		return
	}
	if !active && remove(&q.next, c) {
		q.next = insertDelayed(q.next, c)
		return
	}
	q.current = insertDelayed(q.current, c)
}

func insertDelayed(queue []*model.Creature, c *model.Creature) []*model.Creature {
	ini := Initiative(c)
	pos := len(queue)
	for i, cur := range queue {
		if cur.Delayed && Initiative(cur) < ini {
			pos = i
			break
		}
	}
	queue = append(queue, nil)
	copy(queue[pos+1:], queue[pos:])
	queue[pos] = c
	return queue
}

// Remove drops a creature from both queues (death, flee).
func (q *Queue) Remove(c *model.Creature) {
	remove(&q.current, c)
	remove(&q.next, c)
}

func remove(queue *[]*model.Creature, c *model.Creature) bool {
	for i, cur := range *queue {
		if cur == c {
			*queue = append((*queue)[:i], (*queue)[i+1:]...)
			return true
		}
	}
	return false
}

// IsCurrentEmpty reports whether the current round has no turns left.
func (q *Queue) IsCurrentEmpty() bool { return len(q.current) == 0 }

// IsNextEmpty reports whether the next round has no scheduled turns.
func (q *Queue) IsNextEmpty() bool { return len(q.next) == 0 }

// Current returns a snapshot of the remaining current-round order.
func (q *Queue) Current() []*model.Creature {
	out := make([]*model.Creature, len(q.current))
	copy(out, q.current)
	return out
}

// Next returns a snapshot of the next-round order.
func (q *Queue) Next() []*model.Creature {
	out := make([]*model.Creature, len(q.next))
	copy(out, q.next)
	return out
}

// SetTemp stores the preview creature shown in the queue UI while a summon
// awaits confirmation.
func (q *Queue) SetTemp(c *model.Creature) { q.temp = c }

// Temp returns the preview creature, or nil.
func (q *Queue) Temp() *model.Creature { return q.temp }

// ClearTemp discards the preview creature.
func (q *Queue) ClearTemp() { q.temp = nil }

// Reset empties the queue for match teardown.
func (q *Queue) Reset() {
	q.current = nil
	q.next = nil
	q.temp = nil
}
