package services

import (
	"bytes"
	"encoding/json"
	"sort"
)

const DefaultTopN = 5

// Breakdown maps a category label (platform, doc type, queue) to a summed
// document count. Labels keep their first-insertion order, which is what
// TopN uses to break ties.
type Breakdown struct {
	keys   []string
	counts map[string]int64
}

func NewBreakdown() *Breakdown {
	return &Breakdown{counts: map[string]int64{}}
}

// Add increments label by n. Empty labels are not a category and are ignored.
func (b *Breakdown) Add(label string, n int64) {
	if label == "" {
		return
	}
	if _, ok := b.counts[label]; !ok {
		b.keys = append(b.keys, label)
	}
	b.counts[label] += n
}

func (b *Breakdown) Get(label string) int64 {
	return b.counts[label]
}

func (b *Breakdown) Len() int {
	return len(b.keys)
}

func (b *Breakdown) Keys() []string {
	return append([]string(nil), b.keys...)
}

// MarshalJSON writes a plain object with keys in insertion order.
func (b *Breakdown) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range b.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(b.counts[k])
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

type RankedItem struct {
	Name  string `json:"name"`
	Count int64  `json:"count"`
}

// TopN returns at most n categories ordered by count, highest first. Equal
// counts keep insertion order.
func TopN(b *Breakdown, n int) []RankedItem {
	items := []RankedItem{}
	if b == nil || n <= 0 {
		return items
	}
	for _, k := range b.keys {
		items = append(items, RankedItem{Name: k, Count: b.counts[k]})
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Count > items[j].Count
	})
	if len(items) > n {
		items = items[:n]
	}
	return items
}
