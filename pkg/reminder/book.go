package reminder

import (
	"sort"

	"tableflip.dev/remcal/pkg/calendar"
)

// Book holds the in-memory reminders of a single container, keyed by day.
// Nothing is persisted; a Book lives as long as its owner.
type Book struct {
	byDay map[calendar.Date][]Record
}

// NewBook returns an empty Book.
func NewBook() *Book {
	return &Book{byDay: make(map[calendar.Date][]Record)}
}

// ForDay returns copies of the records stored for day, ordered by time.
func (b *Book) ForDay(day calendar.Date) []Record {
	records := b.byDay[day]
	if len(records) == 0 {
		return nil
	}
	out := append([]Record(nil), records...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Time < out[j].Time })
	return out
}

// First returns the earliest record for day.
func (b *Book) First(day calendar.Date) (Record, bool) {
	records := b.ForDay(day)
	if len(records) == 0 {
		return Record{}, false
	}
	return records[0], true
}

// Put inserts or replaces r, moving it if its day changed.
func (b *Book) Put(r Record) {
	b.Delete(r.ID)
	b.byDay[r.Day] = append(b.byDay[r.Day], r)
}

// Delete drops the record with id. It reports whether one was removed.
func (b *Book) Delete(id string) bool {
	for day, records := range b.byDay {
		for i, r := range records {
			if r.ID != id {
				continue
			}
			records = append(records[:i:i], records[i+1:]...)
			if len(records) == 0 {
				delete(b.byDay, day)
			} else {
				b.byDay[day] = records
			}
			return true
		}
	}
	return false
}

// Thumbnails returns the display projections for day.
func (b *Book) Thumbnails(day calendar.Date) []Thumbnail {
	records := b.ForDay(day)
	out := make([]Thumbnail, 0, len(records))
	for _, r := range records {
		out = append(out, r.Thumbnail())
	}
	return out
}

// Len returns the total number of records.
func (b *Book) Len() int {
	n := 0
	for _, records := range b.byDay {
		n += len(records)
	}
	return n
}
