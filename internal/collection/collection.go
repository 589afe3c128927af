// Package collection implements copy-on-write list editing over ordered
// sequences of records identified by a string id.
package collection

// Record is implemented by every value type stored in a collection.
type Record[T any] interface {
	RecordID() string
	WithID(id string) T
}

// Position decides where Add places a new record.
type Position int

const (
	Append Position = iota
	Prepend
)

func (p Position) String() string {
	if p == Prepend {
		return "prepend"
	}
	return "append"
}

// Add assigns a fresh id to r and returns a new slice holding it at pos,
// along with the id. Ids already present in c are skipped. c is never
// modified.
func Add[T Record[T]](c []T, r T, pos Position, gen IDGenerator) ([]T, string) {
	id := gen.NewID()
	for range len(c) {
		if _, taken := Find(c, id); !taken {
			break
		}
		id = gen.NewID()
	}
	r = r.WithID(id)
	out := make([]T, 0, len(c)+1)
	if pos == Prepend {
		out = append(out, r)
		out = append(out, c...)
	} else {
		out = append(out, c...)
		out = append(out, r)
	}
	return out, id
}

// Update returns a new slice in which the record carrying id is replaced by
// set(record). Every other record is copied as is. An unknown id yields an
// equivalent copy of c.
func Update[T Record[T]](c []T, id string, set func(T) T) []T {
	out := make([]T, len(c))
	for i, r := range c {
		if r.RecordID() == id {
			out[i] = set(r)
			continue
		}
		out[i] = r
	}
	return out
}

// Remove returns a new slice without the record carrying id. An unknown id
// yields an equivalent copy of c.
func Remove[T Record[T]](c []T, id string) []T {
	out := make([]T, 0, len(c))
	for _, r := range c {
		if r.RecordID() == id {
			continue
		}
		out = append(out, r)
	}
	return out
}

// Find returns the record carrying id.
func Find[T Record[T]](c []T, id string) (T, bool) {
	for _, r := range c {
		if r.RecordID() == id {
			return r, true
		}
	}
	var zero T
	return zero, false
}
