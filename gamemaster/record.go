package gamemaster

import "kvinti/game"

// Entry is one position of a game together with the action that produced it.
// The first entry of a record has no action.
type Entry struct {
	Board       *game.Board
	Action      *game.Action
	Mover       game.Player
	Notation    string
	Fingerprint string
	Status      Status // status after this entry
}

// Record is the append-only history of a game. Going back to an earlier
// position truncates the record; play then continues by appending.
type Record struct {
	entries []Entry
}

func newRecord(initial Entry) *Record {
	return &Record{entries: []Entry{initial}}
}

func (r *Record) Len() int {
	return len(r.entries)
}

func (r *Record) At(index int) Entry {
	return r.entries[index]
}

func (r *Record) Latest() Entry {
	return r.entries[len(r.entries)-1]
}

// Entries returns a copy of the record.
func (r *Record) Entries() []Entry {
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

func (r *Record) append(e Entry) {
	r.entries = append(r.entries, e)
}

// truncate keeps entries 0..index.
func (r *Record) truncate(index int) {
	clear(r.entries[index+1:])
	r.entries = r.entries[:index+1]
}

// Occurrences counts the entries whose board has the given fingerprint.
func (r *Record) Occurrences(fingerprint string) int {
	n := 0
	for _, e := range r.entries {
		if e.Fingerprint == fingerprint {
			n++
		}
	}
	return n
}

// Moves counts the actions player has made in this record.
func (r *Record) Moves(player game.Player) int {
	n := 0
	for _, e := range r.entries[1:] {
		if e.Mover == player {
			n++
		}
	}
	return n
}
