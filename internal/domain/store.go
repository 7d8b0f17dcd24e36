package domain

// RosterStore persists a whole roster snapshot.
//
// Load either returns a complete roster or an error; it never returns a partial result.
type RosterStore interface {
	Save(r *Roster) error
	Load() (*Roster, error)
}
