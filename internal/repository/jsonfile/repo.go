package jsonfile

import (
	"github.com/rs/zerolog"

	"payroll-bot/internal/domain"
)

// Repo is a domain.RosterStore backed by one JSON file.
type Repo struct {
	Path string
	Log  zerolog.Logger
}

func NewRepo(path string, log zerolog.Logger) *Repo {
	return &Repo{Path: path, Log: log}
}

func (r *Repo) Save(roster *domain.Roster) error {
	if err := Write(roster, r.Path); err != nil {
		return err
	}
	r.Log.Debug().Str("path", r.Path).Int("employees", roster.Count()).Msg("roster written")
	return nil
}

func (r *Repo) Load() (*domain.Roster, error) {
	roster, skipped, err := readFile(r.Path)
	if err != nil {
		return nil, err
	}
	if skipped > 0 {
		r.Log.Warn().Str("path", r.Path).Int("skipped", skipped).Msg("duplicate employees dropped while loading")
	}
	return roster, nil
}
