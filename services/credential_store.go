package services

import "footballclub/models"

// CredentialStore resolves login records by username. A missing username
// is reported with ok == false and is not an error.
type CredentialStore interface {
	Lookup(username string) (models.Credential, bool)
}

// StaticCredentialStore is a read-only store filled once at startup.
type StaticCredentialStore struct {
	records map[string]models.Credential
}

func NewStaticCredentialStore(creds []models.Credential) *StaticCredentialStore {
	records := make(map[string]models.Credential, len(creds))
	for _, c := range creds {
		records[c.Username] = c
	}
	return &StaticCredentialStore{records: records}
}

func (s *StaticCredentialStore) Lookup(username string) (models.Credential, bool) {
	c, ok := s.records[username]
	return c, ok
}

func (s *StaticCredentialStore) Len() int {
	return len(s.records)
}
