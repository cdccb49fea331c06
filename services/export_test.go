package services

import "time"

var TranslateDBError = translateDBError

func (s *TokenService) SetClock(now func() time.Time) {
	s.now = now
}
