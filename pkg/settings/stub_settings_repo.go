package settings

import (
	"context"
	"errors"
)

type StubSettingsRepo struct {
	data map[string]string
	// FailReads makes every Get return an error, for fallback tests.
	FailReads bool
}

func NewStubSettingsRepo() *StubSettingsRepo {
	return &StubSettingsRepo{data: map[string]string{}}
}

func (s *StubSettingsRepo) Get(ctx context.Context, key string) (string, error) {
	if s.FailReads {
		return "", errors.New("stubbed read failure")
	}
	value, ok := s.data[key]
	if !ok {
		return "", ErrSettingNotFound
	}
	return value, nil
}

func (s *StubSettingsRepo) Set(ctx context.Context, key string, value string) error {
	s.data[key] = value
	return nil
}

func (s *StubSettingsRepo) Cleanup() {
	s.data = map[string]string{}
	s.FailReads = false
}
