package onboarding

import "errors"

var (
	ErrNoActivitiesSelected     = errors.New("at least one activity must be selected")
	ErrFailedToOpenDBConnection = errors.New("failed to open db connection")
	ErrFailedToParseDBConfig    = errors.New("failed to parse db config")
	ErrFailedToApplyMigrations  = errors.New("failed to apply migrations")
	ErrFailedToConnectToMongo   = errors.New("failed to connect to mongo")
)
