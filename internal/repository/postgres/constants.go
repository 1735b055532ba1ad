package postgres

import (
	"fmt"
	"time"
)

const (
	poolHealthCheckPeriod = time.Minute
	poolMaxConnLifetime   = time.Hour
	poolMaxConnIdleTime   = 30 * time.Minute
	dbPingTimeout         = 5 * time.Second

	errAccountNotFound = "account not found"
	errRecordNotFound  = "record not found"
	errAccountExists   = "account with this email or username already exists"
	errRecordExists    = "record with this email already exists"

	errFailedParseDatabaseConfigFmt  = "failed to parse database config: %w"
	errFailedCreateConnectionPoolFmt = "failed to create connection pool: %w"
	errFailedPingDatabaseFmt         = "failed to ping database: %w"
	errFailedEnsureSchemaFmt         = "failed to ensure schema: %w"

	errFailedCreateAccountFmt = "failed to create account: %w"
	errFailedGetAccountFmt    = "failed to get account: %w"

	errFailedCreateRecordFmt = "failed to create record: %w"
	errFailedListRecordsFmt  = "failed to list records: %w"
	errFailedScanRecordFmt   = "failed to scan record: %w"
	errIterateRecordsFmt     = "error iterating records: %w"
	errFailedUpdateRecordFmt = "failed to update record: %w"
	errFailedDeleteRecordFmt = "failed to delete record: %w"
)

var (
	errFailedCreateAccount        = func(err error) error { return fmt.Errorf(errFailedCreateAccountFmt, err) }
	errFailedCreateConnectionPool = func(err error) error { return fmt.Errorf(errFailedCreateConnectionPoolFmt, err) }
	errFailedCreateRecord         = func(err error) error { return fmt.Errorf(errFailedCreateRecordFmt, err) }
	errFailedDeleteRecord         = func(err error) error { return fmt.Errorf(errFailedDeleteRecordFmt, err) }
	errFailedEnsureSchema         = func(err error) error { return fmt.Errorf(errFailedEnsureSchemaFmt, err) }
	errFailedGetAccount           = func(err error) error { return fmt.Errorf(errFailedGetAccountFmt, err) }
	errFailedListRecords          = func(err error) error { return fmt.Errorf(errFailedListRecordsFmt, err) }
	errFailedParseDatabaseConfig  = func(err error) error { return fmt.Errorf(errFailedParseDatabaseConfigFmt, err) }
	errFailedPingDatabase         = func(err error) error { return fmt.Errorf(errFailedPingDatabaseFmt, err) }
	errFailedScanRecord           = func(err error) error { return fmt.Errorf(errFailedScanRecordFmt, err) }
	errFailedUpdateRecord         = func(err error) error { return fmt.Errorf(errFailedUpdateRecordFmt, err) }
	errIterateRecords             = func(err error) error { return fmt.Errorf(errIterateRecordsFmt, err) }
)
