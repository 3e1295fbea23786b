package db

// initialSchemaFile is the first SQLite migration, which is also the
// authoritative schema for tests.
const initialSchemaFile = "migrations/sqlite/000001_init.up.sql"

// GetSchemaSQL returns the authoritative schema SQL for use by tests.
// Tests should use this instead of hardcoding their own schema to prevent drift.
//
// When a migration adds or changes columns, extend this to concatenate the
// later up-files in order.
func GetSchemaSQL() string {
	data, err := migrationsFS.ReadFile(initialSchemaFile)
	if err != nil {
		// The file is embedded at build time; a miss is a build defect.
		panic("db: embedded schema missing: " + err.Error())
	}
	return string(data)
}
