package models

import "gorm.io/gorm"

// Tables lists the journal models in creation order.
func Tables() []interface{} {
	return []interface{}{
		&Author{},
		&Editor{},
		&Reviewer{},
		&LoginToRole{},
		&Manuscript{},
		&SecondaryAuthor{},
		&Review{},
		&ReviewerExpertise{},
	}
}

// AutoMigrate creates the journal tables. Production MySQL schemas are managed
// outside the application; this is used for sqlite databases and tests.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(Tables()...)
}

// MissingTables returns the models whose table does not exist yet.
func MissingTables(db *gorm.DB) []interface{} {
	var missing []interface{}
	for _, table := range Tables() {
		if !db.Migrator().HasTable(table) {
			missing = append(missing, table)
		}
	}
	return missing
}
