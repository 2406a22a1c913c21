package repository

import "gorm.io/gorm"

// AutoMigrate creates the legacy-named relations. Production Postgres also
// carries an exclusion constraint (idx_no_double_booking, btree_gist over
// space_id and the booking interval) created by migration scripts; it is
// the write-time backstop against double-booking a space.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&spaceTypeModel{},
		&spaceModel{},
		&serviceModel{},
		&customerModel{},
		&bookingModel{},
		&bookingDetailModel{},
		&bookingServiceGroupModel{},
		&serviceSelectionModel{},
		&invoiceModel{},
	)
}
