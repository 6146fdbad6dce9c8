package tenant

import "gorm.io/gorm"

// Scope restricts a query to one company. Pass a table alias when the
// query joins other company-owned tables.
func Scope(companyID string, alias ...string) func(db *gorm.DB) *gorm.DB {
	column := "company_id"
	if len(alias) > 0 && alias[0] != "" {
		column = alias[0] + ".company_id"
	}
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(column+" = ?", companyID)
	}
}
