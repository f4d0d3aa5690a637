package model

import "time"

// VendorStat summarizes the training history for one normalized vendor.
type VendorStat struct {
	Vendor       string
	TopCategory  string
	Transactions int
}

// CategoryStat is the aggregate record count for one category.
type CategoryStat struct {
	Category string
	Records  int
}

// StatsReport is a read-only summary of the currently trained model.
type StatsReport struct {
	TrainedAt        *time.Time
	TopVendors       []VendorStat
	CategoryCoverage []CategoryStat
	TotalRecords     int
	TotalCategories  int
	TotalVendors     int
}
