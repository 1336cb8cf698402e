package models

// Expense categories offered to students in the app
const (
	CategoryFood          = "Food"
	CategoryMess          = "Mess"
	CategoryCanteen       = "Canteen"
	CategoryGroceries     = "Groceries"
	CategoryTransport     = "Transport"
	CategoryTravel        = "Travel"
	CategoryRentHostel    = "Rent/Hostel"
	CategoryEducation     = "Education"
	CategoryFeesExam      = "Fees/Exam"
	CategoryRecharge      = "Recharge/Subscriptions"
	CategoryEntertainment = "Entertainment"
	CategoryHealthcare    = "Healthcare"
	CategoryShopping      = "Shopping"
	CategoryOthers        = "Others"
)

// AllCategories returns all valid expense category constants
func AllCategories() []string {
	return []string{
		CategoryFood,
		CategoryMess,
		CategoryCanteen,
		CategoryGroceries,
		CategoryTransport,
		CategoryTravel,
		CategoryRentHostel,
		CategoryEducation,
		CategoryFeesExam,
		CategoryRecharge,
		CategoryEntertainment,
		CategoryHealthcare,
		CategoryShopping,
		CategoryOthers,
	}
}

// IsValidCategory checks if a category string is valid
func IsValidCategory(category string) bool {
	for _, validCategory := range AllCategories() {
		if category == validCategory {
			return true
		}
	}
	return false
}
