package model

// Food is one orderable menu item as stored in the foods table.
// JSON keys mirror the column names so list responses look like the raw rows.
// Input is never validated, so any column but id may hold NULL.
type Food struct {
	ID          int64    `json:"id"`
	Name        *string  `json:"name" extensions:"x-nullable"`
	Price       *float64 `json:"price" extensions:"x-nullable"`
	Category    *string  `json:"category" extensions:"x-nullable"`
	Description *string  `json:"description" extensions:"x-nullable"`
	ImageURL    *string  `json:"image_url" extensions:"x-nullable"`
}

// FoodInput carries the caller-supplied columns for create and update.
// A nil field was absent from the request and is written as NULL.
// Values are not validated here; the database enforces its own constraints.
type FoodInput struct {
	Name        *string
	Price       *string
	Category    *string
	Description *string
}

// Args returns the four input columns in statement order.
func (in FoodInput) Args() []any {
	return []any{nullable(in.Name), nullable(in.Price), nullable(in.Category), nullable(in.Description)}
}

func nullable(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}
