package category

// Category is a flat tag requests are classified under.
type Category struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:80;not null;unique" json:"name"`
}
