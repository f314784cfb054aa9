package entities

// EntityTypeItem identifies inventory items for core.Entity consumers
const EntityTypeItem = "item"

// Item is an inventory entry. IDs are assigned by the store at
// insertion time.
type Item struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Type        string `json:"type"`
	Description string `json:"description"`
}

// GetID implements core.Entity
func (i *Item) GetID() string {
	return i.ID
}

// GetType implements core.Entity
func (i *Item) GetType() string {
	return EntityTypeItem
}
