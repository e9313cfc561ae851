package domain

// MenuItem is a dish on the public menu. JSON keys match the wire
// contract the Vue frontend consumes.
type MenuItem struct {
	ID          int64   `json:"id" bson:"_id"`
	Name        string  `json:"nombre" bson:"nombre"`
	Description string  `json:"descripcion" bson:"descripcion"`
	Price       float64 `json:"precio" bson:"precio"`
	Category    string  `json:"categoria" bson:"categoria"`
	Available   bool    `json:"disponible" bson:"disponible"`
	Image       string  `json:"imagen,omitempty" bson:"imagen,omitempty"`
}
