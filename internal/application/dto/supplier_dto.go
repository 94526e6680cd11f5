package dto

// SupplierRequest alta o edición de proveedor.
type SupplierRequest struct {
	Nombre    string `json:"nombre" validate:"required,min=2"`
	Telefono  string `json:"telefono"`
	Email     string `json:"email" validate:"omitempty,email"`
	Direccion string `json:"direccion"`
}

// SupplierResponse representación HTTP de un proveedor.
type SupplierResponse struct {
	ID        string `json:"id"`
	Nombre    string `json:"nombre"`
	Telefono  string `json:"telefono,omitempty"`
	Email     string `json:"email,omitempty"`
	Direccion string `json:"direccion,omitempty"`
}

// CategoryRequest alta de categoría.
type CategoryRequest struct {
	Nombre string `json:"nombre" validate:"required,min=2"`
}

// CategoryResponse representación HTTP de una categoría.
type CategoryResponse struct {
	ID     string `json:"id"`
	Nombre string `json:"nombre"`
}
