package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")
)

// Errores del núcleo transaccional (ventas, compras y mermas).
// Los procesadores los devuelven envueltos con el nombre del producto afectado;
// clasificar siempre con errors.Is, nunca por comparación directa.
var (
	ErrVendedorInvalido  = errors.New("ID de vendedor no válido")
	ErrCarritoVacio      = errors.New("el carrito está vacío")
	ErrProveedorInvalido = errors.New("ID de proveedor no válido")
	ErrCompraVacia       = errors.New("la orden de compra está vacía")
	ErrProductoNoExiste  = errors.New("el producto no existe")
	ErrStockInsuficiente = errors.New("stock insuficiente")
	ErrExcedeStock       = errors.New("la cantidad a dar de baja excede el stock actual")
)
