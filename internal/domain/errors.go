package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrStaffNotFound      = errors.New("usuario de staff no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrInvalidStatus      = errors.New("estado de traslado no reconocido")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrHasAdjustments     = errors.New("el traslado tiene ajustes de stock asociados")

	// ErrInsufficientStock: la sucursal origen no tiene stock suficiente para completar el traslado.
	ErrInsufficientStock = errors.New("stock insuficiente en sucursal origen")
	// ErrInsufficientStockForReversal: la sucursal destino ya no conserva stock
	// suficiente para devolver (pudo haberse vendido o movido después de completar).
	ErrInsufficientStockForReversal = errors.New("stock insuficiente en destino para revertir el traslado")
)
