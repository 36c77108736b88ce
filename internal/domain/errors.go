package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrUsernameTaken      = errors.New("el nombre de usuario ya está en uso")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")

	// Precondiciones del checkout, en el orden en que se verifican.
	ErrMissingPayment = errors.New("falta el número de tarjeta")
	ErrEmptyCart      = errors.New("el carrito está vacío")
	ErrMissingAddress = errors.New("falta la dirección de envío en el perfil")
	ErrNoBranch       = errors.New("no hay sucursales configuradas")
)
