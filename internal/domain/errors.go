package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrConflict          = errors.New("conflicto con el estado actual")
	ErrInsufficientStock = errors.New("stock insuficiente")

	// ErrAlreadyCorrected: el movimiento ya tiene una corrección enlazada;
	// cada movimiento admite a lo sumo una corrección.
	ErrAlreadyCorrected = errors.New("el movimiento ya fue corregido")
	// ErrCorrectionTarget: una corrección nunca puede ser objetivo de otra corrección.
	ErrCorrectionTarget = errors.New("no se puede corregir una corrección")
)
