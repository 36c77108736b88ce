// Package db expone el esquema SQL embebido de la aplicación.
package db

import _ "embed"

// Schema contiene el DDL de todas las tablas de la tienda.
//
//go:embed migrations/001_schema.sql
var Schema string
