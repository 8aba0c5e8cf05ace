// Package sqlite implementa el motor de almacenamiento local: un almacén de
// documentos con esquema versionado sobre SQLite embebido (modernc.org/sqlite).
// Cada colección es una tabla con el documento JSON y columnas de índice
// extraídas del documento al escribir.
package sqlite

import (
	"fmt"

	"github.com/lockre/lockre-pos/internal/domain"
)

// CurrentVersion es la versión de esquema que crea esta versión del programa.
const CurrentVersion = 2

// Nombres de colección del esquema durable.
const (
	CollectionUsers     = "users"
	CollectionProducts  = "products"
	CollectionSales     = "sales"
	CollectionCustomers = "customers"
	CollectionInventory = "inventory"
)

// Index describe un índice secundario sobre un campo del documento.
type Index struct {
	Name   string // nombre del índice
	Field  string // campo JSON del documento
	Unique bool
}

// Collection describe una colección persistida y sus índices.
type Collection struct {
	Name    string
	Indexes []Index
}

// Schema es el conjunto de colecciones a crear para llegar a una versión.
type Schema struct {
	Version     int
	Collections []Collection
	// Settings indica si la versión incluye la tabla clave/valor de configuración.
	Settings bool
}

// Historial de esquema: cada versión agrega colecciones o índices; nunca se
// elimina ni se modifica lo existente (migración puramente aditiva).
var schemaHistory = map[int]Schema{
	1: {
		Version: 1,
		Collections: []Collection{
			{Name: CollectionUsers, Indexes: []Index{
				{Name: "username", Field: "username", Unique: true},
				{Name: "role", Field: "role"},
			}},
			{Name: CollectionProducts, Indexes: []Index{
				{Name: "name", Field: "name"},
				{Name: "category", Field: "category"},
				{Name: "barcode", Field: "barcode", Unique: true},
			}},
		},
	},
	2: {
		Version: 2,
		Collections: []Collection{
			{Name: CollectionSales, Indexes: []Index{
				{Name: "date", Field: "date"},
				{Name: "vendorId", Field: "vendorId"},
				{Name: "total", Field: "total"},
			}},
			{Name: CollectionCustomers, Indexes: []Index{
				{Name: "phone", Field: "phone", Unique: true},
				{Name: "name", Field: "name"},
			}},
			{Name: CollectionInventory, Indexes: []Index{
				{Name: "productId", Field: "productId"},
				{Name: "quantity", Field: "quantity"},
			}},
		},
		Settings: true,
	},
}

// Migrate devuelve el esquema aditivo necesario para pasar de current a target.
// Es una función pura, invocada una sola vez al abrir el almacén.
// Falla con domain.ErrSchemaVersion si target es un downgrade o una versión
// que este programa no conoce.
func Migrate(current, target int) (Schema, error) {
	if current < 0 || target < current {
		return Schema{}, fmt.Errorf("migrar de v%d a v%d: %w", current, target, domain.ErrSchemaVersion)
	}
	if target > CurrentVersion {
		return Schema{}, fmt.Errorf("versión destino v%d desconocida: %w", target, domain.ErrSchemaVersion)
	}
	out := Schema{Version: target}
	for v := current + 1; v <= target; v++ {
		step := schemaHistory[v]
		out.Collections = append(out.Collections, step.Collections...)
		out.Settings = out.Settings || step.Settings
	}
	return out, nil
}

// schemaThrough devuelve todas las colecciones vigentes hasta la versión dada,
// para resolver índices en tiempo de ejecución.
func schemaThrough(version int) map[string]Collection {
	out := make(map[string]Collection)
	for v := 1; v <= version; v++ {
		for _, col := range schemaHistory[v].Collections {
			out[col.Name] = col
		}
	}
	return out
}
