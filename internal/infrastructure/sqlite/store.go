package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"github.com/lockre/lockre-pos/internal/domain"
	_ "modernc.org/sqlite"
)

// Record es un documento persistido junto con el identificador que el motor
// le asignó al crearlo. El identificador nunca se reutiliza ni se modifica.
type Record struct {
	ID  int64
	Doc json.RawMessage
}

// Store es el motor de almacenamiento: CRUD y consultas por índice/rango sobre
// colecciones de documentos, con transacciones serializables por operación.
//
// Un único proceso por archivo de datos: instancias concurrentes contra el
// mismo archivo son comportamiento indefinido (limitación documentada).
type Store struct {
	db          *sql.DB
	version     int
	collections map[string]Collection

	// Un mutex por colección: los escritores de una colección se encolan;
	// lecturas y escrituras sobre colecciones distintas no se bloquean entre sí.
	writeMu map[string]*sync.Mutex
}

// Open abre (o crea) el almacén en path y aplica la migración aditiva hasta
// targetVersion. Idempotente: reabrir con la misma versión no modifica nada y
// nunca se elimina una colección o índice existente.
// Falla con domain.ErrSchemaVersion si el archivo tiene una versión mayor que
// targetVersion o un estado de versión corrupto.
func Open(ctx context.Context, path string, targetVersion int) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("ruta del almacén requerida: %w", domain.ErrInvalidInput)
	}
	if targetVersion <= 0 {
		targetVersion = CurrentVersion
	}

	dsn := filepath.Clean(path) + "?_journal_mode=WAL&_busy_timeout=5000&_synchronous=NORMAL"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("abrir sqlite: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}

	current, err := readVersion(ctx, db)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	schema, err := Migrate(current, targetVersion)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	if err := applySchema(ctx, db, schema); err != nil {
		_ = db.Close()
		return nil, err
	}

	active := schemaThrough(targetVersion)
	mu := make(map[string]*sync.Mutex, len(active)+1)
	for name := range active {
		mu[name] = &sync.Mutex{}
	}
	mu[settingsTable] = &sync.Mutex{}

	return &Store{
		db:          db,
		version:     targetVersion,
		collections: active,
		writeMu:     mu,
	}, nil
}

// Close libera el archivo de datos.
func (s *Store) Close() error {
	return s.db.Close()
}

// Version devuelve la versión de esquema con la que se abrió el almacén.
func (s *Store) Version() int {
	return s.version
}

const settingsTable = "settings"

func readVersion(ctx context.Context, db *sql.DB) (int, error) {
	var v int
	if err := db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&v); err != nil {
		return 0, fmt.Errorf("leer versión de esquema: %w", err)
	}
	if v < 0 || v > CurrentVersion {
		return 0, fmt.Errorf("versión persistida v%d: %w", v, domain.ErrSchemaVersion)
	}
	return v, nil
}

// applySchema ejecuta el DDL aditivo de la migración. Cada sentencia es
// idempotente: IF NOT EXISTS para tablas e índices, y tolerancia a
// "duplicate column name" al agregar columnas de índice a tablas existentes.
func applySchema(ctx context.Context, db *sql.DB, schema Schema) error {
	for _, col := range schema.Collections {
		ddl := fmt.Sprintf(
			"CREATE TABLE IF NOT EXISTS %s (id INTEGER PRIMARY KEY AUTOINCREMENT, doc TEXT NOT NULL)",
			col.Name,
		)
		if _, err := db.ExecContext(ctx, ddl); err != nil {
			return fmt.Errorf("crear colección %s: %w", col.Name, err)
		}
		for _, idx := range col.Indexes {
			alter := fmt.Sprintf("ALTER TABLE %s ADD COLUMN %s", col.Name, indexColumn(idx))
			if _, err := db.ExecContext(ctx, alter); err != nil && !isDuplicateColumn(err) {
				return fmt.Errorf("agregar columna de índice %s.%s: %w", col.Name, idx.Name, err)
			}
			unique := ""
			if idx.Unique {
				unique = "UNIQUE "
			}
			create := fmt.Sprintf("CREATE %sINDEX IF NOT EXISTS %s_%s ON %s(%s)",
				unique, col.Name, idx.Name, col.Name, indexColumn(idx))
			if _, err := db.ExecContext(ctx, create); err != nil {
				return fmt.Errorf("crear índice %s.%s: %w", col.Name, idx.Name, err)
			}
		}
	}
	if schema.Settings {
		ddl := fmt.Sprintf(
			"CREATE TABLE IF NOT EXISTS %s (key TEXT PRIMARY KEY, value TEXT NOT NULL)",
			settingsTable,
		)
		if _, err := db.ExecContext(ctx, ddl); err != nil {
			return fmt.Errorf("crear tabla de configuración: %w", err)
		}
	}
	if _, err := db.ExecContext(ctx, fmt.Sprintf("PRAGMA user_version = %d", schema.Version)); err != nil {
		return fmt.Errorf("guardar versión de esquema: %w", err)
	}
	return nil
}

func indexColumn(idx Index) string {
	return "idx_" + idx.Name
}

// Create persiste el documento como unidad atómica y devuelve el ID asignado.
// Falla con domain.ErrDuplicate si viola un índice único y con
// domain.ErrInvalidInput si un campo con índice único está ausente o vacío.
func (s *Store) Create(ctx context.Context, collection string, doc any) (int64, error) {
	col, err := s.collection(collection)
	if err != nil {
		return 0, err
	}
	payload, fields, err := encodeDoc(doc)
	if err != nil {
		return 0, err
	}

	columns := []string{"doc"}
	args := []any{string(payload)}
	for _, idx := range col.Indexes {
		v, err := indexValue(idx, fields)
		if err != nil {
			return 0, err
		}
		columns = append(columns, indexColumn(idx))
		args = append(args, v)
	}

	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		col.Name, strings.Join(columns, ", "), placeholders(len(columns)))

	mu := s.writeMu[col.Name]
	mu.Lock()
	defer mu.Unlock()

	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, fmt.Errorf("crear en %s: %w", col.Name, domain.ErrDuplicate)
		}
		return 0, fmt.Errorf("crear en %s: %w", col.Name, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("id asignado en %s: %w", col.Name, err)
	}
	return id, nil
}

// Get devuelve el documento con el id dado o domain.ErrNotFound.
func (s *Store) Get(ctx context.Context, collection string, id int64) (Record, error) {
	col, err := s.collection(collection)
	if err != nil {
		return Record{}, err
	}
	var doc string
	query := fmt.Sprintf("SELECT doc FROM %s WHERE id = ?", col.Name)
	if err := s.db.QueryRowContext(ctx, query, id).Scan(&doc); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Record{}, domain.ErrNotFound
		}
		return Record{}, fmt.Errorf("leer %s/%d: %w", col.Name, id, err)
	}
	return Record{ID: id, Doc: json.RawMessage(doc)}, nil
}

// GetAll devuelve todos los documentos de la colección en orden de inserción.
func (s *Store) GetAll(ctx context.Context, collection string) ([]Record, error) {
	col, err := s.collection(collection)
	if err != nil {
		return nil, err
	}
	query := fmt.Sprintf("SELECT id, doc FROM %s ORDER BY id ASC", col.Name)
	return s.queryRecords(ctx, col.Name, query)
}

// GetRecent devuelve hasta limit documentos, del más reciente al más antiguo.
func (s *Store) GetRecent(ctx context.Context, collection string, limit int) ([]Record, error) {
	col, err := s.collection(collection)
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		return nil, nil
	}
	query := fmt.Sprintf("SELECT id, doc FROM %s ORDER BY id DESC LIMIT ?", col.Name)
	return s.queryRecords(ctx, col.Name, query, limit)
}

// GetByIndex devuelve los documentos cuyo campo indexado es igual a value.
// Con un índice único devuelve a lo sumo un documento. Falla con
// domain.ErrUnknownIndex si el índice no está declarado en el esquema.
func (s *Store) GetByIndex(ctx context.Context, collection, index string, value any) ([]Record, error) {
	col, idx, err := s.index(collection, index)
	if err != nil {
		return nil, err
	}
	query := fmt.Sprintf("SELECT id, doc FROM %s WHERE %s = ? ORDER BY id ASC",
		col.Name, indexColumn(idx))
	return s.queryRecords(ctx, col.Name, query, queryValue(value))
}

// GetByRange devuelve los documentos cuyo campo indexado cae en
// [lower, upper] inclusive, en orden ascendente del índice.
func (s *Store) GetByRange(ctx context.Context, collection, index string, lower, upper any) ([]Record, error) {
	col, idx, err := s.index(collection, index)
	if err != nil {
		return nil, err
	}
	query := fmt.Sprintf("SELECT id, doc FROM %s WHERE %s >= ? AND %s <= ? ORDER BY %s ASC, id ASC",
		col.Name, indexColumn(idx), indexColumn(idx), indexColumn(idx))
	return s.queryRecords(ctx, col.Name, query, queryValue(lower), queryValue(upper))
}

// Update fusiona fields sobre el documento almacenado dentro de una sola
// transacción (leer-modificar-escribir): ningún observador externo ve un
// estado intermedio y un fallo deja el estado previo intacto. Los campos con
// índice único modificados se revalidan.
func (s *Store) Update(ctx context.Context, collection string, id int64, fields map[string]any) (Record, error) {
	col, err := s.collection(collection)
	if err != nil {
		return Record{}, err
	}

	mu := s.writeMu[col.Name]
	mu.Lock()
	defer mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return Record{}, fmt.Errorf("iniciar transacción: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var current string
	selectQ := fmt.Sprintf("SELECT doc FROM %s WHERE id = ?", col.Name)
	if err := tx.QueryRowContext(ctx, selectQ, id).Scan(&current); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Record{}, domain.ErrNotFound
		}
		return Record{}, fmt.Errorf("leer %s/%d: %w", col.Name, id, err)
	}

	merged := make(map[string]any)
	if err := json.Unmarshal([]byte(current), &merged); err != nil {
		return Record{}, fmt.Errorf("decodificar %s/%d: %w", col.Name, id, err)
	}
	for k, v := range fields {
		merged[k] = queryValue(v)
	}

	payload, fieldMap, err := encodeDoc(merged)
	if err != nil {
		return Record{}, err
	}

	sets := []string{"doc = ?"}
	args := []any{string(payload)}
	for _, idx := range col.Indexes {
		v, err := indexValue(idx, fieldMap)
		if err != nil {
			return Record{}, err
		}
		sets = append(sets, indexColumn(idx)+" = ?")
		args = append(args, v)
	}
	args = append(args, id)

	updateQ := fmt.Sprintf("UPDATE %s SET %s WHERE id = ?", col.Name, strings.Join(sets, ", "))
	if _, err := tx.ExecContext(ctx, updateQ, args...); err != nil {
		if isUniqueViolation(err) {
			return Record{}, fmt.Errorf("actualizar %s/%d: %w", col.Name, id, domain.ErrDuplicate)
		}
		return Record{}, fmt.Errorf("actualizar %s/%d: %w", col.Name, id, err)
	}
	if err := tx.Commit(); err != nil {
		return Record{}, fmt.Errorf("confirmar transacción: %w", err)
	}
	return Record{ID: id, Doc: payload}, nil
}

// Delete elimina el documento con el id dado o devuelve domain.ErrNotFound.
func (s *Store) Delete(ctx context.Context, collection string, id int64) error {
	col, err := s.collection(collection)
	if err != nil {
		return err
	}

	mu := s.writeMu[col.Name]
	mu.Lock()
	defer mu.Unlock()

	query := fmt.Sprintf("DELETE FROM %s WHERE id = ?", col.Name)
	res, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("eliminar %s/%d: %w", col.Name, id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("eliminar %s/%d: %w", col.Name, id, err)
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// SetSetting guarda el valor para la clave, sobreescribiendo el anterior
// (last-write-wins, nunca acumula entradas duplicadas).
func (s *Store) SetSetting(ctx context.Context, key, value string) error {
	mu := s.writeMu[settingsTable]
	mu.Lock()
	defer mu.Unlock()

	query := fmt.Sprintf(
		"INSERT INTO %s (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
		settingsTable,
	)
	if _, err := s.db.ExecContext(ctx, query, key, value); err != nil {
		return fmt.Errorf("guardar configuración %s: %w", key, err)
	}
	return nil
}

// GetSetting devuelve el valor de la clave o domain.ErrNotFound.
func (s *Store) GetSetting(ctx context.Context, key string) (string, error) {
	var value string
	query := fmt.Sprintf("SELECT value FROM %s WHERE key = ?", settingsTable)
	if err := s.db.QueryRowContext(ctx, query, key).Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", domain.ErrNotFound
		}
		return "", fmt.Errorf("leer configuración %s: %w", key, err)
	}
	return value, nil
}

func (s *Store) collection(name string) (Collection, error) {
	col, ok := s.collections[name]
	if !ok {
		return Collection{}, fmt.Errorf("colección %s: %w", name, domain.ErrUnknownIndex)
	}
	return col, nil
}

func (s *Store) index(collection, index string) (Collection, Index, error) {
	col, err := s.collection(collection)
	if err != nil {
		return Collection{}, Index{}, err
	}
	for _, idx := range col.Indexes {
		if idx.Name == index {
			return col, idx, nil
		}
	}
	return Collection{}, Index{}, fmt.Errorf("índice %s.%s: %w", collection, index, domain.ErrUnknownIndex)
}

func (s *Store) queryRecords(ctx context.Context, collection, query string, args ...any) ([]Record, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("consultar %s: %w", collection, err)
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		var rec Record
		var doc string
		if err := rows.Scan(&rec.ID, &doc); err != nil {
			return nil, fmt.Errorf("leer fila de %s: %w", collection, err)
		}
		rec.Doc = json.RawMessage(doc)
		out = append(out, rec)
	}
	return out, rows.Err()
}

// encodeDoc serializa el documento y devuelve además el mapa de campos para
// extraer los valores de índice.
func encodeDoc(doc any) (json.RawMessage, map[string]any, error) {
	payload, err := json.Marshal(doc)
	if err != nil {
		return nil, nil, fmt.Errorf("codificar documento: %w", err)
	}
	fields := make(map[string]any)
	if err := json.Unmarshal(payload, &fields); err != nil {
		return nil, nil, fmt.Errorf("documento no es un objeto: %w", domain.ErrInvalidInput)
	}
	return payload, fields, nil
}

// indexValue extrae el valor de la columna de índice desde el documento
// decodificado. Un campo único ausente o vacío es un error de validación.
func indexValue(idx Index, fields map[string]any) (any, error) {
	v, ok := fields[idx.Field]
	if !ok || v == nil || v == "" {
		if idx.Unique {
			return nil, fmt.Errorf("campo único %s requerido: %w", idx.Field, domain.ErrInvalidInput)
		}
		return nil, nil
	}
	return queryValue(v), nil
}

// queryValue normaliza un valor de índice o de consulta a un tipo que SQLite
// pueda comparar de forma consistente con lo almacenado. Las fechas se llevan
// a RFC 3339 en UTC para que el orden lexicográfico del índice coincida con el
// cronológico.
func queryValue(v any) any {
	switch t := v.(type) {
	case time.Time:
		return t.UTC().Format(time.RFC3339)
	case decimal.Decimal:
		return t.String()
	case bool:
		if t {
			return 1
		}
		return 0
	default:
		return v
	}
}

func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?, ", n), ", ")
}
