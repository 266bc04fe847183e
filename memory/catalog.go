// Copyright 2020-2021 Dolthub, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package memory is an in-memory sql.Catalog, grounded on the teacher's
// memory.Database (a name plus a map of tables), trimmed to the
// read-only lookup surface the binder consumes (spec §4.3): TryTable,
// Table, TableCols. It exists for tests and standalone example usage,
// not as a production catalog implementation.
package memory

import (
	"gopkg.in/src-d/go-mysql-server.v0/sql"
)

// Catalog is an in-memory sql.Catalog backed by a plain map, mirroring
// the teacher's memory.Database shape (name plus map[string]sql.Table)
// with sql.Table swapped for sql.TableDef, since this package only ever
// needs to answer schema questions, never execute a scan.
type Catalog struct {
	name   string
	tables map[string]*sql.TableDef
}

var _ sql.Catalog = (*Catalog)(nil)

// NewCatalog creates an empty in-memory catalog named name.
func NewCatalog(name string) *Catalog {
	return &Catalog{name: name, tables: make(map[string]*sql.TableDef)}
}

// Name returns the catalog's name.
func (c *Catalog) Name() string { return c.name }

// AddTable registers def under its own name, overwriting any table
// already registered under that name.
func (c *Catalog) AddTable(def *sql.TableDef) {
	c.tables[def.Name] = def
}

// TryTable implements sql.Catalog.
func (c *Catalog) TryTable(name string) *sql.TableDef {
	return c.tables[name]
}

// Table implements sql.Catalog.
func (c *Catalog) Table(name string) (*sql.TableDef, error) {
	def, ok := c.tables[name]
	if !ok {
		return nil, sql.ErrTableNotFound.New(name)
	}
	return def, nil
}

// TableCols implements sql.Catalog.
func (c *Catalog) TableCols(name string) ([]sql.ColumnDef, error) {
	def, err := c.Table(name)
	if err != nil {
		return nil, err
	}
	return def.Columns, nil
}
