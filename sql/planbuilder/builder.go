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

// Package planbuilder holds the Binder (name resolution, spec §4.4) and
// Planner (logical-tree construction, spec §4.5), both implemented as
// methods on Builder, mirroring the teacher's planbuilder.Builder
// entry point.
package planbuilder

import (
	"github.com/opentracing/opentracing-go"
	"github.com/sirupsen/logrus"

	"gopkg.in/src-d/go-mysql-server.v0/config"
	"gopkg.in/src-d/go-mysql-server.v0/sql"
	"gopkg.in/src-d/go-mysql-server.v0/sql/plan"
)

// Builder binds and plans statements against a fixed catalog. It is
// single-threaded and non-suspending (spec §5): a Builder must not be
// shared across concurrent Bind/CreatePlan calls.
type Builder struct {
	catalog sql.Catalog
	tracer  opentracing.Tracer
}

// NewBuilder creates a Builder resolving against catalog, using
// config.DefaultConfig()'s ambient settings.
func NewBuilder(catalog sql.Catalog) *Builder {
	return NewBuilderWithConfig(catalog, config.DefaultConfig())
}

// NewBuilderWithConfig creates a Builder resolving against catalog,
// applying cfg's log level (config.ApplyLogLevel) and choosing a
// tracer according to cfg.TraceEnabled: the global tracer when
// enabled, opentracing's no-op tracer otherwise, so Bind/CreatePlan's
// spans (SPEC_FULL §3) carry real overhead only when the
// caller's config asks for them.
func NewBuilderWithConfig(catalog sql.Catalog, cfg *config.PlannerConfig) *Builder {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if err := config.ApplyLogLevel(cfg); err != nil {
		logrus.WithError(err).Warn("planbuilder: invalid log_level in config, leaving level unchanged")
	}

	var tracer opentracing.Tracer = opentracing.NoopTracer{}
	if cfg.TraceEnabled {
		tracer = opentracing.GlobalTracer()
	}
	return &Builder{catalog: catalog, tracer: tracer}
}

// Bind resolves every identifier in stmt against parent (nil for a
// top-level statement), returning the fresh BindContext it created.
// Bind is idempotent by construction (spec §3's Lifecycles): calling it
// twice on the same statement is a no-op that returns the context
// already attached.
func (b *Builder) Bind(stmt *plan.SelectStmt, parent *sql.BindContext) (*sql.BindContext, error) {
	if stmt.IsBounded {
		return stmt.BindCtx, nil
	}

	span := b.tracer.StartSpan("planbuilder.Bind")
	defer span.Finish()

	ctx := sql.NewBindContext(parent, stmt, b.catalog)
	stmt.BindCtx = ctx
	if parent != nil {
		if parentStmt, ok := parent.Statement.(*plan.SelectStmt); ok {
			stmt.ParentStmt = parentStmt
		}
	}
	ctx.Log().Debug("binding select")

	if err := b.bindSelect(stmt, ctx); err != nil {
		return nil, err
	}
	stmt.IsBounded = true
	return ctx, nil
}

// CreatePlan builds stmt's logical plan tree (spec §4.5). stmt must
// already be bound.
func (b *Builder) CreatePlan(stmt *plan.SelectStmt) (sql.LogicNode, error) {
	if !stmt.IsBounded {
		return nil, sql.ErrInvalidType.New("CreatePlan called before Bind")
	}

	span := b.tracer.StartSpan("planbuilder.CreatePlan")
	defer span.Finish()

	stmt.BindCtx.Log().Debug("planning select")

	return b.createPlan(stmt)
}
