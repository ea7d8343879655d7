package persistence

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/pandamaske/biibii-sub002/internal/domain/records"
	"github.com/pandamaske/biibii-sub002/internal/pkg/logger"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// domainModel is the conversion contract every GORM model implements.
type domainModel[E any, M any] interface {
	*M
	ToDomain() *E
	FromDomain(e *E)
}

// listColumns describes how a table answers records.Query.
type listColumns struct {
	// time is the column (or expression) used for from/to and ordering
	time string
	// baby and user are the ownership columns, empty when not applicable
	baby string
	user string
	// search columns are matched case-insensitively
	search []string
}

// gormRepository implements records.Repository for one entity/model pair.
type gormRepository[E any, M any, PM domainModel[E, M]] struct {
	db      *gorm.DB
	logger  logger.Logger
	entity  string
	columns listColumns
	// preload maps associations loaded on reads to their ordering column
	preload map[string]string
}

func newGormRepository[E any, M any, PM domainModel[E, M]](db *gorm.DB, logger logger.Logger, entity string, columns listColumns) *gormRepository[E, M, PM] {
	return &gormRepository[E, M, PM]{
		db:      db,
		logger:  logger,
		entity:  entity,
		columns: columns,
		preload: map[string]string{},
	}
}

func (r *gormRepository[E, M, PM]) withPreload(association, orderBy string) *gormRepository[E, M, PM] {
	r.preload[association] = orderBy
	return r
}

func (r *gormRepository[E, M, PM]) reads(ctx context.Context) *gorm.DB {
	db := r.db.WithContext(ctx)
	for association, orderBy := range r.preload {
		order := orderBy
		db = db.Preload(association, func(tx *gorm.DB) *gorm.DB {
			return tx.Order(order)
		})
	}
	return db
}

func (r *gormRepository[E, M, PM]) Create(ctx context.Context, e *E) error {
	model := PM(new(M))
	model.FromDomain(e)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return wrapError("failed to create "+r.entity, err)
	}

	r.logger.Info("Created ", r.entity, " with id ", idOf(model))
	return nil
}

func (r *gormRepository[E, M, PM]) List(ctx context.Context, query *records.Query) ([]*E, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query parameters: %w", err)
	}

	var modelList []M
	dbQuery := r.apply(r.reads(ctx).Model(PM(new(M))), query)

	if err := dbQuery.Find(&modelList).Error; err != nil {
		return nil, wrapError("failed to fetch "+r.entity+" list", err)
	}

	domainList := make([]*E, len(modelList))
	for i := range modelList {
		domainList[i] = PM(&modelList[i]).ToDomain()
	}

	return domainList, nil
}

// apply adds the query's filters, ordering and pagination.
func (r *gormRepository[E, M, PM]) apply(db *gorm.DB, query *records.Query) *gorm.DB {
	if query.BabyID != "" && r.columns.baby != "" {
		db = db.Where(r.columns.baby+" = ?", query.BabyID)
	}
	if query.UserID != "" && r.columns.user != "" {
		db = db.Where(r.columns.user+" = ?", query.UserID)
	}
	if !query.From.IsZero() {
		db = db.Where(r.columns.time+" >= ?", query.From)
	}
	if !query.To.IsZero() {
		db = db.Where(r.columns.time+" <= ?", query.To)
	}
	if query.Search != "" && len(r.columns.search) > 0 {
		pattern := "%" + strings.ToLower(query.Search) + "%"
		conds := make([]string, len(r.columns.search))
		args := make([]interface{}, len(r.columns.search))
		for i, col := range r.columns.search {
			conds[i] = "LOWER(" + col + ") LIKE ?"
			args[i] = pattern
		}
		db = db.Where("("+strings.Join(conds, " OR ")+")", args...)
	}

	desc := query.EffectiveSortOrder() == records.SortDesc
	db = db.Order(clause.OrderBy{Columns: []clause.OrderByColumn{
		{Column: clause.Column{Name: r.columns.time, Raw: true}, Desc: desc},
		{Column: clause.Column{Name: "id"}, Desc: desc},
	}})

	db = db.Limit(query.EffectiveLimit())
	if query.Offset > 0 {
		db = db.Offset(query.Offset)
	}
	return db
}

func (r *gormRepository[E, M, PM]) GetByID(ctx context.Context, id string) (*E, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, records.NotFound(r.entity, id)
	}

	model := PM(new(M))
	if err := r.reads(ctx).Where("id = ?", id).First(model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, records.NotFound(r.entity, id)
		}
		return nil, wrapError("failed to fetch "+r.entity, err)
	}
	return model.ToDomain(), nil
}

func (r *gormRepository[E, M, PM]) Update(ctx context.Context, e *E) error {
	model := PM(new(M))
	model.FromDomain(e)

	if err := updateRow(r.db.WithContext(ctx), model, r.entity); err != nil {
		return err
	}

	r.logger.Info("Updated ", r.entity, " with id ", idOf(model))
	return nil
}

func (r *gormRepository[E, M, PM]) DeleteByID(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return records.NotFound(r.entity, id)
	}
	if err := deleteRow(r.db.WithContext(ctx), PM(new(M)), r.entity, id); err != nil {
		return err
	}

	r.logger.Info("Deleted ", r.entity, " with id ", id)
	return nil
}

// updateRow overwrites every column of model's row, associations excluded.
func updateRow(db *gorm.DB, model interface{}, entity string) error {
	res := db.Model(model).Select("*").Omit(clause.Associations, "created_at").Updates(model)
	if res.Error != nil {
		return wrapError("failed to update "+entity, res.Error)
	}
	if res.RowsAffected == 0 {
		return records.NotFound(entity, idOf(model))
	}
	return nil
}

func deleteRow(db *gorm.DB, model interface{}, entity, id string) error {
	res := db.Where("id = ?", id).Delete(model)
	if res.Error != nil {
		return wrapError("failed to delete "+entity, res.Error)
	}
	if res.RowsAffected == 0 {
		return records.NotFound(entity, id)
	}
	return nil
}

// idOf reads the primary key of any model embedding BaseModel.
func idOf(model interface{}) string {
	if m, ok := model.(interface{ GetID() string }); ok {
		return m.GetID()
	}
	return ""
}
