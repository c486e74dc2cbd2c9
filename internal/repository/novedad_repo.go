package repository

import (
	"context"

	"distrital4/internal/access"
	"distrital4/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NovedadRepository defines CRUD operations for Novedad, filtered by scope on reads.
type NovedadRepository interface {
	List(ctx context.Context, scope access.Scope) ([]model.Novedad, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.Novedad, error)
	Create(ctx context.Context, n *model.Novedad) error
	Update(ctx context.Context, id uuid.UUID, fields map[string]any) (*model.Novedad, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

type novedadRepository struct{ db *gorm.DB }

func NewNovedadRepository(db *gorm.DB) NovedadRepository {
	return &novedadRepository{db: db}
}

func (r *novedadRepository) List(ctx context.Context, scope access.Scope) ([]model.Novedad, error) {
	list := []model.Novedad{}
	q := r.db.WithContext(ctx)
	switch scope.Kind {
	case access.ScopeNone:
		return list, nil
	case access.ScopeSingle:
		q = q.Where("dependencia = ?", scope.Dependencias()[0])
	case access.ScopeMulti:
		q = q.Where("dependencia IN ?", scope.Dependencias())
	case access.ScopeAll:
	}
	err := q.Find(&list).Error
	return list, err
}

func (r *novedadRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Novedad, error) {
	var n model.Novedad
	err := r.db.WithContext(ctx).First(&n, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func (r *novedadRepository) Create(ctx context.Context, n *model.Novedad) error {
	return translateError(r.db.WithContext(ctx).Create(n).Error)
}

// Update overwrites only the columns present in fields and returns the
// refreshed row. gorm.ErrRecordNotFound is returned when id does not exist.
func (r *novedadRepository) Update(ctx context.Context, id uuid.UUID, fields map[string]any) (*model.Novedad, error) {
	if len(fields) > 0 {
		res := r.db.WithContext(ctx).Model(&model.Novedad{}).Where("id = ?", id).Updates(fields)
		if res.Error != nil {
			return nil, translateError(res.Error)
		}
		if res.RowsAffected == 0 {
			return nil, gorm.ErrRecordNotFound
		}
	}
	return r.FindByID(ctx, id)
}

func (r *novedadRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Novedad{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
