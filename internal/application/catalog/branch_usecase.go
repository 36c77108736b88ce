package catalog

import (
	"time"

	"github.com/google/uuid"

	"github.com/olivosverdes/fruteria-api/internal/application/dto"
	"github.com/olivosverdes/fruteria-api/internal/domain/entity"
	"github.com/olivosverdes/fruteria-api/internal/domain/repository"
)

// BranchUseCase CRUD de sucursales (referencia estática, administrado).
type BranchUseCase struct {
	repo repository.BranchRepository
}

// NewBranchUseCase construye el caso de uso.
func NewBranchUseCase(repo repository.BranchRepository) *BranchUseCase {
	return &BranchUseCase{repo: repo}
}

// Create crea una sucursal.
func (uc *BranchUseCase) Create(in dto.CreateBranchRequest) (*dto.BranchResponse, error) {
	now := time.Now()
	branch := &entity.Branch{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Address:   in.Address,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(branch); err != nil {
		return nil, err
	}
	return toBranchResponse(branch), nil
}

// GetByID obtiene una sucursal; nil si no existe.
func (uc *BranchUseCase) GetByID(id string) (*dto.BranchResponse, error) {
	branch, err := uc.repo.GetByID(id)
	if err != nil || branch == nil {
		return nil, err
	}
	return toBranchResponse(branch), nil
}

// List lista todas las sucursales.
func (uc *BranchUseCase) List() ([]dto.BranchResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.BranchResponse, 0, len(list))
	for _, b := range list {
		items = append(items, *toBranchResponse(b))
	}
	return items, nil
}

// Delete elimina una sucursal.
func (uc *BranchUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toBranchResponse(b *entity.Branch) *dto.BranchResponse {
	return &dto.BranchResponse{ID: b.ID, Name: b.Name, Address: b.Address}
}
